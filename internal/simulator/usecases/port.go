package usecases

import (
	"context"
	"sensor-simulator/internal/simulator/domain"
)

//go:generate mockgen -source=./port.go -destination=../../../test/unit/doubles/simulator/usecases/port.go

// SensorAPI is the collaborator boundary: sensor listing, registration and
// reading ingest. CreateSensor returns domain.ErrSensorAlreadyExists when the
// name is taken.
type SensorAPI interface {
	ListSensors(context.Context) ([]domain.RegisteredSensor, error)
	CreateSensor(context.Context, domain.SensorRegistration) (domain.SensorID, error)
	SubmitReading(context.Context, domain.SensorID, float64) (string, error)
}

// RandomSource yields uniform values in [0, 1).
type RandomSource interface {
	Float64() float64
}

// SensorResolver turns a sensor configuration into the id readings are posted to.
type SensorResolver interface {
	Resolve(context.Context, domain.SensorConfig, bool) (domain.SensorID, error)
}

// ReadingSource produces the next simulated value.
type ReadingSource interface {
	Next() float64
}
