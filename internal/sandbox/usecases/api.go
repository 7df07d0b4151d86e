package usecases

import (
	"context"

	"sensor-simulator/internal/sandbox/domain"
)

//go:generate mockgen -source=./api.go -destination=../../../test/unit/doubles/sandbox/usecases/api.go

type SensorRegistration struct {
	Name         string
	Type         string
	LocationName string
}

// SensorView is a stored sensor along with the status derived from its recent readings.
type SensorView struct {
	Sensor         domain.Sensor
	ComputedStatus domain.SensorStatus
}

type StatusReport struct {
	Checked  int
	Active   int
	Inactive int
}

type SensorService interface {
	RegisterSensor(context.Context, SensorRegistration) (domain.Sensor, error)
	ListSensors(context.Context) ([]SensorView, error)
	GetSensor(context.Context, domain.ID) (domain.Sensor, error)
	SubmitReading(context.Context, domain.ID, float64) (domain.Reading, error)
	RecentReadings(context.Context, domain.ID) ([]domain.Reading, error)
	ListLocations(context.Context) ([]domain.Location, error)
	RefreshStatuses(context.Context) (StatusReport, error)
}
