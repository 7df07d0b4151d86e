package usecases

import (
	"context"
	"errors"
	"time"

	"sensor-simulator/internal/sandbox/domain"
)

//go:generate mockgen -source=repository_port.go -destination=../../../test/unit/doubles/sandbox/usecases/repository_port_mock.go -package=mock_usecases -mock_names=SensorRepository=MockSensorRepository,LocationRepository=MockLocationRepository,ReadingRepository=MockReadingRepository

var (
	ErrSensorNotFound   = errors.New("sensor not found")
	ErrSensorDuplicated = errors.New("sensor name already exists")
	ErrLocationNotFound = errors.New("location not found")
)

type SensorRepository interface {
	Create(context.Context, domain.Sensor) error
	GetByID(context.Context, domain.ID) (domain.Sensor, error)
	GetByName(context.Context, string) (domain.Sensor, error)
	// FindAll returns every sensor, newest first.
	FindAll(context.Context) ([]domain.Sensor, error)
	UpdateStatus(context.Context, []domain.ID, domain.SensorStatus) error
}

type LocationRepository interface {
	Create(context.Context, domain.Location) error
	GetByName(context.Context, string) (domain.Location, error)
	FindAll(context.Context) ([]domain.Location, error)
}

type ReadingRepository interface {
	Create(context.Context, domain.Reading) error
	// FindBySensorSince returns the readings of a sensor at or after since, oldest first.
	FindBySensorSince(context.Context, domain.ID, time.Time) ([]domain.Reading, error)
	// ActiveSensorIDsSince returns the sensors with at least one reading at or after since.
	ActiveSensorIDsSince(context.Context, time.Time) ([]domain.ID, error)
}
