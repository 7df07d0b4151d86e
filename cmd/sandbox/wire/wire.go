//go:build wireinject
// +build wireinject

package wire

import (
	"time"

	"sensor-simulator/cmd/config"
	"sensor-simulator/internal/sandbox/httpapi"
	"sensor-simulator/internal/sandbox/persistence"
	"sensor-simulator/internal/sandbox/usecases"

	"github.com/google/wire"
)

func InitializeSensorService(cfg config.AppConfig) (*usecases.SimpleSensorService, error) {
	wire.Build(
		provideDatabase,
		persistence.NewSensorRepository,
		provideSensorCache,
		provideCachedSensorRepository,
		wire.Bind(new(usecases.SensorRepository), new(*persistence.CachedSensorRepository)),
		persistence.NewLocationRepository,
		wire.Bind(new(usecases.LocationRepository), new(*persistence.SimpleLocationRepository)),
		persistence.NewReadingRepository,
		wire.Bind(new(usecases.ReadingRepository), new(*persistence.SimpleReadingRepository)),
		usecases.NewSensorService,
	)
	return nil, nil
}

func InitializeSensorController(service usecases.SensorService) (*httpapi.SensorController, error) {
	wire.Build(
		httpapi.NewSensorController,
	)
	return nil, nil
}

func InitializeInactivityWorker(cfg config.AppConfig, ticker *time.Ticker, service usecases.SensorService) (*usecases.InactivityWorker, error) {
	wire.Build(
		provideInactivitySchedule,
		usecases.NewInactivityWorker,
	)
	return nil, nil
}
