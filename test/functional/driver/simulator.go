package driver

import (
	"context"
	"math/rand/v2"
	"time"

	"sensor-simulator/internal/infra/sensorapi"
	"sensor-simulator/internal/simulator/domain"
	"sensor-simulator/internal/simulator/usecases"
)

type SimulationRequest struct {
	BaseURL        string
	Name           string
	Type           string
	Location       string
	Interval       time.Duration
	Duration       time.Duration
	PreferExisting bool
}

// RunSimulation drives the same components the simulator binary wires,
// with a short interval so scenarios finish quickly.
func RunSimulation(ctx context.Context, request SimulationRequest) (usecases.Summary, error) {
	sensor, err := domain.NewSensorConfigBuilder().
		WithName(request.Name).
		WithType(domain.SensorType(request.Type)).
		WithLocation(request.Location).
		Build()
	if err != nil {
		return usecases.Summary{}, err
	}

	client := sensorapi.NewClient(sensorapi.Config{
		BaseURL: request.BaseURL,
		Timeout: 2 * time.Second,
	})
	loop := usecases.NewRunLoop(
		sensor,
		usecases.RunOptions{
			Interval:       request.Interval,
			Duration:       request.Duration,
			PreferExisting: request.PreferExisting,
		},
		usecases.NewIdentityResolver(client),
		client,
		usecases.NewReadingGenerator(sensor, rand.New(rand.NewPCG(1, 2))),
		usecases.SystemClock{},
	)

	return loop.Run(ctx)
}
