package driver

import (
	"context"
	"fmt"
	"net/http/httptest"
	"time"

	"sensor-simulator/internal/infra/cache"
	"sensor-simulator/internal/infra/httpserver"
	"sensor-simulator/internal/infra/sql"
	"sensor-simulator/internal/infra/utils"
	"sensor-simulator/internal/sandbox/domain"
	"sensor-simulator/internal/sandbox/httpapi"
	"sensor-simulator/internal/sandbox/persistence"
	"sensor-simulator/internal/sandbox/usecases"

	"github.com/go-resty/resty/v2"
)

type SensorPayload struct {
	ID             string `json:"sensor_id"`
	Name           string `json:"sensor_name"`
	Type           string `json:"sensor_type"`
	Status         string `json:"sensor_status"`
	ComputedStatus string `json:"computed_status"`
}

type ReadingPayload struct {
	SensorID string  `json:"sensor_id"`
	Value    float64 `json:"data_value"`
}

type listPayload[T any] struct {
	Data []T `json:"data"`
}

// SandboxDriver runs the sandbox API in process on a private in-memory
// database and talks to it over real HTTP.
type SandboxDriver struct {
	server  *httptest.Server
	service *usecases.SimpleSensorService
	client  *resty.Client
}

func StartSandbox() (*SandboxDriver, error) {
	orm, err := sql.NewMemoryORM(utils.GenerateUUID())
	if err != nil {
		return nil, err
	}
	sensors, err := persistence.NewSensorRepository(orm)
	if err != nil {
		return nil, err
	}
	locations, err := persistence.NewLocationRepository(orm)
	if err != nil {
		return nil, err
	}
	readings, err := persistence.NewReadingRepository(orm)
	if err != nil {
		return nil, err
	}

	sensorCache, err := cache.New[domain.Sensor](nil)
	if err != nil {
		return nil, err
	}

	service := usecases.NewSensorService(
		persistence.NewCachedSensorRepository(sensors, sensorCache, time.Minute),
		locations,
		readings,
	)
	server := httptest.NewServer(httpserver.NewServer("", httpapi.NewSensorController(service)).Handler())

	return &SandboxDriver{
		server:  server,
		service: service,
		client:  resty.New().SetBaseURL(server.URL),
	}, nil
}

func (d *SandboxDriver) URL() string {
	return d.server.URL
}

func (d *SandboxDriver) Close() {
	d.server.Close()
}

func (d *SandboxDriver) RegisterSensor(name, sensorType, location string) (*resty.Response, error) {
	return d.client.R().
		SetBody(map[string]any{
			"sensorName":   name,
			"sensorType":   sensorType,
			"locationName": location,
		}).
		Post("/api/sensor")
}

func (d *SandboxDriver) ListSensors() ([]SensorPayload, error) {
	var payload listPayload[SensorPayload]
	resp, err := d.client.R().SetResult(&payload).Get("/api/sensors")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("listing sensors: unexpected status %d", resp.StatusCode())
	}
	return payload.Data, nil
}

func (d *SandboxDriver) Readings(sensorID string) ([]ReadingPayload, error) {
	var payload listPayload[ReadingPayload]
	resp, err := d.client.R().
		SetPathParam("sensorId", sensorID).
		SetResult(&payload).
		Get("/api/sensors/{sensorId}/data")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("listing readings: unexpected status %d", resp.StatusCode())
	}
	return payload.Data, nil
}

func (d *SandboxDriver) Healthz() (*resty.Response, error) {
	return d.client.R().Get("/healthz")
}

func (d *SandboxDriver) RefreshStatuses(ctx context.Context) (usecases.StatusReport, error) {
	return d.service.RefreshStatuses(ctx)
}
