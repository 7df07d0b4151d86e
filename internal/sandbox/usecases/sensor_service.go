package usecases

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"sensor-simulator/internal/sandbox/domain"
)

func NewSensorService(
	sensors SensorRepository,
	locations LocationRepository,
	readings ReadingRepository,
) *SimpleSensorService {
	return &SimpleSensorService{
		sensors:   sensors,
		locations: locations,
		readings:  readings,
		now:       time.Now,
	}
}

var _ SensorService = &SimpleSensorService{}

type SimpleSensorService struct {
	sensors   SensorRepository
	locations LocationRepository
	readings  ReadingRepository
	now       func() time.Time
}

func (s *SimpleSensorService) RegisterSensor(ctx context.Context, registration SensorRegistration) (domain.Sensor, error) {
	candidate, err := domain.NewLocationBuilder().WithName(registration.LocationName).Build()
	if err != nil {
		return domain.Sensor{}, err
	}

	sensor, err := domain.NewSensorBuilder().
		WithName(registration.Name).
		WithType(registration.Type).
		WithLocation(candidate).
		Build()
	if err != nil {
		return domain.Sensor{}, err
	}

	_, err = s.sensors.GetByName(ctx, sensor.Name)
	if err == nil {
		slog.Warn("sensor already exists", slog.String("name", sensor.Name))
		return domain.Sensor{}, ErrSensorDuplicated
	}
	if !errors.Is(err, ErrSensorNotFound) {
		return domain.Sensor{}, fmt.Errorf("checking existing sensor: %w", err)
	}

	location, err := s.findOrCreateLocation(ctx, candidate)
	if err != nil {
		return domain.Sensor{}, err
	}
	sensor.Location = &location

	err = s.sensors.Create(ctx, sensor)
	if errors.Is(err, ErrSensorDuplicated) {
		return domain.Sensor{}, ErrSensorDuplicated
	}
	if err != nil {
		slog.Error("creating sensor", slog.String("error", err.Error()))
		return domain.Sensor{}, fmt.Errorf("creating sensor: %w", err)
	}

	slog.Info("sensor registered",
		slog.String("id", sensor.ID.String()),
		slog.String("name", sensor.Name),
		slog.String("location", location.Name))

	return sensor, nil
}

func (s *SimpleSensorService) findOrCreateLocation(ctx context.Context, candidate domain.Location) (domain.Location, error) {
	location, err := s.locations.GetByName(ctx, candidate.Name)
	if err == nil {
		return location, nil
	}
	if !errors.Is(err, ErrLocationNotFound) {
		return domain.Location{}, fmt.Errorf("finding location: %w", err)
	}

	if err := s.locations.Create(ctx, candidate); err != nil {
		return domain.Location{}, fmt.Errorf("creating location: %w", err)
	}

	slog.Debug("location created", slog.String("name", candidate.Name))
	return candidate, nil
}

func (s *SimpleSensorService) ListSensors(ctx context.Context) ([]SensorView, error) {
	sensors, err := s.sensors.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing sensors: %w", err)
	}

	active, err := s.activeSensorIDs(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]SensorView, len(sensors))
	for i, sensor := range sensors {
		status := domain.SensorStatusInactive
		if _, ok := active[sensor.ID]; ok {
			status = domain.SensorStatusActive
		}
		views[i] = SensorView{Sensor: sensor, ComputedStatus: status}
	}

	return views, nil
}

func (s *SimpleSensorService) GetSensor(ctx context.Context, id domain.ID) (domain.Sensor, error) {
	sensor, err := s.sensors.GetByID(ctx, id)
	if errors.Is(err, ErrSensorNotFound) {
		return domain.Sensor{}, ErrSensorNotFound
	}
	if err != nil {
		return domain.Sensor{}, fmt.Errorf("getting sensor: %w", err)
	}

	return sensor, nil
}

func (s *SimpleSensorService) SubmitReading(ctx context.Context, id domain.ID, value float64) (domain.Reading, error) {
	sensor, err := s.GetSensor(ctx, id)
	if err != nil {
		return domain.Reading{}, err
	}

	reading, err := domain.NewReadingBuilder().
		WithSensor(sensor).
		WithValue(value).
		WithTimestamp(s.now()).
		Build()
	if err != nil {
		return domain.Reading{}, err
	}

	if err := s.readings.Create(ctx, reading); err != nil {
		slog.Error("storing reading", slog.String("sensor_id", id.String()), slog.String("error", err.Error()))
		return domain.Reading{}, fmt.Errorf("storing reading: %w", err)
	}

	slog.Debug("reading stored", slog.String("sensor_id", id.String()), slog.Float64("value", value))
	return reading, nil
}

func (s *SimpleSensorService) RecentReadings(ctx context.Context, id domain.ID) ([]domain.Reading, error) {
	readings, err := s.readings.FindBySensorSince(ctx, id, s.now().Add(-domain.ActivityWindow))
	if err != nil {
		return nil, fmt.Errorf("finding readings: %w", err)
	}

	return readings, nil
}

func (s *SimpleSensorService) ListLocations(ctx context.Context) ([]domain.Location, error) {
	locations, err := s.locations.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing locations: %w", err)
	}

	return locations, nil
}

// RefreshStatuses persists the status derived from the activity window for every sensor.
func (s *SimpleSensorService) RefreshStatuses(ctx context.Context) (StatusReport, error) {
	sensors, err := s.sensors.FindAll(ctx)
	if err != nil {
		return StatusReport{}, fmt.Errorf("listing sensors: %w", err)
	}
	if len(sensors) == 0 {
		return StatusReport{}, nil
	}

	active, err := s.activeSensorIDs(ctx)
	if err != nil {
		return StatusReport{}, err
	}

	var activeIDs, inactiveIDs []domain.ID
	for _, sensor := range sensors {
		if _, ok := active[sensor.ID]; ok {
			activeIDs = append(activeIDs, sensor.ID)
		} else {
			inactiveIDs = append(inactiveIDs, sensor.ID)
		}
	}

	if len(inactiveIDs) > 0 {
		if err := s.sensors.UpdateStatus(ctx, inactiveIDs, domain.SensorStatusInactive); err != nil {
			return StatusReport{}, fmt.Errorf("marking sensors inactive: %w", err)
		}
	}
	if len(activeIDs) > 0 {
		if err := s.sensors.UpdateStatus(ctx, activeIDs, domain.SensorStatusActive); err != nil {
			return StatusReport{}, fmt.Errorf("marking sensors active: %w", err)
		}
	}

	return StatusReport{
		Checked:  len(sensors),
		Active:   len(activeIDs),
		Inactive: len(inactiveIDs),
	}, nil
}

func (s *SimpleSensorService) activeSensorIDs(ctx context.Context) (map[domain.ID]struct{}, error) {
	ids, err := s.readings.ActiveSensorIDsSince(ctx, s.now().Add(-domain.ActivityWindow))
	if err != nil {
		return nil, fmt.Errorf("finding active sensors: %w", err)
	}

	active := make(map[domain.ID]struct{}, len(ids))
	for _, id := range ids {
		active[id] = struct{}{}
	}
	return active, nil
}
