package usecases

import (
	"context"
	"errors"
	"log/slog"
	"sensor-simulator/internal/simulator/domain"
)

func NewIdentityResolver(api SensorAPI) *IdentityResolver {
	return &IdentityResolver{
		api: api,
	}
}

type IdentityResolver struct {
	api SensorAPI
}

// Resolve returns the id of the sensor named cfg.Name, creating it when needed.
// It issues at most two requests and never retries.
func (r *IdentityResolver) Resolve(ctx context.Context, cfg domain.SensorConfig, preferExisting bool) (domain.SensorID, error) {
	if preferExisting {
		sensor, found, err := r.findByName(ctx, cfg.Name)
		// A failed lookup is fatal rather than falling through to creation.
		if err != nil {
			slog.Error("looking up existing sensor", slog.String("name", cfg.Name), slog.Any("error", err))
			return "", &domain.ResolutionError{Kind: domain.ResolutionUnreachable, Name: cfg.Name, Err: err}
		}
		if found {
			slog.Info("found existing sensor",
				slog.String("sensor_id", sensor.ID.String()),
				slog.String("name", sensor.Name),
				slog.String("type", sensor.Type),
				slog.String("status", sensor.Status),
			)
			return sensor.ID, nil
		}
		slog.Info("sensor not found, creating a new one", slog.String("name", cfg.Name))
	}

	id, err := r.api.CreateSensor(ctx, domain.RegistrationFrom(cfg))
	if errors.Is(err, domain.ErrSensorAlreadyExists) {
		slog.Warn("sensor already exists, using the existing one", slog.String("name", cfg.Name))
		return r.resolveConflict(ctx, cfg)
	}
	if err != nil {
		slog.Error("registering sensor", slog.String("name", cfg.Name), slog.Any("error", err))
		return "", &domain.ResolutionError{Kind: domain.ResolutionUnreachable, Name: cfg.Name, Err: err}
	}

	slog.Info("sensor registered",
		slog.String("sensor_id", id.String()),
		slog.String("name", cfg.Name),
		slog.String("type", cfg.Type.String()),
		slog.String("location", cfg.Location),
	)
	return id, nil
}

func (r *IdentityResolver) resolveConflict(ctx context.Context, cfg domain.SensorConfig) (domain.SensorID, error) {
	sensor, found, err := r.findByName(ctx, cfg.Name)
	if err != nil {
		slog.Error("looking up conflicting sensor", slog.String("name", cfg.Name), slog.Any("error", err))
		return "", &domain.ResolutionError{Kind: domain.ResolutionUnreachable, Name: cfg.Name, Err: err}
	}
	if !found {
		return "", &domain.ResolutionError{Kind: domain.ResolutionConflictUnresolved, Name: cfg.Name, Err: domain.ErrSensorAlreadyExists}
	}

	slog.Info("found existing sensor", slog.String("sensor_id", sensor.ID.String()), slog.String("name", sensor.Name))
	return sensor.ID, nil
}

// findByName scans the listing in collaborator order; the first exact match wins.
func (r *IdentityResolver) findByName(ctx context.Context, name string) (domain.RegisteredSensor, bool, error) {
	sensors, err := r.api.ListSensors(ctx)
	if err != nil {
		return domain.RegisteredSensor{}, false, err
	}

	for _, sensor := range sensors {
		if sensor.Name == name {
			return sensor, true, nil
		}
	}

	return domain.RegisteredSensor{}, false, nil
}
