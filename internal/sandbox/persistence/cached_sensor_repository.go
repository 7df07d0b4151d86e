package persistence

import (
	"context"
	"time"

	"sensor-simulator/internal/infra/cache"
	"sensor-simulator/internal/sandbox/domain"
	"sensor-simulator/internal/sandbox/usecases"
)

const _sensorKeyPrefix = "sensor:"

// NewCachedSensorRepository serves GetByID from sensors, the lookup every
// submitted reading goes through. Status updates evict the touched sensors.
func NewCachedSensorRepository(
	repository usecases.SensorRepository,
	sensors cache.Cache[domain.Sensor],
	ttl time.Duration,
) *CachedSensorRepository {
	return &CachedSensorRepository{
		SensorRepository: repository,
		sensors:          sensors,
		ttl:              ttl,
	}
}

var _ usecases.SensorRepository = (*CachedSensorRepository)(nil)

type CachedSensorRepository struct {
	usecases.SensorRepository
	sensors cache.Cache[domain.Sensor]
	ttl     time.Duration
}

func (r *CachedSensorRepository) GetByID(ctx context.Context, id domain.ID) (domain.Sensor, error) {
	return r.sensors.GetOrSet(ctx, _sensorKeyPrefix+id.String(), r.ttl, func() (domain.Sensor, error) {
		return r.SensorRepository.GetByID(ctx, id)
	})
}

func (r *CachedSensorRepository) UpdateStatus(ctx context.Context, ids []domain.ID, status domain.SensorStatus) error {
	err := r.SensorRepository.UpdateStatus(ctx, ids, status)
	for _, id := range ids {
		r.sensors.Delete(ctx, _sensorKeyPrefix+id.String())
	}
	return err
}
