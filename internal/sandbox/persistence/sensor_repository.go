package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"sensor-simulator/internal/infra/sql"
	"sensor-simulator/internal/sandbox/domain"
	"sensor-simulator/internal/sandbox/persistence/internal"
	"sensor-simulator/internal/sandbox/usecases"
)

func NewSensorRepository(orm sql.ORM) (*SimpleSensorRepository, error) {
	err := orm.AutoMigrate(&internal.Location{}, &internal.Sensor{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleSensorRepository{
		orm: orm,
	}, nil
}

var _ usecases.SensorRepository = (*SimpleSensorRepository)(nil)

type SimpleSensorRepository struct {
	orm sql.ORM
}

func (r *SimpleSensorRepository) Create(ctx context.Context, sensor domain.Sensor) error {
	entity := internal.FromSensor(sensor)
	err := r.orm.WithContext(ctx).Create(&entity).Error()
	if errors.Is(err, sql.ErrDuplicatedKey) {
		return usecases.ErrSensorDuplicated
	}
	if err != nil {
		return fmt.Errorf("creating sensor: %w", err)
	}

	return nil
}

func (r *SimpleSensorRepository) GetByID(ctx context.Context, id domain.ID) (domain.Sensor, error) {
	return r.first(ctx, "sensor_id = ?", id.String())
}

func (r *SimpleSensorRepository) GetByName(ctx context.Context, name string) (domain.Sensor, error) {
	return r.first(ctx, "sensor_name = ?", name)
}

func (r *SimpleSensorRepository) first(ctx context.Context, query string, arg any) (domain.Sensor, error) {
	var entity internal.Sensor
	err := r.orm.
		WithContext(ctx).
		Preload("Location").
		Where(query, arg).
		First(&entity).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return domain.Sensor{}, usecases.ErrSensorNotFound
	}
	if err != nil {
		return domain.Sensor{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain(), nil
}

func (r *SimpleSensorRepository) FindAll(ctx context.Context) ([]domain.Sensor, error) {
	var entities []internal.Sensor
	err := r.orm.
		WithContext(ctx).
		Preload("Location").
		Order("created_at desc").
		Find(&entities).
		Error()
	if err != nil {
		return nil, fmt.Errorf("database query: %w", err)
	}

	sensors := make([]domain.Sensor, len(entities))
	for i, entity := range entities {
		sensors[i] = entity.ToDomain()
	}
	return sensors, nil
}

func (r *SimpleSensorRepository) UpdateStatus(ctx context.Context, ids []domain.ID, status domain.SensorStatus) error {
	if len(ids) == 0 {
		return nil
	}

	values := make([]string, len(ids))
	for i, id := range ids {
		values[i] = id.String()
	}

	err := r.orm.
		WithContext(ctx).
		Model(&internal.Sensor{}).
		Where("sensor_id IN ?", values).
		Update("sensor_status", string(status)).
		Error()
	if err != nil {
		return fmt.Errorf("updating sensor status: %w", err)
	}

	return nil
}

func NewLocationRepository(orm sql.ORM) (*SimpleLocationRepository, error) {
	err := orm.AutoMigrate(&internal.Location{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleLocationRepository{
		orm: orm,
	}, nil
}

var _ usecases.LocationRepository = (*SimpleLocationRepository)(nil)

type SimpleLocationRepository struct {
	orm sql.ORM
}

func (r *SimpleLocationRepository) Create(ctx context.Context, location domain.Location) error {
	entity := internal.FromLocation(location)
	err := r.orm.WithContext(ctx).Create(&entity).Error()
	if err != nil {
		return fmt.Errorf("creating location: %w", err)
	}

	return nil
}

func (r *SimpleLocationRepository) GetByName(ctx context.Context, name string) (domain.Location, error) {
	var entity internal.Location
	err := r.orm.
		WithContext(ctx).
		Where("location_name = ?", name).
		First(&entity).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return domain.Location{}, usecases.ErrLocationNotFound
	}
	if err != nil {
		return domain.Location{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain(), nil
}

func (r *SimpleLocationRepository) FindAll(ctx context.Context) ([]domain.Location, error) {
	var entities []internal.Location
	err := r.orm.
		WithContext(ctx).
		Order("location_name asc").
		Find(&entities).
		Error()
	if err != nil {
		return nil, fmt.Errorf("database query: %w", err)
	}

	locations := make([]domain.Location, len(entities))
	for i, entity := range entities {
		locations[i] = entity.ToDomain()
	}
	return locations, nil
}

func NewReadingRepository(orm sql.ORM) (*SimpleReadingRepository, error) {
	err := orm.AutoMigrate(&internal.Reading{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleReadingRepository{
		orm: orm,
	}, nil
}

var _ usecases.ReadingRepository = (*SimpleReadingRepository)(nil)

type SimpleReadingRepository struct {
	orm sql.ORM
}

func (r *SimpleReadingRepository) Create(ctx context.Context, reading domain.Reading) error {
	entity := internal.FromReading(reading)
	err := r.orm.WithContext(ctx).Create(&entity).Error()
	if err != nil {
		return fmt.Errorf("creating reading: %w", err)
	}

	return nil
}

func (r *SimpleReadingRepository) FindBySensorSince(ctx context.Context, id domain.ID, since time.Time) ([]domain.Reading, error) {
	var entities []internal.Reading
	err := r.orm.
		WithContext(ctx).
		Where("sensor_id = ? AND data_timestamp >= ?", id.String(), since.UTC()).
		Order("data_timestamp asc").
		Find(&entities).
		Error()
	if err != nil {
		return nil, fmt.Errorf("database query: %w", err)
	}

	readings := make([]domain.Reading, len(entities))
	for i, entity := range entities {
		readings[i] = entity.ToDomain()
	}
	return readings, nil
}

func (r *SimpleReadingRepository) ActiveSensorIDsSince(ctx context.Context, since time.Time) ([]domain.ID, error) {
	var values []string
	err := r.orm.
		WithContext(ctx).
		Model(&internal.Reading{}).
		Where("data_timestamp >= ?", since.UTC()).
		Distinct("sensor_id").
		Pluck("sensor_id", &values).
		Error()
	if err != nil {
		return nil, fmt.Errorf("database query: %w", err)
	}

	ids := make([]domain.ID, len(values))
	for i, value := range values {
		ids[i] = domain.ID(value)
	}
	return ids, nil
}
