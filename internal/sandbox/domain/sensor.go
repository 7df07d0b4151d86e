package domain

import (
	"fmt"
	"time"
	"unicode/utf8"

	"sensor-simulator/internal/infra/utils"
)

const (
	_minSensorNameLength = 3
	_maxSensorNameLength = 255
	_minSensorTypeLength = 3
)

type Sensor struct {
	ID        ID
	Name      string
	Type      string
	Status    SensorStatus
	Location  *Location
	CreatedAt time.Time
	UpdatedAt time.Time
}

// StatusAt derives the status from the most recent reading, if any.
func (s Sensor) StatusAt(lastReading *time.Time, now time.Time) SensorStatus {
	if lastReading != nil && !lastReading.Before(now.Add(-ActivityWindow)) {
		return SensorStatusActive
	}
	return SensorStatusInactive
}

func NewSensorBuilder() *sensorBuilder {
	return &sensorBuilder{}
}

type sensorBuilder struct {
	actions []sensorHandler
}

type sensorHandler func(s *Sensor) error

func (b *sensorBuilder) WithName(name string) *sensorBuilder {
	b.actions = append(b.actions, func(s *Sensor) error {
		length := utf8.RuneCountInString(name)
		if length < _minSensorNameLength || length > _maxSensorNameLength {
			return fmt.Errorf("%w: name must be between %d and %d characters", ErrInvalidSensor, _minSensorNameLength, _maxSensorNameLength)
		}
		s.Name = name
		return nil
	})
	return b
}

func (b *sensorBuilder) WithType(value string) *sensorBuilder {
	b.actions = append(b.actions, func(s *Sensor) error {
		if utf8.RuneCountInString(value) < _minSensorTypeLength {
			return fmt.Errorf("%w: type must be at least %d characters", ErrInvalidSensor, _minSensorTypeLength)
		}
		s.Type = value
		return nil
	})
	return b
}

func (b *sensorBuilder) WithLocation(location Location) *sensorBuilder {
	b.actions = append(b.actions, func(s *Sensor) error {
		s.Location = &location
		return nil
	})
	return b
}

func (b *sensorBuilder) Build() (Sensor, error) {
	now := time.Now()
	result := Sensor{
		ID:        ID(utils.GenerateUUID()),
		Status:    SensorStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, a := range b.actions {
		if err := a(&result); err != nil {
			return Sensor{}, err
		}
	}

	if result.Name == "" {
		return Sensor{}, fmt.Errorf("%w: name is required", ErrInvalidSensor)
	}
	if result.Type == "" {
		return Sensor{}, fmt.Errorf("%w: type is required", ErrInvalidSensor)
	}

	return result, nil
}
