package domain

import (
	"fmt"
	"math"
	"time"

	"sensor-simulator/internal/infra/utils"
)

type Reading struct {
	ID        ID
	SensorID  ID
	Value     float64
	Type      string
	Timestamp time.Time
	CreatedAt time.Time
}

func NewReadingBuilder() *readingBuilder {
	return &readingBuilder{}
}

type readingBuilder struct {
	actions []readingHandler
}

type readingHandler func(r *Reading) error

func (b *readingBuilder) WithSensor(sensor Sensor) *readingBuilder {
	b.actions = append(b.actions, func(r *Reading) error {
		r.SensorID = sensor.ID
		r.Type = sensor.Type
		return nil
	})
	return b
}

func (b *readingBuilder) WithValue(value float64) *readingBuilder {
	b.actions = append(b.actions, func(r *Reading) error {
		if math.IsNaN(value) || math.IsInf(value, 0) {
			return fmt.Errorf("%w: value must be finite", ErrInvalidReading)
		}
		r.Value = value
		return nil
	})
	return b
}

func (b *readingBuilder) WithTimestamp(value time.Time) *readingBuilder {
	b.actions = append(b.actions, func(r *Reading) error {
		r.Timestamp = value
		return nil
	})
	return b
}

func (b *readingBuilder) Build() (Reading, error) {
	now := time.Now()
	result := Reading{
		ID:        ID(utils.GenerateUUID()),
		Timestamp: now,
		CreatedAt: now,
	}
	for _, a := range b.actions {
		if err := a(&result); err != nil {
			return Reading{}, err
		}
	}

	if result.SensorID == "" {
		return Reading{}, fmt.Errorf("%w: sensor is required", ErrInvalidReading)
	}

	return result, nil
}
