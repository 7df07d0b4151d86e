package internal

import (
	"time"

	"sensor-simulator/internal/sandbox/domain"
)

type Reading struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	SensorID  string    `json:"sensor_id" gorm:"index:idx_sensor_data_sensor_timestamp;not null"`
	Timestamp time.Time `json:"data_timestamp" gorm:"index:idx_sensor_data_sensor_timestamp;column:data_timestamp"`
	Value     float64   `json:"data_value" gorm:"column:data_value"`
	Type      string    `json:"data_type" gorm:"column:data_type"`
	CreatedAt time.Time `json:"created_at"`
}

func (Reading) TableName() string {
	return "sensor_data"
}

func (r Reading) ToDomain() domain.Reading {
	return domain.Reading{
		ID:        domain.ID(r.ID),
		SensorID:  domain.ID(r.SensorID),
		Value:     r.Value,
		Type:      r.Type,
		Timestamp: r.Timestamp,
		CreatedAt: r.CreatedAt,
	}
}

func FromReading(value domain.Reading) Reading {
	return Reading{
		ID:        value.ID.String(),
		SensorID:  value.SensorID.String(),
		Timestamp: value.Timestamp.UTC(),
		Value:     value.Value,
		Type:      value.Type,
		CreatedAt: value.CreatedAt.UTC(),
	}
}
