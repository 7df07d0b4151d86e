package internal

import (
	"time"

	"sensor-simulator/internal/sandbox/domain"
)

type Location struct {
	ID        string    `json:"location_id" gorm:"primaryKey;column:location_id"`
	Name      string    `json:"location_name" gorm:"uniqueIndex;not null;column:location_name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Location) TableName() string {
	return "locations"
}

func (l Location) ToDomain() domain.Location {
	return domain.Location{
		ID:        domain.ID(l.ID),
		Name:      l.Name,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}

func FromLocation(value domain.Location) Location {
	return Location{
		ID:        value.ID.String(),
		Name:      value.Name,
		CreatedAt: value.CreatedAt.UTC(),
		UpdatedAt: value.UpdatedAt.UTC(),
	}
}

type Sensor struct {
	ID         string    `json:"sensor_id" gorm:"primaryKey;column:sensor_id"`
	Name       string    `json:"sensor_name" gorm:"uniqueIndex;not null;column:sensor_name"`
	Type       string    `json:"sensor_type" gorm:"not null;column:sensor_type"`
	LocationID *string   `json:"sensor_location_id" gorm:"index;column:sensor_location_id"`
	Location   *Location `json:"location,omitempty" gorm:"foreignKey:LocationID;references:ID"`
	Status     string    `json:"sensor_status" gorm:"not null;column:sensor_status"`
	CreatedAt  time.Time `json:"created_at" gorm:"index"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (Sensor) TableName() string {
	return "sensors"
}

func (s Sensor) ToDomain() domain.Sensor {
	sensor := domain.Sensor{
		ID:        domain.ID(s.ID),
		Name:      s.Name,
		Type:      s.Type,
		Status:    domain.SensorStatus(s.Status),
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}

	if s.Location != nil {
		location := s.Location.ToDomain()
		sensor.Location = &location
	}

	return sensor
}

func FromSensor(value domain.Sensor) Sensor {
	sensor := Sensor{
		ID:        value.ID.String(),
		Name:      value.Name,
		Type:      value.Type,
		Status:    string(value.Status),
		CreatedAt: value.CreatedAt.UTC(),
		UpdatedAt: value.UpdatedAt.UTC(),
	}

	if value.Location != nil {
		locationID := value.Location.ID.String()
		sensor.LocationID = &locationID
	}

	return sensor
}
