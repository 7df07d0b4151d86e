package domain

import (
	"errors"
	"time"
)

type ID string

func (vo ID) String() string {
	return string(vo)
}

type SensorStatus string

const (
	SensorStatusActive   SensorStatus = "active"
	SensorStatusInactive SensorStatus = "inactive"
)

// ActivityWindow is how recent a reading must be for a sensor to count as active.
const ActivityWindow = 24 * time.Hour

var (
	ErrInvalidSensor   = errors.New("invalid sensor")
	ErrInvalidLocation = errors.New("invalid location")
	ErrInvalidReading  = errors.New("invalid reading")
)
