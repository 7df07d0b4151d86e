package internal

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
	"time"

	"sensor-simulator/internal/sandbox/domain"
	"sensor-simulator/internal/sandbox/usecases"
)

var ErrInvalidValue = errors.New("value must be a finite number or numeric string")

type SensorCreateRequest struct {
	SensorName   string `json:"sensorName"`
	SensorType   string `json:"sensorType"`
	LocationName string `json:"locationName"`
}

func (r SensorCreateRequest) ToRegistration() usecases.SensorRegistration {
	return usecases.SensorRegistration{
		Name:         r.SensorName,
		Type:         r.SensorType,
		LocationName: r.LocationName,
	}
}

type SensorCreateResponse struct {
	SensorID string `json:"sensorID"`
	Status   string `json:"status"`
}

type LocationResponse struct {
	ID        string    `json:"location_id"`
	Name      string    `json:"location_name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToLocationResponse(location domain.Location) LocationResponse {
	return LocationResponse{
		ID:        location.ID.String(),
		Name:      location.Name,
		CreatedAt: location.CreatedAt,
		UpdatedAt: location.UpdatedAt,
	}
}

type SensorResponse struct {
	ID             string            `json:"sensor_id"`
	Name           string            `json:"sensor_name"`
	Type           string            `json:"sensor_type"`
	LocationID     *string           `json:"sensor_location_id"`
	Status         string            `json:"sensor_status"`
	ComputedStatus string            `json:"computed_status,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
	Location       *LocationResponse `json:"location"`
}

func ToSensorResponse(sensor domain.Sensor) SensorResponse {
	response := SensorResponse{
		ID:        sensor.ID.String(),
		Name:      sensor.Name,
		Type:      sensor.Type,
		Status:    string(sensor.Status),
		CreatedAt: sensor.CreatedAt,
		UpdatedAt: sensor.UpdatedAt,
	}

	if sensor.Location != nil {
		locationID := sensor.Location.ID.String()
		location := ToLocationResponse(*sensor.Location)
		response.LocationID = &locationID
		response.Location = &location
	}

	return response
}

func ToSensorViewResponse(view usecases.SensorView) SensorResponse {
	response := ToSensorResponse(view.Sensor)
	response.ComputedStatus = string(view.ComputedStatus)
	return response
}

// ReadingRequest accepts the value either as a JSON number or as a numeric string.
type ReadingRequest struct {
	Value json.RawMessage `json:"value"`
}

func (r ReadingRequest) ParseValue() (float64, error) {
	raw := strings.TrimSpace(string(r.Value))
	if raw == "" || raw == "null" {
		return 0, ErrInvalidValue
	}

	if strings.HasPrefix(raw, `"`) {
		var text string
		if err := json.Unmarshal(r.Value, &text); err != nil {
			return 0, ErrInvalidValue
		}
		raw = strings.TrimSpace(text)
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, ErrInvalidValue
	}

	return value, nil
}

type ReadingSubmitResponse struct {
	Status string `json:"status"`
}

type ReadingResponse struct {
	ID        string    `json:"id"`
	SensorID  string    `json:"sensor_id"`
	Timestamp time.Time `json:"data_timestamp"`
	Value     float64   `json:"data_value"`
	Type      string    `json:"data_type"`
	CreatedAt time.Time `json:"created_at"`
}

func ToReadingResponse(reading domain.Reading) ReadingResponse {
	return ReadingResponse{
		ID:        reading.ID.String(),
		SensorID:  reading.SensorID.String(),
		Timestamp: reading.Timestamp,
		Value:     reading.Value,
		Type:      reading.Type,
		CreatedAt: reading.CreatedAt,
	}
}

type DataResponse[T any] struct {
	Data []T `json:"data"`
}

type SingleResponse[T any] struct {
	Data T `json:"data"`
}
