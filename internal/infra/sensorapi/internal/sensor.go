package internal

import "sensor-simulator/internal/simulator/domain"

type SensorListResponse struct {
	Data []Sensor `json:"data"`
}

type Sensor struct {
	ID     domain.SensorID `json:"sensor_id"`
	Name   string          `json:"sensor_name"`
	Type   string          `json:"sensor_type"`
	Status string          `json:"sensor_status"`
}

func (s Sensor) ToDomain() domain.RegisteredSensor {
	return domain.RegisteredSensor{
		ID:     s.ID,
		Name:   s.Name,
		Type:   s.Type,
		Status: s.Status,
	}
}

type SensorCreateRequest struct {
	SensorName   string `json:"sensorName"`
	SensorType   string `json:"sensorType"`
	LocationName string `json:"locationName"`
}

func FromRegistration(value domain.SensorRegistration) SensorCreateRequest {
	return SensorCreateRequest{
		SensorName:   value.Name,
		SensorType:   value.Type.String(),
		LocationName: value.Location,
	}
}

type SensorCreateResponse struct {
	SensorID domain.SensorID `json:"sensorID"`
	Status   string          `json:"status,omitempty"`
}

type ReadingRequest struct {
	Value float64 `json:"value"`
}

type ReadingResponse struct {
	Status string `json:"status"`
}
