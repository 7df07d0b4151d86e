package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// SensorID is the collaborator-assigned identifier. The collaborator may encode
// it as a JSON string or a JSON number; both decode to the same textual form.
type SensorID string

func (id SensorID) String() string {
	return string(id)
}

func (id SensorID) IsZero() bool {
	return id == ""
}

func (id *SensorID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var value string
		if err := json.Unmarshal(data, &value); err != nil {
			return fmt.Errorf("decoding sensor id: %w", err)
		}
		*id = SensorID(value)
		return nil
	}

	var value json.Number
	if err := json.Unmarshal(data, &value); err != nil {
		return fmt.Errorf("decoding sensor id: %w", err)
	}
	*id = SensorID(value.String())
	return nil
}

// RegisteredSensor is one entry of the collaborator's sensor listing.
type RegisteredSensor struct {
	ID     SensorID
	Name   string
	Type   string
	Status string
}

// SensorRegistration is the payload needed to create a sensor.
type SensorRegistration struct {
	Name     string
	Type     SensorType
	Location string
}

func RegistrationFrom(cfg SensorConfig) SensorRegistration {
	return SensorRegistration{
		Name:     cfg.Name,
		Type:     cfg.Type,
		Location: cfg.Location,
	}
}
