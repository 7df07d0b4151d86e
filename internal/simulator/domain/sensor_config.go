package domain

import (
	"fmt"
	"math"
)

type SensorType string

const (
	SensorTypeTemperature SensorType = "Temperature"
	SensorTypeHumidity    SensorType = "Humidity"
	SensorTypePressure    SensorType = "Pressure"
	SensorTypeLight       SensorType = "Light"
)

func (t SensorType) String() string {
	return string(t)
}

// TypeDefaults holds the base value and variance used when no override is given.
type TypeDefaults struct {
	BaseValue float64
	Variance  float64
}

var (
	_fallbackDefaults = TypeDefaults{BaseValue: 20, Variance: 5}
	_typeDefaults     = map[SensorType]TypeDefaults{
		SensorTypeTemperature: {BaseValue: 22, Variance: 3},
		SensorTypeHumidity:    {BaseValue: 60, Variance: 10},
		SensorTypePressure:    {BaseValue: 1013, Variance: 5},
		SensorTypeLight:       {BaseValue: 500, Variance: 100},
	}
)

// DefaultsFor returns the defaults of a known sensor type, or the generic
// fallback for any other type.
func DefaultsFor(t SensorType) TypeDefaults {
	if defaults, ok := _typeDefaults[t]; ok {
		return defaults
	}
	return _fallbackDefaults
}

// SensorConfig describes the simulated sensor. It is built once and never mutated.
type SensorConfig struct {
	Name      string
	Type      SensorType
	Location  string
	BaseValue float64
	Variance  float64
}

func NewSensorConfigBuilder() *sensorConfigBuilder {
	return &sensorConfigBuilder{}
}

type sensorConfigBuilder struct {
	actions   []sensorConfigHandler
	baseValue *float64
	variance  *float64
}

type sensorConfigHandler func(v *SensorConfig) error

func (b *sensorConfigBuilder) WithName(value string) *sensorConfigBuilder {
	b.actions = append(b.actions, func(c *SensorConfig) error {
		c.Name = value
		return nil
	})
	return b
}

func (b *sensorConfigBuilder) WithType(value SensorType) *sensorConfigBuilder {
	b.actions = append(b.actions, func(c *SensorConfig) error {
		c.Type = value
		defaults := DefaultsFor(value)
		c.BaseValue = defaults.BaseValue
		c.Variance = defaults.Variance
		return nil
	})
	return b
}

func (b *sensorConfigBuilder) WithLocation(value string) *sensorConfigBuilder {
	b.actions = append(b.actions, func(c *SensorConfig) error {
		c.Location = value
		return nil
	})
	return b
}

// WithBaseValue overrides the type default. A nil value keeps the default,
// an explicit zero is honoured.
func (b *sensorConfigBuilder) WithBaseValue(value *float64) *sensorConfigBuilder {
	b.baseValue = value
	return b
}

// WithVariance overrides the type default. A nil value keeps the default,
// an explicit zero is honoured.
func (b *sensorConfigBuilder) WithVariance(value *float64) *sensorConfigBuilder {
	b.variance = value
	return b
}

func (b *sensorConfigBuilder) Build() (SensorConfig, error) {
	result := SensorConfig{
		Type:      SensorTypeTemperature,
		BaseValue: DefaultsFor(SensorTypeTemperature).BaseValue,
		Variance:  DefaultsFor(SensorTypeTemperature).Variance,
	}
	for _, a := range b.actions {
		if err := a(&result); err != nil {
			return SensorConfig{}, err
		}
	}

	if b.baseValue != nil {
		if math.IsNaN(*b.baseValue) || math.IsInf(*b.baseValue, 0) {
			return SensorConfig{}, fmt.Errorf("%w: base value must be finite", ErrInvalidSensorConfig)
		}
		result.BaseValue = *b.baseValue
	}
	if b.variance != nil {
		if math.IsNaN(*b.variance) || math.IsInf(*b.variance, 0) || *b.variance < 0 {
			return SensorConfig{}, fmt.Errorf("%w: variance must be a finite value >= 0", ErrInvalidSensorConfig)
		}
		result.Variance = *b.variance
	}

	if result.Name == "" {
		return SensorConfig{}, fmt.Errorf("%w: name is required", ErrInvalidSensorConfig)
	}
	if result.Type == "" {
		return SensorConfig{}, fmt.Errorf("%w: type is required", ErrInvalidSensorConfig)
	}

	return result, nil
}
