package domain

import (
	"fmt"
	"time"
	"unicode/utf8"

	"sensor-simulator/internal/infra/utils"
)

const _minLocationNameLength = 2

type Location struct {
	ID        ID
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewLocationBuilder() *locationBuilder {
	return &locationBuilder{}
}

type locationBuilder struct {
	actions []locationHandler
}

type locationHandler func(l *Location) error

func (b *locationBuilder) WithName(name string) *locationBuilder {
	b.actions = append(b.actions, func(l *Location) error {
		if utf8.RuneCountInString(name) < _minLocationNameLength {
			return fmt.Errorf("%w: name must be at least %d characters", ErrInvalidLocation, _minLocationNameLength)
		}
		l.Name = name
		return nil
	})
	return b
}

func (b *locationBuilder) Build() (Location, error) {
	now := time.Now()
	result := Location{
		ID:        ID(utils.GenerateUUID()),
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, a := range b.actions {
		if err := a(&result); err != nil {
			return Location{}, err
		}
	}

	if result.Name == "" {
		return Location{}, fmt.Errorf("%w: name is required", ErrInvalidLocation)
	}

	return result, nil
}
