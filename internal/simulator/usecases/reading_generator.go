package usecases

import (
	"math"
	"sensor-simulator/internal/simulator/domain"
)

const (
	_trendMagnitude    = 0.1
	_trendFlipChance   = 0.1
	_roundingPrecision = 100
)

// NewReadingGenerator draws the initial trend right away. The first reading
// does not include it; every later reading does.
func NewReadingGenerator(cfg domain.SensorConfig, rnd RandomSource) *ReadingGenerator {
	return &ReadingGenerator{
		baseValue: cfg.BaseValue,
		variance:  cfg.Variance,
		rnd:       rnd,
		trend:     uniform(rnd, -_trendMagnitude, _trendMagnitude),
	}
}

type ReadingGenerator struct {
	baseValue float64
	variance  float64
	rnd       RandomSource

	trend     float64
	primed    bool
	flipCount int
}

func (g *ReadingGenerator) Next() float64 {
	value := g.baseValue + uniform(g.rnd, -g.variance, g.variance)

	if g.primed {
		value += g.trend
		if g.rnd.Float64() < _trendFlipChance {
			g.trend = -g.trend
			g.flipCount++
		}
	} else {
		g.primed = true
	}

	return round(value)
}

// Trend is the drift that the next reading will carry once primed.
func (g *ReadingGenerator) Trend() float64 {
	return g.trend
}

func (g *ReadingGenerator) FlipCount() int {
	return g.flipCount
}

func uniform(rnd RandomSource, low, high float64) float64 {
	return low + (high-low)*rnd.Float64()
}

func round(value float64) float64 {
	return math.Round(value*_roundingPrecision) / _roundingPrecision
}
