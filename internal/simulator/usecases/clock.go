package usecases

import "time"

// Clock is the time source of the run loop.
type Clock interface {
	Now() time.Time
	After(time.Duration) <-chan time.Time
}

var _ Clock = SystemClock{}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

func (SystemClock) After(d time.Duration) <-chan time.Time {
	return time.After(d)
}
