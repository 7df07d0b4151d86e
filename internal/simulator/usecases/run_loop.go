package usecases

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sensor-simulator/internal/simulator/domain"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	_metricKeyReadingsSent   = "readings_sent"
	_metricKeyReadingsFailed = "readings_failed"
)

var ErrRunLoopStarted = errors.New("run loop already started")

type RunState string

const (
	RunStateIdle        RunState = "idle"
	RunStateRegistering RunState = "registering"
	RunStateRunning     RunState = "running"
	RunStateStopping    RunState = "stopping"
	RunStateTerminated  RunState = "terminated"
)

type RunOptions struct {
	Interval       time.Duration
	Duration       time.Duration // zero runs until interrupted
	PreferExisting bool
}

func NewRunLoop(
	sensor domain.SensorConfig,
	options RunOptions,
	resolver SensorResolver,
	api SensorAPI,
	generator ReadingSource,
	clock Clock,
) *RunLoop {
	return &RunLoop{
		sensor:         sensor,
		options:        options,
		resolver:       resolver,
		api:            api,
		generator:      generator,
		clock:          clock,
		state:          RunStateIdle,
		metricCounters: make(map[string]metric.Int64Counter),
	}
}

// RunLoop owns every piece of mutable simulation state. It is meant to be
// driven by a single goroutine.
type RunLoop struct {
	sensor    domain.SensorConfig
	options   RunOptions
	resolver  SensorResolver
	api       SensorAPI
	generator ReadingSource
	clock     Clock

	state          RunState
	sensorID       domain.SensorID
	stats          RunStats
	metricCounters map[string]metric.Int64Counter
}

func (l *RunLoop) State() RunState {
	return l.state
}

func (l *RunLoop) SensorID() domain.SensorID {
	return l.sensorID
}

// Run resolves the sensor identity and then sends one reading per interval
// until the duration elapses or ctx is cancelled. Cancellation is a normal
// stop and yields a nil error.
func (l *RunLoop) Run(ctx context.Context) (Summary, error) {
	if l.state != RunStateIdle {
		return Summary{}, ErrRunLoopStarted
	}
	l.setupOtelCounters()

	l.transition(RunStateRegistering)
	id, err := l.resolver.Resolve(ctx, l.sensor, l.options.PreferExisting)
	if err == nil && id.IsZero() {
		err = &domain.ResolutionError{Kind: domain.ResolutionUnreachable, Name: l.sensor.Name, Err: domain.ErrSensorNotResolved}
	}
	if err != nil {
		l.transition(RunStateTerminated)
		if ctx.Err() != nil {
			slog.Info("simulator stopped by user during registration")
			return newSummary(StopReasonInterrupted, "", RunStats{}), nil
		}
		return newSummary(StopReasonRegistrationFailed, "", RunStats{}), fmt.Errorf("registering sensor: %w", err)
	}
	l.sensorID = id

	slog.Info("sending readings",
		slog.String("sensor_id", id.String()),
		slog.Duration("interval", l.options.Interval),
		slog.Duration("duration", l.options.Duration),
	)

	l.stats = RunStats{StartTime: l.clock.Now()}
	l.transition(RunStateRunning)
	reason := l.loop(ctx)

	l.transition(RunStateStopping)
	switch reason {
	case StopReasonDurationReached:
		slog.Info("duration reached, stopping", slog.Duration("duration", l.options.Duration))
	case StopReasonInterrupted:
		slog.Info("simulator stopped by user")
	}

	l.stats.Elapsed = l.clock.Now().Sub(l.stats.StartTime)
	l.transition(RunStateTerminated)

	return newSummary(reason, id.String(), l.stats), nil
}

func (l *RunLoop) loop(ctx context.Context) StopReason {
	for {
		if ctx.Err() != nil {
			return StopReasonInterrupted
		}

		if l.options.Duration > 0 && l.clock.Now().Sub(l.stats.StartTime) >= l.options.Duration {
			return StopReasonDurationReached
		}

		value := l.generator.Next()
		if interrupted := l.submit(ctx, value); interrupted {
			return StopReasonInterrupted
		}

		select {
		case <-ctx.Done():
			return StopReasonInterrupted
		case <-l.clock.After(l.options.Interval):
		}
	}
}

// submit sends one reading. It reports true when ctx was cancelled while the
// request was in flight; that reading is neither counted nor reported as failed.
func (l *RunLoop) submit(ctx context.Context, value float64) bool {
	status, err := l.api.SubmitReading(ctx, l.sensorID, value)
	if err != nil {
		if ctx.Err() != nil {
			return true
		}

		l.stats.FailedCount++
		submissionErr := l.classify(err)
		l.metricCounters[_metricKeyReadingsFailed].Add(ctx, 1,
			metric.WithAttributes(attribute.String("kind", string(submissionErr.Kind))),
		)
		slog.Error("failed to send reading",
			slog.String("sensor_id", l.sensorID.String()),
			slog.Float64("value", value),
			slog.Any("error", submissionErr),
		)
		return false
	}

	l.stats.ReadingCount++
	l.metricCounters[_metricKeyReadingsSent].Add(ctx, 1,
		metric.WithAttributes(attribute.String("sensor_type", l.sensor.Type.String())),
	)
	slog.Info("reading sent",
		slog.Float64("value", value),
		slog.String("status", status),
		slog.Int("count", l.stats.ReadingCount),
	)
	return false
}

func (l *RunLoop) classify(err error) *domain.SubmissionError {
	var submissionErr *domain.SubmissionError
	if errors.As(err, &submissionErr) {
		return submissionErr
	}

	var statusErr *domain.HTTPStatusError
	if errors.As(err, &statusErr) {
		return &domain.SubmissionError{
			Kind:       domain.SubmissionHTTPStatus,
			SensorID:   l.sensorID,
			StatusCode: statusErr.StatusCode,
			Err:        err,
		}
	}

	return &domain.SubmissionError{
		Kind:     domain.SubmissionUnreachable,
		SensorID: l.sensorID,
		Err:      err,
	}
}

func (l *RunLoop) transition(next RunState) {
	slog.Debug("run loop transition", slog.String("from", string(l.state)), slog.String("to", string(next)))
	l.state = next
}

func (l *RunLoop) setupOtelCounters() {
	meter := otel.Meter("sensor_simulator")
	sentCounter, _ := meter.Int64Counter(
		fmt.Sprintf("%s.%s", "sensor_simulator", "readings.sent"),
		metric.WithDescription("sensor_simulator readings accepted by the collaborator"),
	)
	failedCounter, _ := meter.Int64Counter(
		fmt.Sprintf("%s.%s", "sensor_simulator", "readings.failed"),
		metric.WithDescription("sensor_simulator readings rejected or not delivered"),
	)

	l.metricCounters[_metricKeyReadingsSent] = sentCounter
	l.metricCounters[_metricKeyReadingsFailed] = failedCounter
}
