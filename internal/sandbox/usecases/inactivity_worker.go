package usecases

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"sensor-simulator/internal/infra/async"

	"github.com/robfig/cron/v3"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	_metricKeyStatusRefreshes = "status_refreshes"
)

// NewInactivityWorker evaluates schedule, a standard five field cron
// expression, on every tick and refreshes the sensor statuses when it fires.
func NewInactivityWorker(ticker *time.Ticker, service SensorService, schedule string) (*InactivityWorker, error) {
	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)
	spec, err := parser.Parse(schedule)
	if err != nil {
		return nil, fmt.Errorf("parsing cron schedule %q: %w", schedule, err)
	}

	return &InactivityWorker{
		ticker:         ticker,
		service:        service,
		schedule:       spec,
		metricCounters: make(map[string]metric.Int64Counter),
		now:            time.Now,
	}, nil
}

var _ async.Worker = &InactivityWorker{}

type InactivityWorker struct {
	ticker         *time.Ticker
	service        SensorService
	schedule       cron.Schedule
	metricCounters map[string]metric.Int64Counter
	now            func() time.Time
	lastFire       time.Time
}

func (w *InactivityWorker) Run(ctx context.Context, done func()) {
	slog.Debug("inactivity worker started")
	defer done()
	w.setupOtelCounters()

	for {
		select {
		case <-ctx.Done():
			slog.Info("inactivity worker cancelled")
			return
		case <-w.ticker.C:
			w.evaluate(ctx)
		}
	}
}

func (w *InactivityWorker) evaluate(ctx context.Context) {
	now := w.now()
	fire, ok := w.dueAt(now)
	if !ok {
		return
	}
	w.lastFire = fire

	report, err := w.service.RefreshStatuses(ctx)
	if err != nil {
		slog.Error("refreshing sensor statuses", slog.Any("error", err))
		return
	}

	slog.Info("sensor statuses refreshed",
		slog.Int("checked", report.Checked),
		slog.Int("active", report.Active),
		slog.Int("inactive", report.Inactive))

	w.metricCounters[_metricKeyStatusRefreshes].Add(ctx, 1,
		metric.WithAttributes(attribute.Int("inactive", report.Inactive)),
	)
}

// dueAt reports the schedule activation that falls within the last minute,
// unless that activation was already handled.
func (w *InactivityWorker) dueAt(now time.Time) (time.Time, bool) {
	next := w.schedule.Next(now.Add(-time.Minute))
	if next.After(now) || next.Equal(w.lastFire) {
		return time.Time{}, false
	}
	return next, true
}

func (w *InactivityWorker) setupOtelCounters() {
	meter := otel.Meter("sensor_sandbox")
	refreshCounter, _ := meter.Int64Counter(
		fmt.Sprintf("%s.%s", "sensor_sandbox", "status_refreshes"),
		metric.WithDescription("sensor_sandbox sensor status refreshes"),
	)

	w.metricCounters[_metricKeyStatusRefreshes] = refreshCounter
}

func (w *InactivityWorker) Shutdown() {
	w.ticker.Stop()
}
