package usecases

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// StopReason tells why a run ended.
type StopReason string

const (
	StopReasonNone               StopReason = ""
	StopReasonDurationReached    StopReason = "duration_reached"
	StopReasonInterrupted        StopReason = "interrupted"
	StopReasonRegistrationFailed StopReason = "registration_failed"
)

// RunStats accumulates counters while the loop runs.
type RunStats struct {
	ReadingCount int
	FailedCount  int
	StartTime    time.Time
	Elapsed      time.Duration
}

// Summary is the final outcome of a run, printed by Report.
type Summary struct {
	Reason          StopReason
	SensorID        string
	ReadingCount    int
	FailedCount     int
	Elapsed         time.Duration
	AverageInterval time.Duration
	HasAverage      bool
}

func newSummary(reason StopReason, sensorID string, stats RunStats) Summary {
	summary := Summary{
		Reason:       reason,
		SensorID:     sensorID,
		ReadingCount: stats.ReadingCount,
		FailedCount:  stats.FailedCount,
		Elapsed:      stats.Elapsed,
	}

	if stats.ReadingCount > 0 {
		summary.AverageInterval = stats.Elapsed / time.Duration(stats.ReadingCount)
		summary.HasAverage = true
	}

	return summary
}

var _separator = strings.Repeat("=", 60)

// Report writes the operator facing summary block.
func (s Summary) Report(w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, _separator)
	fmt.Fprintln(w, "Simulation Summary")
	fmt.Fprintln(w, _separator)
	fmt.Fprintf(w, "Total readings sent: %d\n", s.ReadingCount)
	if s.FailedCount > 0 {
		fmt.Fprintf(w, "Failed submissions: %d\n", s.FailedCount)
	}
	fmt.Fprintf(w, "Total time: %.1f seconds\n", s.Elapsed.Seconds())
	if s.HasAverage {
		fmt.Fprintf(w, "Average interval: %.1f seconds\n", s.AverageInterval.Seconds())
	}
	fmt.Fprintln(w, _separator)
}
