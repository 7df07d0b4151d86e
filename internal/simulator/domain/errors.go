package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidSensorConfig     = errors.New("invalid sensor config")
	ErrSensorAlreadyExists     = errors.New("sensor already exists")
	ErrSensorNotResolved       = errors.New("sensor identity not resolved")
	ErrCollaboratorUnreachable = errors.New("collaborator unreachable")
)

type ResolutionErrorKind string

const (
	ResolutionUnreachable        ResolutionErrorKind = "unreachable"
	ResolutionConflictUnresolved ResolutionErrorKind = "conflict_unresolved"
)

// ResolutionError aborts a run before any reading is sent.
type ResolutionError struct {
	Kind ResolutionErrorKind
	Name string
	Err  error
}

func (e *ResolutionError) Error() string {
	switch e.Kind {
	case ResolutionConflictUnresolved:
		return fmt.Sprintf("sensor %q already exists but could not be found", e.Name)
	default:
		if e.Err != nil {
			return fmt.Sprintf("resolving sensor %q: %s", e.Name, e.Err.Error())
		}
		return fmt.Sprintf("resolving sensor %q: collaborator unreachable", e.Name)
	}
}

func (e *ResolutionError) Unwrap() error {
	return e.Err
}

type SubmissionErrorKind string

const (
	SubmissionUnreachable SubmissionErrorKind = "unreachable"
	SubmissionHTTPStatus  SubmissionErrorKind = "http_status"
)

// SubmissionError is reported for a single cycle; the run loop keeps going.
type SubmissionError struct {
	Kind       SubmissionErrorKind
	SensorID   SensorID
	StatusCode int
	Err        error
}

func (e *SubmissionError) Error() string {
	if e.Kind == SubmissionHTTPStatus {
		return fmt.Sprintf("submitting reading for sensor %s: unexpected status %d", e.SensorID, e.StatusCode)
	}
	if e.Err != nil {
		return fmt.Sprintf("submitting reading for sensor %s: %s", e.SensorID, e.Err.Error())
	}
	return fmt.Sprintf("submitting reading for sensor %s: collaborator unreachable", e.SensorID)
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}

// HTTPStatusError is returned by the collaborator client on a non-2xx answer.
type HTTPStatusError struct {
	Method     string
	URL        string
	StatusCode int
	Body       string
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %d: %s", e.Method, e.URL, e.StatusCode, e.Body)
}
