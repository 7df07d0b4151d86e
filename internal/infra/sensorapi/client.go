package sensorapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sensor-simulator/internal/infra/node"
	"sensor-simulator/internal/infra/sensorapi/internal"
	"sensor-simulator/internal/simulator/domain"
	"sensor-simulator/internal/simulator/usecases"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	_listSensorsPath   = "/api/sensors"
	_createSensorPath  = "/api/sensor"
	_submitReadingPath = "/api/sensors/{sensorId}/data"

	_defaultTimeout = 10 * time.Second
)

var errMalformedResponse = errors.New("malformed collaborator response")

type Config struct {
	BaseURL string
	// Timeout bounds every request; zero falls back to ten seconds.
	Timeout time.Duration
}

func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = _defaultTimeout
	}

	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", fmt.Sprintf("sensor-simulator/%s", node.Version))

	return &Client{
		client: client,
	}
}

var _ usecases.SensorAPI = (*Client)(nil)

// Client talks to the collaborator's sensor API. Requests are single shot.
type Client struct {
	client *resty.Client
}

func (c *Client) ListSensors(ctx context.Context) ([]domain.RegisteredSensor, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		Get(_listSensorsPath)
	if err != nil {
		return nil, fmt.Errorf("%w: listing sensors: %w", domain.ErrCollaboratorUnreachable, err)
	}
	if resp.IsError() {
		return nil, statusError(resp)
	}

	var body internal.SensorListResponse
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return nil, fmt.Errorf("%w: decoding sensor list: %w", errMalformedResponse, err)
	}

	result := make([]domain.RegisteredSensor, 0, len(body.Data))
	for _, sensor := range body.Data {
		result = append(result, sensor.ToDomain())
	}

	return result, nil
}

func (c *Client) CreateSensor(ctx context.Context, registration domain.SensorRegistration) (domain.SensorID, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(internal.FromRegistration(registration)).
		Post(_createSensorPath)
	if err != nil {
		return "", fmt.Errorf("%w: creating sensor: %w", domain.ErrCollaboratorUnreachable, err)
	}
	if resp.StatusCode() == http.StatusConflict {
		return "", domain.ErrSensorAlreadyExists
	}
	if resp.IsError() {
		return "", statusError(resp)
	}

	var body internal.SensorCreateResponse
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return "", fmt.Errorf("%w: decoding created sensor: %w", errMalformedResponse, err)
	}
	if body.SensorID.IsZero() {
		return "", fmt.Errorf("%w: created sensor has no id", errMalformedResponse)
	}

	return body.SensorID, nil
}

func (c *Client) SubmitReading(ctx context.Context, id domain.SensorID, value float64) (string, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("sensorId", id.String()).
		SetBody(internal.ReadingRequest{Value: value}).
		Post(_submitReadingPath)
	if err != nil {
		return "", &domain.SubmissionError{
			Kind:     domain.SubmissionUnreachable,
			SensorID: id,
			Err:      fmt.Errorf("%w: %w", domain.ErrCollaboratorUnreachable, err),
		}
	}
	if resp.IsError() {
		return "", &domain.SubmissionError{
			Kind:       domain.SubmissionHTTPStatus,
			SensorID:   id,
			StatusCode: resp.StatusCode(),
			Err:        statusError(resp),
		}
	}

	var body internal.ReadingResponse
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		slog.Warn("reading accepted with an unexpected body", slog.String("sensor_id", id.String()), slog.Any("error", err))
	}

	return body.Status, nil
}

func statusError(resp *resty.Response) error {
	return &domain.HTTPStatusError{
		Method:     resp.Request.Method,
		URL:        resp.Request.URL,
		StatusCode: resp.StatusCode(),
		Body:       strings.TrimSpace(resp.String()),
	}
}
