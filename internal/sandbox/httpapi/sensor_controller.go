package httpapi

import (
	"errors"
	"log/slog"
	"net/http"

	"sensor-simulator/internal/infra/httpserver"
	"sensor-simulator/internal/sandbox/domain"
	"sensor-simulator/internal/sandbox/httpapi/internal"
	"sensor-simulator/internal/sandbox/usecases"
)

const (
	validationErrMessage       = "Validation failed"
	sensorNotFoundErrMessage   = "Sensor not found"
	sensorDuplicatedErrMessage = "Sensor name already exists"
	internalErrMessage         = "Internal server error"
	registeredStatus           = "registered"
	acceptedStatus             = "ok"
)

func NewSensorController(service usecases.SensorService) *SensorController {
	return &SensorController{
		service: service,
	}
}

var _ httpserver.Controller = &SensorController{}

type SensorController struct {
	service usecases.SensorService
}

func (c *SensorController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /api/sensors", c.listSensors())
	router.Handle("POST /api/sensor", c.registerSensor())
	router.Handle("GET /api/sensors/{sensorId}", c.getSensor())
	router.Handle("POST /api/sensors/{sensorId}/data", c.submitReading())
	router.Handle("GET /api/sensors/{sensorId}/data", c.recentReadings())
	router.Handle("GET /api/locations", c.listLocations())
}

func (c *SensorController) listSensors() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		views, err := c.service.ListSensors(r.Context())
		if err != nil {
			slog.Error("listing sensors", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusInternalServerError, internalErrMessage, err.Error())
			return
		}

		responses := make([]internal.SensorResponse, len(views))
		for i, view := range views {
			responses[i] = internal.ToSensorViewResponse(view)
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.DataResponse[internal.SensorResponse]{Data: responses})
	}
}

func (c *SensorController) registerSensor() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.SensorCreateRequest
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			slog.Warn("decoding register sensor request", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusBadRequest, validationErrMessage, err.Error())
			return
		}

		sensor, err := c.service.RegisterSensor(r.Context(), body.ToRegistration())
		switch {
		case errors.Is(err, domain.ErrInvalidSensor), errors.Is(err, domain.ErrInvalidLocation):
			httpserver.ReplyWithError(w, http.StatusBadRequest, validationErrMessage, err.Error())
			return
		case errors.Is(err, usecases.ErrSensorDuplicated):
			httpserver.ReplyWithError(w, http.StatusConflict, sensorDuplicatedErrMessage, "")
			return
		case err != nil:
			slog.Error("registering sensor", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusInternalServerError, internalErrMessage, err.Error())
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusCreated, internal.SensorCreateResponse{
			SensorID: sensor.ID.String(),
			Status:   registeredStatus,
		})
	}
}

func (c *SensorController) getSensor() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := domain.ID(r.PathValue("sensorId"))

		sensor, err := c.service.GetSensor(r.Context(), id)
		if errors.Is(err, usecases.ErrSensorNotFound) {
			httpserver.ReplyWithError(w, http.StatusNotFound, sensorNotFoundErrMessage, "")
			return
		}
		if err != nil {
			slog.Error("getting sensor", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusInternalServerError, internalErrMessage, err.Error())
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.SingleResponse[internal.SensorResponse]{Data: internal.ToSensorResponse(sensor)})
	}
}

func (c *SensorController) submitReading() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := domain.ID(r.PathValue("sensorId"))

		var body internal.ReadingRequest
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, validationErrMessage, err.Error())
			return
		}

		value, err := body.ParseValue()
		if err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, validationErrMessage, err.Error())
			return
		}

		_, err = c.service.SubmitReading(r.Context(), id, value)
		switch {
		case errors.Is(err, usecases.ErrSensorNotFound):
			httpserver.ReplyWithError(w, http.StatusNotFound, sensorNotFoundErrMessage, "")
			return
		case errors.Is(err, domain.ErrInvalidReading):
			httpserver.ReplyWithError(w, http.StatusBadRequest, validationErrMessage, err.Error())
			return
		case err != nil:
			slog.Error("submitting reading", slog.String("sensor_id", id.String()), slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusInternalServerError, internalErrMessage, err.Error())
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusCreated, internal.ReadingSubmitResponse{Status: acceptedStatus})
	}
}

func (c *SensorController) recentReadings() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := domain.ID(r.PathValue("sensorId"))

		readings, err := c.service.RecentReadings(r.Context(), id)
		if err != nil {
			slog.Error("listing readings", slog.String("sensor_id", id.String()), slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusInternalServerError, internalErrMessage, err.Error())
			return
		}

		responses := make([]internal.ReadingResponse, len(readings))
		for i, reading := range readings {
			responses[i] = internal.ToReadingResponse(reading)
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.DataResponse[internal.ReadingResponse]{Data: responses})
	}
}

func (c *SensorController) listLocations() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		locations, err := c.service.ListLocations(r.Context())
		if err != nil {
			slog.Error("listing locations", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusInternalServerError, internalErrMessage, err.Error())
			return
		}

		responses := make([]internal.LocationResponse, len(locations))
		for i, location := range locations {
			responses[i] = internal.ToLocationResponse(location)
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.DataResponse[internal.LocationResponse]{Data: responses})
	}
}
