package sensorapi_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sensor-simulator/internal/infra/sensorapi"
	"sensor-simulator/internal/simulator/domain"
	"strings"
	"time"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("Client", func() {
	var (
		server   *httptest.Server
		router   *http.ServeMux
		client   *sensorapi.Client
		ctx      context.Context
		received map[string]any
	)

	ginkgo.BeforeEach(func() {
		router = http.NewServeMux()
		server = httptest.NewServer(router)
		client = sensorapi.NewClient(sensorapi.Config{BaseURL: server.URL + "/", Timeout: 2 * time.Second})
		ctx = context.Background()
		received = nil
	})

	ginkgo.AfterEach(func() {
		server.Close()
	})

	decodeBody := func(r *http.Request) {
		body, err := io.ReadAll(r.Body)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(json.Unmarshal(body, &received)).To(gomega.Succeed())
	}

	reply := func(w http.ResponseWriter, status int, body string) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}

	ginkgo.Context("ListSensors", func() {
		ginkgo.It("should decode the listing in order", func() {
			router.HandleFunc("GET /api/sensors", func(w http.ResponseWriter, r *http.Request) {
				gomega.Expect(r.Header.Get("User-Agent")).To(gomega.HavePrefix("sensor-simulator/"))
				reply(w, http.StatusOK, `{"data":[
					{"sensor_id":"a1","sensor_name":"X","sensor_type":"Temperature","sensor_status":"active"},
					{"sensor_id":17,"sensor_name":"Y","sensor_type":"Light","sensor_status":"inactive"}]}`)
			})

			sensors, err := client.ListSensors(ctx)

			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(sensors).To(gomega.Equal([]domain.RegisteredSensor{
				{ID: "a1", Name: "X", Type: "Temperature", Status: "active"},
				{ID: "17", Name: "Y", Type: "Light", Status: "inactive"},
			}))
		})

		ginkgo.It("should surface an http status error", func() {
			router.HandleFunc("GET /api/sensors", func(w http.ResponseWriter, r *http.Request) {
				reply(w, http.StatusInternalServerError, `{"error":"Internal server error"}`)
			})

			_, err := client.ListSensors(ctx)

			var statusErr *domain.HTTPStatusError
			gomega.Expect(errors.As(err, &statusErr)).To(gomega.BeTrue())
			gomega.Expect(statusErr.StatusCode).To(gomega.Equal(http.StatusInternalServerError))
		})
	})

	ginkgo.Context("CreateSensor", func() {
		ginkgo.It("should send the registration payload and return the new id", func() {
			router.HandleFunc("POST /api/sensor", func(w http.ResponseWriter, r *http.Request) {
				decodeBody(r)
				reply(w, http.StatusCreated, `{"sensorID":"s-1","status":"registered"}`)
			})

			id, err := client.CreateSensor(ctx, domain.SensorRegistration{Name: "X", Type: domain.SensorTypeHumidity, Location: "Lab"})

			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(id).To(gomega.Equal(domain.SensorID("s-1")))
			gomega.Expect(received).To(gomega.Equal(map[string]any{
				"sensorName":   "X",
				"sensorType":   "Humidity",
				"locationName": "Lab",
			}))
		})

		ginkgo.It("should map a conflict to ErrSensorAlreadyExists", func() {
			router.HandleFunc("POST /api/sensor", func(w http.ResponseWriter, r *http.Request) {
				reply(w, http.StatusConflict, `{"error":"Sensor name already exists"}`)
			})

			_, err := client.CreateSensor(ctx, domain.SensorRegistration{Name: "X"})

			gomega.Expect(err).To(gomega.MatchError(domain.ErrSensorAlreadyExists))
		})

		ginkgo.It("should reject a success without id", func() {
			router.HandleFunc("POST /api/sensor", func(w http.ResponseWriter, r *http.Request) {
				reply(w, http.StatusCreated, `{"status":"registered"}`)
			})

			_, err := client.CreateSensor(ctx, domain.SensorRegistration{Name: "X"})

			gomega.Expect(err).To(gomega.HaveOccurred())
		})
	})

	ginkgo.Context("SubmitReading", func() {
		ginkgo.It("should post the value to the sensor data endpoint", func() {
			router.HandleFunc("POST /api/sensors/{sensorId}/data", func(w http.ResponseWriter, r *http.Request) {
				gomega.Expect(r.PathValue("sensorId")).To(gomega.Equal("s-1"))
				decodeBody(r)
				reply(w, http.StatusCreated, `{"status":"ok"}`)
			})

			status, err := client.SubmitReading(ctx, "s-1", 22.41)

			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(status).To(gomega.Equal("ok"))
			gomega.Expect(received).To(gomega.HaveKeyWithValue("value", 22.41))
		})

		ginkgo.It("should report a status failure as a submission error", func() {
			router.HandleFunc("POST /api/sensors/{sensorId}/data", func(w http.ResponseWriter, r *http.Request) {
				reply(w, http.StatusNotFound, `{"error":"Sensor not found"}`)
			})

			_, err := client.SubmitReading(ctx, "missing", 1)

			var submissionErr *domain.SubmissionError
			gomega.Expect(errors.As(err, &submissionErr)).To(gomega.BeTrue())
			gomega.Expect(submissionErr.Kind).To(gomega.Equal(domain.SubmissionHTTPStatus))
			gomega.Expect(submissionErr.StatusCode).To(gomega.Equal(http.StatusNotFound))
		})

		ginkgo.It("should report a transport failure as unreachable", func() {
			server.Close()

			_, err := client.SubmitReading(ctx, "s-1", 1)

			var submissionErr *domain.SubmissionError
			gomega.Expect(errors.As(err, &submissionErr)).To(gomega.BeTrue())
			gomega.Expect(submissionErr.Kind).To(gomega.Equal(domain.SubmissionUnreachable))
			gomega.Expect(err).To(gomega.MatchError(domain.ErrCollaboratorUnreachable))
		})

		ginkgo.It("should abort an in-flight request when the context is cancelled", func() {
			release := make(chan struct{})
			defer close(release)
			router.HandleFunc("POST /api/sensors/{sensorId}/data", func(w http.ResponseWriter, r *http.Request) {
				_, _ = io.Copy(io.Discard, r.Body)
				select {
				case <-r.Context().Done():
				case <-release:
				}
			})

			cancelCtx, cancel := context.WithCancel(ctx)
			time.AfterFunc(50*time.Millisecond, cancel)

			_, err := client.SubmitReading(cancelCtx, "s-1", 1)

			gomega.Expect(err).To(gomega.HaveOccurred())
			gomega.Expect(strings.Contains(err.Error(), "context canceled")).To(gomega.BeTrue())
		})
	})
})
