package domain_test

import (
	"encoding/json"
	"errors"
	"sensor-simulator/internal/simulator/domain"
	"time"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("SensorID", func() {
	ginkgo.It("should decode a string id", func() {
		var id domain.SensorID
		gomega.Expect(json.Unmarshal([]byte(`"2f6c1c9e-6a34-4f0e-9f57-0b2f5a1d3c11"`), &id)).To(gomega.Succeed())
		gomega.Expect(id.String()).To(gomega.Equal("2f6c1c9e-6a34-4f0e-9f57-0b2f5a1d3c11"))
	})

	ginkgo.It("should decode a numeric id", func() {
		var payload struct {
			ID domain.SensorID `json:"sensorID"`
		}
		gomega.Expect(json.Unmarshal([]byte(`{"sensorID": 42}`), &payload)).To(gomega.Succeed())
		gomega.Expect(payload.ID).To(gomega.Equal(domain.SensorID("42")))
	})

	ginkgo.It("should treat null as unresolved", func() {
		id := domain.SensorID("x")
		gomega.Expect(json.Unmarshal([]byte(`null`), &id)).To(gomega.Succeed())
		gomega.Expect(id.IsZero()).To(gomega.BeTrue())
	})

	ginkgo.It("should fail on objects", func() {
		var id domain.SensorID
		gomega.Expect(json.Unmarshal([]byte(`{"a":1}`), &id)).NotTo(gomega.Succeed())
	})
})

var _ = ginkgo.Describe("GenerateSensorName", func() {
	ginkgo.It("should follow the type_Sensor_timestamp_suffix layout", func() {
		now := time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC)
		name := domain.GenerateSensorName(domain.SensorTypePressure, now, 4821)
		gomega.Expect(name).To(gomega.Equal("Pressure_Sensor_20240309_140507_4821"))
	})
})

var _ = ginkgo.Describe("Errors", func() {
	ginkgo.It("should unwrap the cause of a resolution error", func() {
		cause := errors.New("connection refused")
		err := error(&domain.ResolutionError{Kind: domain.ResolutionUnreachable, Name: "s", Err: cause})

		var resolutionErr *domain.ResolutionError
		gomega.Expect(errors.As(err, &resolutionErr)).To(gomega.BeTrue())
		gomega.Expect(errors.Is(err, cause)).To(gomega.BeTrue())
		gomega.Expect(err.Error()).To(gomega.ContainSubstring("connection refused"))
	})

	ginkgo.It("should describe an unresolved conflict", func() {
		err := &domain.ResolutionError{Kind: domain.ResolutionConflictUnresolved, Name: "s"}
		gomega.Expect(err.Error()).To(gomega.ContainSubstring("already exists"))
	})

	ginkgo.It("should report the status code of a submission error", func() {
		err := &domain.SubmissionError{Kind: domain.SubmissionHTTPStatus, SensorID: "7", StatusCode: 500}
		gomega.Expect(err.Error()).To(gomega.ContainSubstring("500"))
	})
})
