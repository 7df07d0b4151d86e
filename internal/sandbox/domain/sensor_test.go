package domain_test

import (
	"math"
	"strings"
	"time"

	"sensor-simulator/internal/sandbox/domain"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Sensor", func() {
	var location domain.Location

	BeforeEach(func() {
		var err error
		location, err = domain.NewLocationBuilder().WithName("Simulation Lab").Build()
		Expect(err).NotTo(HaveOccurred())
	})

	Context("NewSensorBuilder", func() {
		It("should build an active sensor with a generated id", func() {
			sensor, err := domain.NewSensorBuilder().
				WithName("Temperature_Sensor_1").
				WithType("Temperature").
				WithLocation(location).
				Build()

			Expect(err).NotTo(HaveOccurred())
			Expect(sensor.ID).NotTo(BeEmpty())
			Expect(sensor.Status).To(Equal(domain.SensorStatusActive))
			Expect(sensor.Location.Name).To(Equal("Simulation Lab"))
		})

		DescribeTable("should reject invalid fields",
			func(name, sensorType string) {
				_, err := domain.NewSensorBuilder().WithName(name).WithType(sensorType).Build()
				Expect(err).To(MatchError(domain.ErrInvalidSensor))
			},
			Entry("short name", "ab", "Temperature"),
			Entry("long name", strings.Repeat("x", 256), "Temperature"),
			Entry("short type", "sensor-1", "ab"),
		)

		It("should accept names of exactly 255 characters", func() {
			_, err := domain.NewSensorBuilder().WithName(strings.Repeat("x", 255)).WithType("Light").Build()
			Expect(err).NotTo(HaveOccurred())
		})

		It("should require a name and a type", func() {
			_, err := domain.NewSensorBuilder().WithType("Light").Build()
			Expect(err).To(MatchError(domain.ErrInvalidSensor))

			_, err = domain.NewSensorBuilder().WithName("sensor-1").Build()
			Expect(err).To(MatchError(domain.ErrInvalidSensor))
		})
	})

	Context("StatusAt", func() {
		now := time.Date(2024, 3, 9, 12, 0, 0, 0, time.UTC)

		It("should be inactive without readings", func() {
			Expect(domain.Sensor{}.StatusAt(nil, now)).To(Equal(domain.SensorStatusInactive))
		})

		It("should be active with a reading inside the window", func() {
			last := now.Add(-23 * time.Hour)
			Expect(domain.Sensor{}.StatusAt(&last, now)).To(Equal(domain.SensorStatusActive))
		})

		It("should be inactive with a reading older than the window", func() {
			last := now.Add(-25 * time.Hour)
			Expect(domain.Sensor{}.StatusAt(&last, now)).To(Equal(domain.SensorStatusInactive))
		})
	})

	Context("NewLocationBuilder", func() {
		It("should reject one character names", func() {
			_, err := domain.NewLocationBuilder().WithName("A").Build()
			Expect(err).To(MatchError(domain.ErrInvalidLocation))
		})
	})

	Context("NewReadingBuilder", func() {
		It("should copy the sensor type into the reading", func() {
			sensor, err := domain.NewSensorBuilder().WithName("sensor-1").WithType("Humidity").Build()
			Expect(err).NotTo(HaveOccurred())

			reading, err := domain.NewReadingBuilder().WithSensor(sensor).WithValue(61.25).Build()
			Expect(err).NotTo(HaveOccurred())
			Expect(reading.SensorID).To(Equal(sensor.ID))
			Expect(reading.Type).To(Equal("Humidity"))
			Expect(reading.Value).To(Equal(61.25))
			Expect(reading.Timestamp).NotTo(BeZero())
		})

		It("should reject non finite values", func() {
			sensor, _ := domain.NewSensorBuilder().WithName("sensor-1").WithType("Humidity").Build()
			_, err := domain.NewReadingBuilder().WithSensor(sensor).WithValue(math.Inf(1)).Build()
			Expect(err).To(MatchError(domain.ErrInvalidReading))
		})

		It("should require a sensor", func() {
			_, err := domain.NewReadingBuilder().WithValue(1).Build()
			Expect(err).To(MatchError(domain.ErrInvalidReading))
		})
	})
})
