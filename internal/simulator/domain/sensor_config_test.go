package domain_test

import (
	"math"
	"sensor-simulator/internal/simulator/domain"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

func floatPtr(v float64) *float64 {
	return &v
}

var _ = ginkgo.Describe("SensorConfig", func() {
	ginkgo.Context("DefaultsFor", func() {
		ginkgo.DescribeTable("known and unknown types",
			func(t domain.SensorType, base, variance float64) {
				defaults := domain.DefaultsFor(t)
				gomega.Expect(defaults.BaseValue).To(gomega.Equal(base))
				gomega.Expect(defaults.Variance).To(gomega.Equal(variance))
			},
			ginkgo.Entry("temperature", domain.SensorTypeTemperature, 22.0, 3.0),
			ginkgo.Entry("humidity", domain.SensorTypeHumidity, 60.0, 10.0),
			ginkgo.Entry("pressure", domain.SensorTypePressure, 1013.0, 5.0),
			ginkgo.Entry("light", domain.SensorTypeLight, 500.0, 100.0),
			ginkgo.Entry("anything else", domain.SensorType("CO2"), 20.0, 5.0),
		)
	})

	ginkgo.Context("Build", func() {
		ginkgo.It("should apply type defaults when no override is given", func() {
			cfg, err := domain.NewSensorConfigBuilder().
				WithName("hum-1").
				WithType(domain.SensorTypeHumidity).
				WithLocation("Lab").
				Build()

			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(cfg).To(gomega.Equal(domain.SensorConfig{
				Name:      "hum-1",
				Type:      domain.SensorTypeHumidity,
				Location:  "Lab",
				BaseValue: 60,
				Variance:  10,
			}))
		})

		ginkgo.It("should keep an explicit zero override", func() {
			cfg, err := domain.NewSensorConfigBuilder().
				WithName("light-1").
				WithBaseValue(floatPtr(0)).
				WithVariance(floatPtr(0)).
				WithType(domain.SensorTypeLight).
				Build()

			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(cfg.BaseValue).To(gomega.BeZero())
			gomega.Expect(cfg.Variance).To(gomega.BeZero())
		})

		ginkgo.It("should reject a negative variance", func() {
			_, err := domain.NewSensorConfigBuilder().
				WithName("t").
				WithVariance(floatPtr(-1)).
				Build()

			gomega.Expect(err).To(gomega.MatchError(domain.ErrInvalidSensorConfig))
		})

		ginkgo.It("should reject a non finite base value", func() {
			_, err := domain.NewSensorConfigBuilder().
				WithName("t").
				WithBaseValue(floatPtr(math.Inf(1))).
				Build()

			gomega.Expect(err).To(gomega.MatchError(domain.ErrInvalidSensorConfig))
		})

		ginkgo.It("should require a name", func() {
			_, err := domain.NewSensorConfigBuilder().Build()
			gomega.Expect(err).To(gomega.MatchError(domain.ErrInvalidSensorConfig))
		})
	})
})
