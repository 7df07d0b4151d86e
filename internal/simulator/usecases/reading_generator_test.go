package usecases_test

import (
	"math"
	"math/rand/v2"
	"sensor-simulator/internal/simulator/domain"
	"sensor-simulator/internal/simulator/usecases"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

type sequenceSource struct {
	values []float64
	next   int
}

func (s *sequenceSource) Float64() float64 {
	value := s.values[s.next%len(s.values)]
	s.next++
	return value
}

func hasTwoDecimals(value float64) bool {
	scaled := value * 100
	return math.Abs(scaled-math.Round(scaled)) < 1e-6
}

var _ = ginkgo.Describe("ReadingGenerator", func() {
	var cfg domain.SensorConfig

	ginkgo.BeforeEach(func() {
		cfg = domain.SensorConfig{Name: "t", Type: domain.SensorTypeTemperature, BaseValue: 22, Variance: 3}
	})

	ginkgo.It("should keep readings before the trend is applied within the variance band", func() {
		rnd := rand.New(rand.NewPCG(1, 2))
		for i := 0; i < 2000; i++ {
			generator := usecases.NewReadingGenerator(cfg, rnd)
			value := generator.Next()
			gomega.Expect(value).To(gomega.BeNumerically(">=", cfg.BaseValue-cfg.Variance))
			gomega.Expect(value).To(gomega.BeNumerically("<=", cfg.BaseValue+cfg.Variance))
		}
	})

	ginkgo.It("should return the base value when variance is zero", func() {
		cfg.Variance = 0
		generator := usecases.NewReadingGenerator(cfg, rand.New(rand.NewPCG(3, 4)))
		gomega.Expect(generator.Next()).To(gomega.Equal(22.0))
	})

	ginkgo.It("should round every reading to two decimals", func() {
		generator := usecases.NewReadingGenerator(cfg, rand.New(rand.NewPCG(5, 6)))
		for i := 0; i < 1000; i++ {
			gomega.Expect(hasTwoDecimals(generator.Next())).To(gomega.BeTrue())
		}
	})

	ginkgo.It("should apply the trend from the second reading on and flip it on a low draw", func() {
		// trend draw, noise, noise, flip draw, noise, flip draw
		source := &sequenceSource{values: []float64{0.75, 0.5, 0.5, 0.05, 0.5, 0.9}}
		generator := usecases.NewReadingGenerator(cfg, source)

		gomega.Expect(generator.Trend()).To(gomega.BeNumerically("~", 0.05, 1e-9))
		gomega.Expect(generator.Next()).To(gomega.BeNumerically("~", 22.0, 1e-9))
		gomega.Expect(generator.Next()).To(gomega.BeNumerically("~", 22.05, 1e-9))
		gomega.Expect(generator.Trend()).To(gomega.BeNumerically("~", -0.05, 1e-9))
		gomega.Expect(generator.Next()).To(gomega.BeNumerically("~", 21.95, 1e-9))
		gomega.Expect(generator.FlipCount()).To(gomega.Equal(1))
	})

	ginkgo.It("should draw the initial trend within [-0.1, 0.1]", func() {
		rnd := rand.New(rand.NewPCG(7, 8))
		for i := 0; i < 500; i++ {
			trend := usecases.NewReadingGenerator(cfg, rnd).Trend()
			gomega.Expect(math.Abs(trend)).To(gomega.BeNumerically("<=", 0.1))
		}
	})

	ginkgo.It("should flip the trend with a probability close to 0.1", func() {
		const calls = 100000
		generator := usecases.NewReadingGenerator(cfg, rand.New(rand.NewPCG(9, 10)))
		for i := 0; i < calls; i++ {
			generator.Next()
		}

		ratio := float64(generator.FlipCount()) / float64(calls-1)
		gomega.Expect(ratio).To(gomega.BeNumerically("~", 0.1, 0.01))
	})
})
