package telemetry_test

import (
	"bytes"
	"context"

	"sensor-simulator/internal/infra/telemetry"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	"go.opentelemetry.io/otel/sdk/resource"
)

var _ = ginkgo.Describe("Telemetry", func() {
	ginkgo.Context("NewLogger", func() {
		ginkgo.It("should tag records with the build version and a short source path", func() {
			var buf bytes.Buffer
			logger := telemetry.NewLogger(&buf, "debug")

			logger.Debug("sensor resolved", "sensor_id", "42")

			output := buf.String()
			gomega.Expect(output).To(gomega.ContainSubstring("msg=\"sensor resolved\""))
			gomega.Expect(output).To(gomega.ContainSubstring("version=development"))
			gomega.Expect(output).To(gomega.ContainSubstring("telemetry_test.go"))
			gomega.Expect(output).NotTo(gomega.ContainSubstring("/internal/infra/telemetry/"))
		})

		ginkgo.It("should drop records below the configured level", func() {
			var buf bytes.Buffer
			logger := telemetry.NewLogger(&buf, "warn")

			logger.Info("hidden")
			logger.Warn("shown")

			gomega.Expect(buf.String()).NotTo(gomega.ContainSubstring("hidden"))
			gomega.Expect(buf.String()).To(gomega.ContainSubstring("shown"))
		})
	})

	ginkgo.Context("NewMeterProvider", func() {
		ginkgo.It("should export counters recorded through the provider", func() {
			exporter := &recordingExporter{}
			provider := telemetry.NewMeterProvider(exporter, resource.Empty())

			counter, err := provider.Meter("test").Int64Counter("readings")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			counter.Add(context.Background(), 3)

			gomega.Expect(provider.Shutdown(context.Background())).To(gomega.Succeed())
			gomega.Expect(exporter.exported).To(gomega.BeNumerically(">", 0))
		})
	})
})

type recordingExporter struct {
	exported int
}

func (e *recordingExporter) Temporality(kind metric.InstrumentKind) metricdata.Temporality {
	return metric.DefaultTemporalitySelector(kind)
}

func (e *recordingExporter) Aggregation(kind metric.InstrumentKind) metric.Aggregation {
	return metric.DefaultAggregationSelector(kind)
}

func (e *recordingExporter) Export(_ context.Context, rm *metricdata.ResourceMetrics) error {
	for _, sm := range rm.ScopeMetrics {
		e.exported += len(sm.Metrics)
	}
	return nil
}

func (e *recordingExporter) ForceFlush(context.Context) error {
	return nil
}

func (e *recordingExporter) Shutdown(context.Context) error {
	return nil
}
