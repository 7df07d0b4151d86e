package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"sensor-simulator/cmd/config"
	"sensor-simulator/internal/infra/node"
	"sensor-simulator/internal/infra/sensorapi"
	"sensor-simulator/internal/infra/telemetry"
	"sensor-simulator/internal/simulator/domain"
	"sensor-simulator/internal/simulator/usecases"

	"github.com/spf13/pflag"
)

const (
	_serviceName  = "sensor-simulator"
	_suffixLowest = 1000
	_suffixRange  = 9000
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, stdout io.Writer) int {
	flags := config.SimulatorFlags()
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	cfg, err := config.LoadConfig(flags)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	slog.SetDefault(telemetry.NewLogger(stdout, cfg.General.LogLevel))
	slog.Debug("config loaded", slog.Any("data", cfg), slog.String("node", node.GetNodeInfo().ID))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Telemetry.Enabled {
		shutdownOtel, err := telemetry.Start(ctx, _serviceName, cfg.Telemetry.Endpoint)
		if err != nil {
			slog.Error("starting otel providers", slog.Any("error", err))
			return 1
		}
		defer func() {
			if err := shutdownOtel(); err != nil {
				slog.Warn("shutting down otel providers", slog.Any("error", err))
			}
		}()
	}

	sensor, err := buildSensorConfig(cfg.Sensor, time.Now())
	if err != nil {
		slog.Error("invalid sensor configuration", slog.Any("error", err))
		return 1
	}

	client := sensorapi.NewClient(sensorapi.Config{
		BaseURL: cfg.API.BaseURL,
		Timeout: cfg.API.Timeout,
	})
	seed := uint64(time.Now().UnixNano())
	generator := usecases.NewReadingGenerator(sensor, rand.New(rand.NewPCG(seed, seed>>1)))
	loop := usecases.NewRunLoop(
		sensor,
		usecases.RunOptions{
			Interval:       cfg.Run.Interval,
			Duration:       cfg.Run.Duration,
			PreferExisting: cfg.Run.UseExisting,
		},
		usecases.NewIdentityResolver(client),
		client,
		generator,
		usecases.SystemClock{},
	)

	printBanner(stdout, sensor, cfg)

	summary, err := loop.Run(ctx)
	summary.Report(stdout)
	if err != nil {
		slog.Error("simulation aborted", slog.Any("error", err))
		return 1
	}

	slog.Info("good bye!!!", slog.String("reason", string(summary.Reason)))
	return 0
}

func buildSensorConfig(values config.SensorConfig, now time.Time) (domain.SensorConfig, error) {
	sensorType := domain.SensorType(values.Type)
	name := values.Name
	if name == "" {
		name = domain.GenerateSensorName(sensorType, now, _suffixLowest+rand.IntN(_suffixRange))
	}

	return domain.NewSensorConfigBuilder().
		WithName(name).
		WithType(sensorType).
		WithLocation(values.Location).
		WithBaseValue(values.BaseValue).
		WithVariance(values.Variance).
		Build()
}

func printBanner(w io.Writer, sensor domain.SensorConfig, cfg config.AppConfig) {
	separator := strings.Repeat("=", 60)
	fmt.Fprintln(w, separator)
	fmt.Fprintln(w, "IoT Sensor Simulator Started")
	fmt.Fprintln(w, separator)
	fmt.Fprintf(w, "API URL: %s\n", cfg.API.BaseURL)
	fmt.Fprintf(w, "Sensor: %s (%s)\n", sensor.Name, sensor.Type)
	fmt.Fprintf(w, "Location: %s\n", sensor.Location)
	fmt.Fprintf(w, "Base value: %.2f, variance: %.2f\n", sensor.BaseValue, sensor.Variance)
	fmt.Fprintf(w, "Sending data every %s", cfg.Run.Interval)
	if cfg.Run.Duration > 0 {
		fmt.Fprintf(w, " for %s", cfg.Run.Duration)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Press Ctrl+C to stop")
	fmt.Fprintln(w)
}
