package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"sensor-simulator/cmd/config"
	"sensor-simulator/cmd/sandbox/wire"
	"sensor-simulator/internal/infra/async"
	"sensor-simulator/internal/infra/httpserver"
	"sensor-simulator/internal/infra/telemetry"
	"sensor-simulator/internal/sandbox/usecases"

	"github.com/spf13/pflag"
)

const _serviceName = "sensor-sandbox"

func main() {
	flags := config.SandboxFlags()
	if err := flags.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	cfg, err := config.LoadConfig(flags)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	slog.SetDefault(telemetry.NewLogger(os.Stdout, cfg.General.LogLevel))
	slog.Info("🚀 sensor sandbox is initializing", slog.String("addr", cfg.Sandbox.Addr))
	slog.Debug("config loaded", slog.Any("data", cfg))

	shutdownOtel := func() error { return nil }
	if cfg.Telemetry.Enabled {
		shutdownOtel = handleWireInjector(telemetry.Start(context.Background(), _serviceName, cfg.Telemetry.Endpoint)).(telemetry.ShutdownFunc)
	}

	service := handleWireInjector(wire.InitializeSensorService(cfg)).(usecases.SensorService)
	httpServer := httpserver.NewServer(
		cfg.Sandbox.Addr,
		handleWireInjector(wire.InitializeSensorController(service)).(httpserver.Controller),
	)

	appCtx, cancelFn := context.WithCancel(context.Background())
	go httpServer.Run()

	var wg sync.WaitGroup
	ticker := time.NewTicker(cfg.Sandbox.CheckInterval)
	inactivityWorker := handleWireInjector(wire.InitializeInactivityWorker(cfg, ticker, service)).(async.Worker)
	wg.Add(1)
	go inactivityWorker.Run(appCtx, wg.Done)

	signalChannel := make(chan os.Signal, 2)
	signal.Notify(signalChannel, os.Interrupt, syscall.SIGTERM)

	<-signalChannel
	httpServer.Shutdown()
	cancelFn()
	wg.Wait()
	inactivityWorker.Shutdown()

	if err := shutdownOtel(); err != nil {
		slog.Warn("shutting down otel providers", slog.String("error", err.Error()))
	}
	slog.Info("good bye!!!")
}

func handleWireInjector(value any, err error) any {
	if err != nil {
		panic(err)
	}

	return value
}
