package internal

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/coolant2go/coolant2go/internal/api"
	"github.com/coolant2go/coolant2go/internal/clock"
	"github.com/coolant2go/coolant2go/internal/configuration"
	"github.com/coolant2go/coolant2go/internal/control_loop"
	"github.com/coolant2go/coolant2go/internal/statistics"
	"github.com/coolant2go/coolant2go/internal/telemetry"
	"github.com/coolant2go/coolant2go/internal/ui"
	"github.com/oklog/run"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	recordBufferSize = 64
	shutdownTimeout  = 5 * time.Second
)

// RunResult describes how a simulation ended
type RunResult struct {
	State            control_loop.State
	Summary          telemetry.Summary
	Records          []telemetry.Record
	InvalidTimesteps int
}

// RunSimulation runs the control loop in real time until it reaches a terminal state
// or the process receives SIGINT/SIGTERM. Telemetry is printed while running and
// exposed through the statistics and REST endpoints, if enabled.
func RunSimulation(config configuration.Configuration) (RunResult, error) {
	loop, err := control_loop.New(config.ToLoopConfig())
	if err != nil {
		return RunResult{}, err
	}

	recorder := telemetry.NewRecorder(config.Telemetry.WindowSize, config.InitialTemperature)
	sinks := createSinks(config, recorder, telemetry.NewConsolePrinter(true))

	registry := statistics.NewRegistry()
	statistics.Register(registry, statistics.NewLoopCollector(recorder))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	records := make(chan telemetry.Record, recordBufferSize)

	var g run.Group
	{
		// === control loop
		g.Add(func() error {
			_, err := loop.Run(ctx, records)
			if err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			// the loop is done, wait for the consumers to drain the remaining records
			<-ctx.Done()
			return nil
		}, func(err error) {
			cancel()
		})
	}
	{
		// === telemetry consumers
		g.Add(func() error {
			err := telemetry.Consume(records, sinks...)
			ui.Debug("Telemetry consumers stopped.")
			return err
		}, func(err error) {
			cancel()
		})
	}
	if config.Statistics.Enabled {
		// === Prometheus Exporter
		server := createStatisticsServer(config.Statistics, registry)
		g.Add(func() error {
			ui.Info("Serving statistics on %s/metrics", server.Addr)
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("cannot start prometheus metrics endpoint: %w", err)
			}
			return nil
		}, func(err error) {
			ui.Info("Stopping statistics server...")
			timeoutCtx, timeoutCancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer timeoutCancel()
			if err := server.Shutdown(timeoutCtx); err != nil {
				ui.Warning("Error stopping statistics server: %v", err)
			}
		})
	}
	if config.Api.Enabled {
		// === REST API
		rest := api.CreateRestService(recorder, loop, registry)
		addr := fmt.Sprintf("%s:%d", config.Api.Host, config.Api.Port)
		g.Add(func() error {
			ui.Info("Serving REST API on %s", addr)
			if err := rest.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("cannot start REST API: %w", err)
			}
			return nil
		}, func(err error) {
			timeoutCtx, timeoutCancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer timeoutCancel()
			if err := rest.Shutdown(timeoutCtx); err != nil {
				ui.Warning("Error stopping REST API: %v", err)
			}
		})
	}
	{
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

		g.Add(func() error {
			select {
			case <-sig:
				ui.Info("Received interrupt signal, exiting...")
			case <-ctx.Done():
			}
			return nil
		}, func(err error) {
			signal.Stop(sig)
			cancel()
		})
	}

	err = g.Run()

	return RunResult{
		State:            loop.State(),
		Summary:          recorder.Summary(),
		Records:          recorder.Records(0),
		InvalidTimesteps: loop.InvalidTimesteps(),
	}, err
}

// SimulateOffline runs the control loop on virtual time, as fast as possible.
func SimulateOffline(config configuration.Configuration) (RunResult, error) {
	loop, err := control_loop.New(config.ToLoopConfig(), control_loop.WithClock(clock.NewManual(time.Now())))
	if err != nil {
		return RunResult{}, err
	}

	recorder := telemetry.NewRecorder(config.Telemetry.WindowSize, config.InitialTemperature)
	sinks := createSinks(config, recorder)

	records := make(chan telemetry.Record, recordBufferSize)
	go func() {
		defer close(records)
		for record := range loop.Records() {
			records <- record
		}
	}()
	err = telemetry.Consume(records, sinks...)

	return RunResult{
		State:            loop.State(),
		Summary:          recorder.Summary(),
		Records:          recorder.Records(0),
		InvalidTimesteps: loop.InvalidTimesteps(),
	}, err
}

func createSinks(config configuration.Configuration, recorder *telemetry.Recorder, additional ...telemetry.Sink) []telemetry.Sink {
	sinks := []telemetry.Sink{recorder}
	sinks = append(sinks, additional...)
	if config.Telemetry.Export != "" {
		sinks = append(sinks, telemetry.NewExporter(config.Telemetry.Export))
	}
	return sinks
}

func createStatisticsServer(config configuration.StatisticsConfig, registry *prometheus.Registry) *http.Server {
	port := config.Port
	if port <= 0 || port >= 65535 {
		port = 9000
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry}))
	return &http.Server{Addr: fmt.Sprintf(":%d", port), Handler: mux}
}
