package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"buswatch.dev/nextbus"
	"buswatch.dev/nextbus/telemetry"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Run the countdown on the terminal, refreshed every minute",
	Args:  cobra.NoArgs,
	RunE:  watch,
}

func watch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := setupLogger(cfg.LogLevel)

	schedule, err := loadSchedule(cfg)
	if err != nil {
		return err
	}

	var metrics *telemetry.Metrics
	var server *telemetry.Server
	if cfg.Telemetry.Enabled {
		server = telemetry.NewServer(cfg.Telemetry.Bind)
		metrics = telemetry.NewMetrics(server.Registry())
	}

	var renderer nextbus.Renderer = &terminalRenderer{out: os.Stdout}
	if metrics != nil {
		renderer = &countingRenderer{inner: renderer, metrics: metrics}
	}

	w := nextbus.NewWatch(nextbus.NewDisplay(schedule), renderer)
	w.Logger = logger
	if metrics != nil {
		w.Notify = func(next nextbus.DayTime, minutes int) {
			metrics.RecordUpdate(minutes)
		}
	}

	if server != nil {
		if err := server.Start(); err != nil {
			return fmt.Errorf("starting telemetry server: %w", err)
		}
		defer server.Stop()
		logger.Info().Str("addr", cfg.Telemetry.Bind).Msg("telemetry listening")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info().
		Str("route", schedule.Route()).
		Int("departures", schedule.Len()).
		Msg("watch starting")

	err = w.Run(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	logger.Info().Msg("watch stopped")

	return nil
}

// Renders the three lines the watchface had: a fixed header, the big
// minutes counter and the route details. Every render repaints the
// terminal in place.
type terminalRenderer struct {
	out io.Writer
}

func (r *terminalRenderer) Render(counter, details string) error {
	_, err := fmt.Fprintf(r.out, "\033[2J\033[H\n  Next Bus\n\n  %s\n\n  %s\n", counter, details)
	return err
}

// Counts render failures for the metrics endpoint.
type countingRenderer struct {
	inner   nextbus.Renderer
	metrics *telemetry.Metrics
}

func (r *countingRenderer) Render(counter, details string) error {
	err := r.inner.Render(counter, details)
	if err != nil {
		r.metrics.RenderErrorsTotal.Inc()
	}
	return err
}
