package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"example.com/ftracker/internal/config"
	"example.com/ftracker/internal/domain"
	"example.com/ftracker/internal/logging"
	"example.com/ftracker/internal/tracker"
)

// packages are the sensor readings processed on every run.
var packages = []domain.Package{
	{Code: "SWM", Data: []float64{720, 1, 80, 25, 40}},
	{Code: "RUN", Data: []float64{15000, 1, 75}},
	{Code: "WLK", Data: []float64{9000, 1, 75, 180}},
}

func main() {
	os.Exit(run())
}

func run() int {
	cfg := config.Load()
	logger := logging.New(cfg, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	processor := tracker.NewProcessor(
		tracker.WriterHandler{W: os.Stdout},
		tracker.WithLogger(logger),
		tracker.WithRunID(uuid.NewString()),
	)

	err := processor.Run(ctx, packages)

	if cfg.DumpMetrics {
		if dumpErr := tracker.DumpMetrics(os.Stderr, prometheus.DefaultGatherer); dumpErr != nil {
			logger.Error("dump metrics", "error", dumpErr)
		}
	}

	if err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
