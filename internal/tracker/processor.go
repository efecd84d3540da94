// Package tracker runs batches of sensor packages through the training calculations.
package tracker

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"example.com/ftracker/internal/domain"
)

// Handler receives the summary of every processed package, in input order.
type Handler interface {
	Handle(context.Context, domain.InfoMessage) error
}

// WriterHandler writes each summary as one line.
type WriterHandler struct {
	W io.Writer
}

// Handle implements Handler.
func (h WriterHandler) Handle(_ context.Context, info domain.InfoMessage) error {
	_, err := fmt.Fprintln(h.W, info.Message())
	return err
}

// Option configures optional behaviour for the Processor.
type Option func(*Processor)

// WithLogger overrides the logger used to report progress and errors.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Processor) {
		p.logger = logger
	}
}

// WithRunID tags every log record of the processor with run_id.
func WithRunID(id string) Option {
	return func(p *Processor) {
		p.runID = id
	}
}

// Processor reads sensor packages, computes their summaries and dispatches them to a Handler.
type Processor struct {
	handler Handler
	logger  *slog.Logger
	runID   string
	now     func() time.Time
}

// NewProcessor constructs a Processor with the provided handler.
func NewProcessor(handler Handler, opts ...Option) *Processor {
	p := &Processor{
		handler: handler,
		logger:  slog.Default(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.runID != "" {
		p.logger = p.logger.With("run_id", p.runID)
	}
	return p
}

// Run processes packages in order and stops at the first failure. The error
// from the failing package is returned unmodified.
func (p *Processor) Run(ctx context.Context, packages []domain.Package) error {
	p.logger.Info("run started", "packages", len(packages))

	for i, pkg := range packages {
		if err := ctx.Err(); err != nil {
			return err
		}

		training, err := pkg.Read()
		if err != nil {
			p.logger.Error("read package", "index", i, "code", pkg.Code, "params", len(pkg.Data), "error", err)
			recordError(err)
			return err
		}

		info := training.Describe()
		p.logger.Debug("training processed",
			"index", i,
			"code", training.Code(),
			"distance_km", info.DistanceKm,
			"speed_kmh", info.SpeedKmh,
			"calories_kcal", info.CaloriesKcal,
		)

		if err := p.handler.Handle(ctx, info); err != nil {
			p.logger.Error("handle summary", "index", i, "code", training.Code(), "error", err)
			recordError(err)
			return err
		}
		recordProcessed(info, training.Code())
	}

	recordRunCompleted(p.now())
	p.logger.Info("run finished", "packages", len(packages))
	return nil
}
