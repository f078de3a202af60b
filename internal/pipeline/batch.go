package pipeline

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"
)

// Result is the outcome of one report generation within a batch.
// Either Report or Err is set, never both.
type Result struct {
	// UserID identifies the user the report was generated for.
	UserID int64

	// Report is the rendered report string.
	Report string

	// Err records why this user's report could not be generated.
	// A per-user failure does not abort the rest of the batch.
	Err error
}

// BatchProcessor renders reports for many users concurrently.
// It uses errgroup to manage goroutines and respect the concurrency
// limit.
type BatchProcessor struct {
	// pipeline renders each individual report. Pipelines are stateless,
	// so a single instance is shared across goroutines.
	pipeline *Pipeline

	// concurrency is the maximum number of concurrent generations.
	concurrency int

	// logger is used for batch-level logging.
	logger *slog.Logger
}

// BatchOption configures a BatchProcessor.
type BatchOption func(*BatchProcessor)

// WithBatchLogger sets a custom logger for batch processing.
func WithBatchLogger(logger *slog.Logger) BatchOption {
	return func(b *BatchProcessor) {
		b.logger = logger
	}
}

// WithConcurrency sets the maximum number of concurrent generations.
// Default is 4 if not specified.
func WithConcurrency(n int) BatchOption {
	return func(b *BatchProcessor) {
		if n > 0 {
			b.concurrency = n
		}
	}
}

// NewBatchProcessor creates a BatchProcessor over the given pipeline.
func NewBatchProcessor(p *Pipeline, opts ...BatchOption) *BatchProcessor {
	bp := &BatchProcessor{
		pipeline:    p,
		concurrency: 4,
	}

	for _, opt := range opts {
		opt(bp)
	}

	if bp.logger == nil {
		bp.logger = slog.Default()
	}

	return bp
}

// ProcessBatch renders a report in the given format for every user ID.
// Results are returned in the same order as userIDs regardless of
// completion order. Per-user failures are recorded in the Result; the
// error return is non-nil only when the context is cancelled.
func (bp *BatchProcessor) ProcessBatch(ctx context.Context, userIDs []int64, reportType string) ([]Result, error) {
	bp.logger.Info("starting batch generation",
		"total_users", len(userIDs),
		"format", reportType,
		"concurrency", bp.concurrency,
	)

	startTime := time.Now()

	// Pre-allocated so each goroutine writes its own index and the
	// output order matches the input order.
	results := make([]Result, len(userIDs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(bp.concurrency)

	for i, userID := range userIDs {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			out, err := bp.pipeline.Run(ctx, userID, reportType)
			results[i] = Result{UserID: userID, Report: out, Err: err}
			if err != nil {
				bp.logger.Warn("report generation failed",
					"user_id", userID,
					"error", err,
				)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}

	bp.logger.Info("batch generation complete",
		"total_users", len(userIDs),
		"duration", time.Since(startTime),
	)

	return results, nil
}
