package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nao1215/itemreport/internal/report"
)

// Pipeline renders a report for one user by fetching their data from
// the store and delegating to the generator.
//
// The generator itself never touches the store; the pipeline is the
// external collaborator that bridges the two.
type Pipeline struct {
	// store supplies users and items.
	store report.DataStore

	// generator renders the fetched data.
	generator *report.Generator

	// logger is used for pipeline-level logging. The report core
	// stays silent; only this layer logs.
	logger *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets a custom logger for the pipeline.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// New creates a Pipeline over the given store and generator.
func New(store report.DataStore, generator *report.Generator, opts ...Option) *Pipeline {
	p := &Pipeline{
		store:     store,
		generator: generator,
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.logger == nil {
		p.logger = slog.Default()
	}

	return p
}

// Run fetches the user and their items and renders a report in the
// requested format. Storage errors and unsupported report types are
// both surfaced to the caller; no partial report is ever returned.
func (p *Pipeline) Run(ctx context.Context, userID int64, reportType string) (string, error) {
	user, err := p.store.GetUser(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("failed to load user: %w", err)
	}

	items, err := p.store.ListItems(ctx, user.ID)
	if err != nil {
		return "", fmt.Errorf("failed to load items: %w", err)
	}

	p.logger.Debug("generating report",
		"user_id", user.ID,
		"role", user.Role.String(),
		"items", len(items),
		"format", reportType,
	)

	out, err := p.generator.Generate(reportType, user, items)
	if err != nil {
		return "", err
	}

	return out, nil
}
