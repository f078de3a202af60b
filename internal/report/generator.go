package report

import (
	"context"
	"fmt"

	"github.com/nao1215/itemreport/internal/model"
	"github.com/nao1215/itemreport/internal/processor"
)

// Report-type keys recognized by a default Generator.
// Lookup is a case-sensitive exact match.
const (
	// FormatCSV selects the CSV formatter.
	FormatCSV = "CSV"

	// FormatHTML selects the HTML formatter.
	FormatHTML = "HTML"

	// FormatMarkdown selects the Markdown formatter.
	FormatMarkdown = "MARKDOWN"
)

// DataStore is the source of users and items backing the report
// system. The Generator holds a handle to it for future extensions
// (e.g. fetching items itself) but never calls it: callers fetch data
// through the pipeline and pass it into Generate.
type DataStore interface {
	// GetUser returns the user with the given ID.
	GetUser(ctx context.Context, id int64) (model.User, error)

	// ListItems returns all items for the given user.
	ListItems(ctx context.Context, userID int64) ([]model.Item, error)
}

// Generator orchestrates report generation: it resolves a formatter by
// report-type key, runs the item processor, computes the total, and
// delegates assembly to the formatter.
//
// The formatter table is built once at construction and never written
// afterwards, so a single Generator is safe for concurrent use.
type Generator struct {
	// formatters maps report-type keys to formatter variants.
	// Read-only after construction.
	formatters map[string]Formatter

	// processor applies the role-based visibility rule.
	processor *processor.Processor

	// store is the opaque data-store handle. Held, never called.
	store DataStore
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithProcessor replaces the default item processor, e.g. to use
// non-default business thresholds.
func WithProcessor(p *processor.Processor) GeneratorOption {
	return func(g *Generator) {
		g.processor = p
	}
}

// WithFormatter registers an additional formatter under the given key,
// or replaces a built-in one. Registration only happens at
// construction; the table is immutable afterwards.
func WithFormatter(key string, f Formatter) GeneratorOption {
	return func(g *Generator) {
		g.formatters[key] = f
	}
}

// NewGenerator creates a Generator with the built-in CSV, HTML, and
// Markdown formatters registered. The store handle may be nil when the
// caller supplies data directly.
func NewGenerator(store DataStore, opts ...GeneratorOption) *Generator {
	g := &Generator{
		formatters: map[string]Formatter{
			FormatCSV:      NewCSVFormatter(),
			FormatHTML:     NewHTMLFormatter(),
			FormatMarkdown: NewMarkdownFormatter(),
		},
		processor: processor.New(),
		store:     store,
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Generate renders a report of the user's items in the requested
// format. It fails with an error wrapping ErrUnsupportedReportType if
// the report type is not registered; no partial output is produced.
//
// The total in the footer is computed over the processed set, so it
// only counts the items visible to the user's role.
func (g *Generator) Generate(reportType string, user model.User, items []model.Item) (string, error) {
	f, ok := g.formatters[reportType]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedReportType, reportType)
	}

	processed := g.processor.Process(user, items)
	total := processor.Total(processed)

	return Build(f, user, processed, total), nil
}

// Formats returns the registered report-type keys. Intended for CLI
// help and error messages; the order is unspecified.
func (g *Generator) Formats() []string {
	keys := make([]string, 0, len(g.formatters))
	for key := range g.formatters {
		keys = append(keys, key)
	}
	return keys
}
