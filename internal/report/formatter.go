package report

import (
	"strconv"
	"strings"

	"github.com/nao1215/itemreport/internal/model"
)

// Formatter is the capability set a report format must provide.
// Each operation returns a fragment ending in a line break; Build
// concatenates the fragments.
//
// Design decision: The original system modeled this as a base type
// whose stub methods raised "not implemented" when a variant forgot an
// override. A Go interface makes the same contract a compile-time
// property: a type missing any of the three operations simply is not a
// Formatter.
type Formatter interface {
	// Header returns the opening fragment, before any item rows.
	Header(user model.User) string

	// Row returns the fragment for a single processed item.
	Row(item model.ProcessedItem, user model.User) string

	// Footer returns the closing fragment, including the total.
	Footer(total float64) string
}

// Build assembles a report from a formatter: header, one row per item
// in input order, then footer. The concatenation is returned with
// leading and trailing whitespace trimmed.
//
// Build is the shared template over all formats; variants only decide
// what each fragment looks like, never the assembly order.
func Build(f Formatter, user model.User, items []model.ProcessedItem, total float64) string {
	var sb strings.Builder

	sb.WriteString(f.Header(user))
	for _, item := range items {
		sb.WriteString(f.Row(item, user))
	}
	sb.WriteString(f.Footer(total))

	return strings.TrimSpace(sb.String())
}

// formatValue renders an item value or total without a trailing
// decimal point for integral values (100 renders as "100", not
// "100.00"). The report formats pin these exact bytes down.
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
