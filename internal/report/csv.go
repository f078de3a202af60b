package report

import (
	"fmt"

	"github.com/nao1215/itemreport/internal/model"
)

// CSVFormatter renders reports as comma-separated values.
//
// The column layout is fixed by the business contract: every row
// repeats the requesting user's name in the last column, and the
// footer is a blank line followed by a "Total,," label line and the
// total value line.
//
// Design decision: We assemble rows with fmt rather than encoding/csv
// because the contract pins the exact output bytes (no quoting, LF
// line endings, trailing empty columns in the footer) and encoding/csv
// applies its own quoting and line-ending policy.
type CSVFormatter struct{}

// Compile-time check that CSVFormatter provides the full capability set.
var _ Formatter = (*CSVFormatter)(nil)

// NewCSVFormatter creates a CSVFormatter.
func NewCSVFormatter() *CSVFormatter {
	return &CSVFormatter{}
}

// Header returns the fixed CSV column header line.
func (f *CSVFormatter) Header(_ model.User) string {
	return "ID,NOME,VALOR,USUARIO\n"
}

// Row returns one CSV line per item: id, name, value, and the
// requesting user's name. The priority flag does not appear in CSV.
func (f *CSVFormatter) Row(item model.ProcessedItem, user model.User) string {
	return fmt.Sprintf("%d,%s,%s,%s\n", item.ID, item.Name, formatValue(item.Value), user.Name)
}

// Footer returns a blank line, the total label line, and the total
// value line, each padded with empty columns to match the row width.
func (f *CSVFormatter) Footer(total float64) string {
	return fmt.Sprintf("\nTotal,,\n%s,,\n", formatValue(total))
}
