package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/nao1215/markdown"

	"github.com/nao1215/itemreport/internal/model"
)

// MarkdownFormatter renders reports as Markdown.
// This format is designed for documentation and sharing, e.g. pasting
// a report into an issue or a wiki page.
//
// Design decision: Headings use the nao1215/markdown builder for
// consistency with the rest of the toolchain, while table rows are
// emitted line by line because the builder only renders complete
// tables and Build assembles the report one row fragment at a time.
type MarkdownFormatter struct{}

// Compile-time check that MarkdownFormatter provides the full capability set.
var _ Formatter = (*MarkdownFormatter)(nil)

// NewMarkdownFormatter creates a MarkdownFormatter.
func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{}
}

// Header returns the report title, the user's name as a subheading,
// and the item table header.
func (f *MarkdownFormatter) Header(user model.User) string {
	md := markdown.NewMarkdown(io.Discard).
		H1("Relatório").
		H2(user.Name)

	return withTrailingNewline(md.String()) +
		"| ID | Name | Value |\n" +
		"| --- | --- | --- |\n"
}

// Row returns one table line per item. Priority items render their
// cells in bold, mirroring the HTML format's visual emphasis.
func (f *MarkdownFormatter) Row(item model.ProcessedItem, _ model.User) string {
	if item.Priority {
		return fmt.Sprintf("| **%d** | **%s** | **%s** |\n",
			item.ID, item.Name, formatValue(item.Value))
	}
	return fmt.Sprintf("| %d | %s | %s |\n", item.ID, item.Name, formatValue(item.Value))
}

// Footer returns a rule followed by the total as a subheading.
func (f *MarkdownFormatter) Footer(total float64) string {
	md := markdown.NewMarkdown(io.Discard).
		HorizontalRule().
		H3("Total: " + formatValue(total))

	return "\n" + withTrailingNewline(md.String())
}

// withTrailingNewline ensures a fragment ends in exactly one line break
// so that Build's concatenation keeps fragments on separate lines.
func withTrailingNewline(s string) string {
	return strings.TrimRight(s, "\n") + "\n"
}
