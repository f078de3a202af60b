package report

import (
	"fmt"
	"html"

	"github.com/nao1215/itemreport/internal/model"
)

// boldRowStyle is the inline style applied to priority rows.
const boldRowStyle = ` style="font-weight: bold;"`

// HTMLFormatter renders reports as a standalone HTML document with a
// table of items.
//
// Unlike CSV, the HTML rows do not repeat the user's name; it appears
// once in the document heading. This asymmetry is part of the business
// contract, not an oversight.
//
// Design decision: We build the document with fmt/strings rather than
// html/template because the output is a fixed fragment sequence
// assembled by Build, and a template would have to be split into the
// same three fragments anyway. Dynamic values are escaped with
// html.EscapeString.
type HTMLFormatter struct{}

// Compile-time check that HTMLFormatter provides the full capability set.
var _ Formatter = (*HTMLFormatter)(nil)

// NewHTMLFormatter creates an HTMLFormatter.
func NewHTMLFormatter() *HTMLFormatter {
	return &HTMLFormatter{}
}

// Header opens the document and the item table. It contains the fixed
// report title, the user's name as a subheading, and the table header
// row.
func (f *HTMLFormatter) Header(user model.User) string {
	return fmt.Sprintf(`<html>
<body>
<h1>Relatório</h1>
<h2>%s</h2>
<table>
<tr><th>ID</th><th>Name</th><th>Value</th></tr>
`, html.EscapeString(user.Name))
}

// Row returns one table row per item. Priority items carry a
// bold-weight style attribute for visual emphasis; all other rows have
// no style attribute.
func (f *HTMLFormatter) Row(item model.ProcessedItem, _ model.User) string {
	style := ""
	if item.Priority {
		style = boldRowStyle
	}
	return fmt.Sprintf("<tr%s><td>%d</td><td>%s</td><td>%s</td></tr>\n",
		style, item.ID, html.EscapeString(item.Name), formatValue(item.Value))
}

// Footer closes the table, shows the total as a subheading, and closes
// the document.
func (f *HTMLFormatter) Footer(total float64) string {
	return fmt.Sprintf("</table>\n<h3>Total: %s</h3>\n</body>\n</html>\n", formatValue(total))
}
