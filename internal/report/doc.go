// Package report renders processed items into formatted reports.
//
// This package contains formatters for different output formats:
//   - CSVFormatter: comma-separated rows for spreadsheet import
//   - HTMLFormatter: a standalone HTML document with a table
//   - MarkdownFormatter: Markdown for documentation and sharing
//
// Formatters implement the Formatter interface, a capability set of
// header, row, and footer generation. The Build template operation
// assembles the three parts in order; a variant that does not implement
// all three operations cannot compile, so an incomplete formatter is a
// compile-time error rather than a runtime surprise.
//
// The Generator composes the item processor with a formatter selected
// by report-type key. Its formatter table is built once at construction
// and read-only afterwards, which keeps concurrent report generation
// safe without locks.
package report
