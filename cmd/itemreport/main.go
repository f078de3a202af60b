// Package main provides the entry point for the itemreport CLI.
//
// itemreport renders tabular reports of a user's items in CSV, HTML,
// or Markdown, applying role-based visibility rules before rendering.
//
// Usage:
//
//	itemreport generate --user 1 --format CSV
//	itemreport generate --all --format HTML --output-dir reports/
//
// See --help for all available options.
package main

// main is the entry point for itemreport.
func main() {
	Execute()
}
