package report

import "errors"

// Report generation errors.
//
// Design decision: A single sentinel matched with errors.Is is the
// whole error surface of this package. Every other unusual input
// (unknown role, empty item list) is defined, non-error behavior.
var (
	// ErrUnsupportedReportType is returned when the requested
	// report-type key is not registered with the generator. The
	// returned error wraps this sentinel and carries the offending key
	// in its message. Keys are case-sensitive: "csv" does not select
	// the CSV format.
	ErrUnsupportedReportType = errors.New("unsupported report type")
)
