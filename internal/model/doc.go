// Package model defines the core data types for report generation.
//
// The types here are plain immutable values: users and items arrive
// from the data store, processed items are derived fresh on every
// report run, and nothing in this package performs I/O or holds state.
//
// Design decision: We keep behavior out of the model (no formatting,
// no business rules) so that the processor and report packages can be
// pure functions over these values. This mirrors the separation between
// report data and report writers.
package model
