// Package pipeline connects the data store to the report generator.
//
// A Pipeline fetches one user and their items from the store and hands
// them to the generator; this is the only place where storage and the
// pure report core meet. BatchProcessor runs many pipelines
// concurrently, which is safe because report generation is pure and
// the generator's formatter table is read-only after construction.
package pipeline
