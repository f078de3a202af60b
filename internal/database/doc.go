// Package database provides SQLite-based storage for users and items.
//
// The store is the external collaborator behind the report pipeline:
// the report core never calls it, only the pipeline and CLI do. It
// uses modernc.org/sqlite (pure Go, no cgo) with WAL mode and a
// single-writer connection pool.
package database
