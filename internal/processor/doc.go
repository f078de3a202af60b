// Package processor applies the role-based item visibility rule.
//
// Processing is a pure, deterministic function: it never mutates its
// inputs, performs no I/O, and returns a fresh slice on every call.
// This makes the whole report pipeline safe to run concurrently from
// independent call sites without locks.
package processor
