// Package log provides logging with automatic masking of sensitive
// attribute values, built on top of the standard slog package.
//
// Report data flows through the pipeline together with store
// credentials and user identifiers; the SecureHandler makes sure that
// secret-bearing attributes (passwords, tokens, credentials) never
// reach log output even in verbose mode.
//
// Usage:
//
//	logger := log.NewSecureLogger(os.Stderr, true) // verbose=true
//	logger.Info("store opened",
//	    "path", dbPath,
//	    "password", dsn, // masked in output
//	)
//	slog.SetDefault(logger)
package log
