// Package logger builds the slog loggers used across the framework.
//
// New returns a JSON logger writing to stdout; NewNope returns a logger
// that discards everything and is the framework default when no logging is
// configured. Both accept ContextExtractor functions that pull
// request-scoped attributes (request id, caller subject) out of the context
// on every log call.
//
// NewWithSentry mirrors New but additionally forwards warning and error
// records to Sentry when a DSN is configured; without a DSN it degrades to
// stdout-only, so local development needs no setup.
package logger
