// Package logging assembles structured slog loggers used across overlap.
//
// It owns the console and JSON handlers, centralizes level parsing, and
// exposes small attribute helpers plus a no-op logger for tests and wiring
// code that cannot fail. Logs go to stderr by default so command output on
// stdout stays machine-readable.
package logging
