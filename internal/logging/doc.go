// Package logging assembles structured slog loggers and formatting helpers used
// across anagramkit.
//
// It owns the configurable console/JSON handlers, centralizes level and output
// plumbing, and exposes context-aware helpers so index and batch code can tag
// log lines with import batch IDs and sources. The package also provides a
// no-op logger for tests and wiring code that cannot fail.
//
// Logs are written to stderr (and optionally a file) so command output on
// stdout stays machine-readable.
package logging
