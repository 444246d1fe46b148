// Package logging assembles the structured slog loggers used across srvmaker.
//
// It owns the console and JSON handlers, maps the configured level and format
// onto them, and exposes context helpers so every record of a run carries the
// same run_id. Output defaults to stderr; stdout belongs to command output.
// A no-op logger is provided for tests and for wiring code that has no logger
// to hand.
package logging
