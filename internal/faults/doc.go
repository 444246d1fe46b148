// Package faults defines the error taxonomy surfaced by srvmaker.
//
// Every failure the scaffolder can report is tagged with one of the exported
// sentinel markers so callers classify errors with errors.Is instead of
// matching message text. Lower-level I/O errors are always wrapped together
// with the path that produced them; the top-level reporter prints the
// resulting message verbatim.
package faults
