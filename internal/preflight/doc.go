// Package preflight provides readiness checks for the filesystem paths a
// generation run depends on.
//
// The CLI "check" command prints these results next to the directory guard
// outcome. A failing check does not block generation: the emitted links may
// legitimately point at resources that are installed later.
package preflight
