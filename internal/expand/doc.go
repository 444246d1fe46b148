// Package expand derives the concrete emission units from a topology.
//
// Expansion is a pure function: it never touches the filesystem and never
// fails on a structurally valid topology. The resulting Plan lists auth
// instances, channel parts grouped by channel, and the single db role in the
// order they are emitted and started.
package expand
