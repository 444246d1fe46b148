// Package emit writes emission units to disk.
//
// Each unit becomes a directory with its log (and, for channel parts, mark)
// subdirectories, a fixed role-specific set of relative symbolic links into
// the shared-resource directory, and one rendered key/value config file.
// Units are emitted strictly in plan order. The first failing filesystem call
// aborts the run; whatever was already created stays on disk, so a rerun
// needs --force or a manual cleanup first.
package emit
