// Package guard refuses to generate into a working directory that holds
// anything besides the shared-resource directory, the topology file, and the
// running executable.
//
// The allow-list is a pure function of the working directory and the
// executable's resolved path, computed on every call. Matching is by exact
// path equality. With force set, foreign entries are removed one by one:
// directories with rmdir semantics (non-empty directories fail), everything
// else with unlink. The first failure stops the pass and earlier removals
// stay done.
package guard
