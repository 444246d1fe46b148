// Package scaffold wires one generation run together: it loads the topology,
// guards the working directory, expands the topology into units, emits them,
// and writes the start script last.
//
// Every stage runs sequentially and the first failure ends the run. Output
// already written stays on disk.
package scaffold
