// Package main hosts the srvmaker CLI entrypoint and command graph.
//
// Run without a subcommand in a prepared working directory, srvmaker turns the
// topology file into per-process directories, links into the shared resource
// tree, rendered config files, and an aggregate start script. Subcommands
// inspect the working directory, preview the expansion, and scaffold the
// topology and settings files.
//
// Keep this package lean: behaviour lives in internal/scaffold and the
// packages it drives; commands here only resolve settings, build the logger,
// and format output.
package main
