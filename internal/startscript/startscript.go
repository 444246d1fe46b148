package startscript

import (
	"strconv"
	"strings"

	"srvmaker/internal/expand"
)

// DefaultFileMode is the permission applied to the written script.
const DefaultFileMode = 0o755

// Options configures Build.
type Options struct {
	// ServerRoot is the deployed directory holding every unit directory.
	ServerRoot string
	// SettleSeconds is the delay between starting the db role and the game
	// processes.
	SettleSeconds int
}

// Build returns the start script for plan. It is deterministic for a given
// plan and options.
func Build(plan expand.Plan, opts Options) string {
	root := strings.TrimSuffix(opts.ServerRoot, "/")

	var b strings.Builder
	b.WriteString("#!/bin/sh\n")
	writeLaunch(&b, root+"/"+plan.DB.Dir, plan.DB.Executable)
	b.WriteString("sleep ")
	b.WriteString(strconv.Itoa(opts.SettleSeconds))
	b.WriteByte('\n')

	for _, group := range plan.Channels {
		for _, part := range group.Parts {
			writeLaunch(&b, root+"/"+part.Dir, part.Executable)
		}
	}
	for _, auth := range plan.Auth {
		writeLaunch(&b, root+"/"+auth.Dir+"/", auth.Executable)
	}

	b.WriteString("cd ../..\n")
	return b.String()
}

func writeLaunch(b *strings.Builder, dir, executable string) {
	b.WriteString("cd ")
	b.WriteString(dir)
	b.WriteString(" && ./")
	b.WriteString(executable)
	b.WriteByte('\n')
}
