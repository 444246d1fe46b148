package preflight

import (
	"path/filepath"

	"srvmaker/internal/config"
	"srvmaker/internal/emit"
	"srvmaker/internal/topology"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes the preflight checks for a working directory. Link target
// checks run only when model is non-nil.
func RunAll(root string, cfg *config.Config, model *topology.Model) []Result {
	if cfg == nil {
		return nil
	}

	results := []Result{
		CheckDirectoryAccess("Working directory", root),
	}

	shared := filepath.Join(root, cfg.Paths.SharedDir)
	sharedResult := CheckReadableDirectory("Shared resources", shared)
	results = append(results, sharedResult)

	if model == nil || !sharedResult.Passed {
		return results
	}
	for _, name := range emit.SharedTargets(model) {
		results = append(results, CheckEntryExists("Link target "+name, filepath.Join(shared, name)))
	}
	return results
}

// Failed returns the results that did not pass.
func Failed(results []Result) []Result {
	var out []Result
	for _, r := range results {
		if !r.Passed {
			out = append(out, r)
		}
	}
	return out
}
