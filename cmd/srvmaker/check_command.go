package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"srvmaker/internal/preflight"
	"srvmaker/internal/scaffold"
	"srvmaker/internal/topology"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check the working directory without generating anything",
		Long: "check loads the topology, runs the allow-list guard on the working\n" +
			"directory, and reports whether the shared resource directory holds every\n" +
			"link target. With --force, entries that are not whitelisted are deleted;\n" +
			"nothing is deleted when the topology cannot be loaded.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, closeLog, err := ctx.scaffoldOptions(cmd, force)
			if err != nil {
				return err
			}
			defer closeLog()
			checkErr := scaffold.Check(ctx.runContext(cmd), opts)

			topo, model := topologyResult(opts)
			results := append([]preflight.Result{topo}, preflight.RunAll(opts.Root, opts.Settings, model)...)

			out := cmd.OutOrStdout()
			rows := make([][]string, 0, len(results))
			for _, r := range results {
				rows = append(rows, []string{r.Name, passFail(r.Passed), r.Detail})
			}
			fmt.Fprintln(out, renderTable(out, []string{"Check", "Status", "Detail"}, rows, nil))

			if checkErr != nil {
				return checkErr
			}
			fmt.Fprintln(out, "Working directory ready")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Delete directories and files that are not whitelisted")
	return cmd
}

func topologyResult(opts scaffold.Options) (preflight.Result, *topology.Model) {
	const name = "Topology"
	path := filepath.Join(opts.Root, opts.Settings.Paths.TopologyFile)
	model, err := scaffold.LoadTopology(opts)
	if err != nil {
		return preflight.Result{Name: name, Detail: err.Error()}, nil
	}
	return preflight.Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (server %s)", path, model.ServerName)}, model
}

func passFail(passed bool) string {
	if passed {
		return "ok"
	}
	return "FAIL"
}
