package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"srvmaker/internal/expand"
	"srvmaker/internal/scaffold"
	"srvmaker/internal/startscript"
)

func newPlanCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool
	var showScript bool

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Show the units the topology expands into",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, closeLog, err := ctx.scaffoldOptions(cmd, false)
			if err != nil {
				return err
			}
			defer closeLog()
			model, err := scaffold.LoadTopology(opts)
			if err != nil {
				return err
			}
			plan := expand.Expand(model)
			if jsonOutput {
				return writeJSON(cmd, plan)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(out,
				[]string{"Kind", "Directory", "Executable", "Port", "P2P Port", "Maps"},
				planRows(plan),
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignLeft},
			))

			script := startscript.Build(plan, startscript.Options{
				ServerRoot:    opts.Settings.ServerRoot(model.ServerName),
				SettleSeconds: opts.Settings.Script.SettleSeconds,
			})
			fmt.Fprintf(out, "%s: %d launch lines under %s\n",
				opts.Settings.Script.FileName,
				len(plan.Auth)+plan.PartCount()+1,
				opts.Settings.ServerRoot(model.ServerName),
			)
			if showScript {
				fmt.Fprint(out, script)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the plan as JSON")
	cmd.Flags().BoolVar(&showScript, "script", false, "Also print the start script")
	return cmd
}

func planRows(plan expand.Plan) [][]string {
	rows := make([][]string, 0, len(plan.Auth)+plan.PartCount()+len(plan.Channels)+1)
	for _, unit := range plan.Auth {
		rows = append(rows, unitRow(unit))
	}
	for _, group := range plan.Channels {
		if len(group.Parts) == 0 {
			rows = append(rows, []string{expand.KindChannelPart.String(), group.Dir, "-", "-", "-", "(no parts)"})
			continue
		}
		for _, unit := range group.Parts {
			rows = append(rows, unitRow(unit))
		}
	}
	return append(rows, unitRow(plan.DB))
}

func unitRow(unit expand.Unit) []string {
	port, p2p := "-", "-"
	if unit.Kind != expand.KindDB {
		port = strconv.FormatInt(unit.Port, 10)
		p2p = strconv.FormatInt(unit.P2PPort, 10)
	}
	maps := "-"
	if unit.Kind == expand.KindChannelPart {
		ids := make([]string, 0, len(unit.Maps))
		for _, id := range unit.Maps {
			ids = append(ids, strconv.FormatInt(id, 10))
		}
		maps = strings.Join(ids, " ")
	}
	return []string{unit.Kind.String(), unit.Dir, unit.Executable, port, p2p, maps}
}
