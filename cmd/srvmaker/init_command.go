package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"srvmaker/internal/config"
	"srvmaker/internal/topology"
)

func newInitCommand(ctx *commandContext) *cobra.Command {
	var targetPath string
	var overwrite bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a sample topology file in the working directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureSettings()
			if err != nil {
				return err
			}
			target := strings.TrimSpace(targetPath)
			if target == "" {
				target = cfg.Paths.TopologyFile
			}
			target, err = config.ExpandPath(target)
			if err != nil {
				return fmt.Errorf("resolve topology path: %w", err)
			}

			if err := topology.WriteSample(target, overwrite); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Wrote sample topology to %s\n", target)
			if filepath.Base(target) != cfg.Paths.TopologyFile {
				fmt.Fprintf(out, "Rename it to %s (or set paths.topology_file) before generating.\n", cfg.Paths.TopologyFile)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&targetPath, "path", "p", "", "Destination for the topology file")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite an existing topology file")
	return cmd
}
