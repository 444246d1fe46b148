package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"srvmaker/internal/config"
)

func newSettingsCommand() *cobra.Command {
	settingsCmd := &cobra.Command{
		Use:         "settings",
		Short:       "Settings file utilities",
		Annotations: map[string]string{"skipConfigLoad": "true"},
	}

	settingsCmd.AddCommand(newSettingsValidateCommand())
	settingsCmd.AddCommand(newSettingsInitCommand())

	return settingsCmd
}

func newSettingsInitCommand() *cobra.Command {
	var targetPath string
	var overwrite bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a sample settings file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			target := strings.TrimSpace(targetPath)
			if target == "" {
				defaultPath, err := config.DefaultConfigPath()
				if err != nil {
					return fmt.Errorf("determine default settings path: %w", err)
				}
				target = defaultPath
			} else {
				expanded, err := config.ExpandPath(target)
				if err != nil {
					return fmt.Errorf("resolve settings path: %w", err)
				}
				target = expanded
			}

			if !overwrite {
				if _, err := os.Stat(target); err == nil {
					return fmt.Errorf("settings file already exists at %s (use --overwrite to replace it)", target)
				} else if !os.IsNotExist(err) {
					return fmt.Errorf("check settings path: %w", err)
				}
			}

			if err := config.CreateSample(target); err != nil {
				return fmt.Errorf("create sample settings: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote sample settings to %s\n", target)
			return nil
		},
	}

	cmd.Flags().StringVarP(&targetPath, "path", "p", "", "Destination for the settings file")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite existing settings if present")
	return cmd
}

func newSettingsValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the settings file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("settings")
			cfg, resolved, exists, err := config.Load(path)
			if err != nil {
				return fmt.Errorf("load settings: %w", err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Settings path: %s\n", resolved)
			if !exists {
				fmt.Fprintln(out, "Settings file did not exist; defaults were used")
			}
			fmt.Fprintf(out, "Shared directory: %s\n", cfg.Paths.SharedDir)
			fmt.Fprintf(out, "Topology file: %s\n", cfg.Paths.TopologyFile)
			fmt.Fprintf(out, "Deploy root: %s\n", cfg.Paths.DeployRoot)
			fmt.Fprintln(out, "Settings valid")
			return nil
		},
	}
}
