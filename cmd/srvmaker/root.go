package main

import (
	"github.com/spf13/cobra"

	"srvmaker/internal/scaffold"
)

func newRootCommand() *cobra.Command {
	var settingsFlag string
	var logLevelFlag string
	var force bool

	ctx := newCommandContext(&settingsFlag, &logLevelFlag)

	rootCmd := &cobra.Command{
		Use:   "srvmaker",
		Short: "Generate a game server directory tree from a topology file",
		Long: "srvmaker reads the topology file in the current directory and creates the\n" +
			"auth, channel and db directories, their links into the shared resource\n" +
			"directory, their config files, and a start script.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureSettings()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, closeLog, err := ctx.scaffoldOptions(cmd, force)
			if err != nil {
				return err
			}
			defer closeLog()
			_, err = scaffold.Run(ctx.runContext(cmd), opts)
			return err
		},
	}

	rootCmd.PersistentFlags().StringVarP(&settingsFlag, "settings", "s", "", "Settings file path")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Override the configured log level (debug, info, warn, error)")
	rootCmd.Flags().BoolVarP(&force, "force", "f", false, "Delete directories and files that are not whitelisted")

	rootCmd.AddCommand(newCheckCommand(ctx))
	rootCmd.AddCommand(newPlanCommand(ctx))
	rootCmd.AddCommand(newInitCommand(ctx))
	rootCmd.AddCommand(newSettingsCommand())

	return rootCmd
}
