package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/abhisek/timesmaster/internal/config"
)

// cfg starts from the TIMESMASTER_* environment; flags bound in init
// override it. A bad environment is reported before any command runs.
var cfg, cfgErr = config.Load()

var rootCmd = &cobra.Command{
	Use:          "timesmaster",
	Short:        "Times tables trainer for the terminal",
	Long:         "TimesMaster drills the 1 to 9 times tables, tracks mastery of every fact and awards achievements along the way.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cfgErr != nil {
			return cfgErr
		}
		return cfg.Validate()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd.Context())
	},
}

// Execute runs the root command with ctx.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	cfg.BindFlags(rootCmd.PersistentFlags())
	cfg.BindLogFlags(rootCmd.PersistentFlags())
	rootCmd.Flags().BoolVar(&cfg.NoWelcome, "no-welcome", cfg.NoWelcome, "skip the welcome screen")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(versionCmd)
}
