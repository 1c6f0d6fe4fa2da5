package cmd

import (
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a practice session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd.Context())
	},
}

func init() {
	playCmd.Flags().BoolVar(&cfg.NoWelcome, "no-welcome", cfg.NoWelcome, "skip the welcome screen")
}
