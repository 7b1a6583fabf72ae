package cmd

import (
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start the interactive tutor",
	RunE: func(cmd *cobra.Command, args []string) error {
		skip, _ := cmd.Flags().GetBool("no-splash")
		return runApp(cmd, skip)
	},
}

func init() {
	playCmd.Flags().Bool("no-splash", false, "Skip the welcome animation")
}
