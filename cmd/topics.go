package cmd

import (
	"github.com/spf13/cobra"
)

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List the practice topics",
	Run: func(cmd *cobra.Command, args []string) {
		printTopics(cmd.OutOrStdout())
	},
}
