package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/p2tutor/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "p2tutor",
	Short: "Math tutor for Rwandan Primary Two learners",
	Long: "p2tutor — a terminal math tutor that follows the Rwandan P2 curriculum:\n" +
		"numbers to 999, the four operations, measurement, shapes, chance and word problems.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, false)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	f := rootCmd.PersistentFlags()
	f.String("config", "", "Path to a p2tutor.yaml config file")
	f.String("progress", "", "Path to the progress JSON file (default ./rwanda_p2_math_progress.json)")
	f.String("db", "", "Path to the SQLite event log (overrides P2TUTOR_DB)")
	f.String("log-file", "", "Path to the log file (default <data dir>/p2tutor.log)")
	f.String("log-level", "", "Log level: debug, info, warn or error")
	f.String("metrics-file", "", "Write Prometheus metrics to this file on exit")
	f.Int64("seed", 0, "Seed for problem generation (0 picks a random seed)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(practiceCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(topicsCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig resolves settings from the command's flags, the environment
// and the config file.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	return config.Load(path, cmd.Flags())
}
