package cmd

import (
	"context"
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/abhisek/p2tutor/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent answers from the event log",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := setup(cmd, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer d.Close()

		events := d.events()
		if events == nil {
			return errors.New("event log is not available")
		}
		topic, _ := cmd.Flags().GetString("topic")
		recent, err := events.RecentAnswers(context.Background(), store.QueryOpts{
			Limit: d.cfg.History,
			Topic: topic,
		})
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(recent) == 0 {
			fmt.Fprintln(out, "No answers recorded yet.")
			return nil
		}
		tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "TIME\tTOPIC\tLEVEL\tPROBLEM\tANSWER\tEXPECTED\tRESULT")
		for _, e := range recent {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
				e.Timestamp.Local().Format("2006-01-02 15:04"),
				e.Topic, e.Difficulty, e.Prompt, e.Given, e.Expected, e.Outcome)
		}
		return tw.Flush()
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "Maximum number of answers to show")
	historyCmd.Flags().String("topic", "", "Only show this topic ID")
}
