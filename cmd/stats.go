package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/p2tutor/internal/problemgen"
	"github.com/abhisek/p2tutor/internal/progress"
	"github.com/abhisek/p2tutor/internal/store"
	"github.com/abhisek/p2tutor/internal/tutor"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := setup(cmd, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer d.Close()

		s, err := d.progress.Load()
		if err != nil {
			d.log.Warn("load progress, using defaults", zap.Error(err))
		}
		out := cmd.OutOrStdout()
		printStats(out, s)

		if events := d.events(); events != nil {
			sums, err := events.TopicSummaries(context.Background())
			if err != nil {
				return err
			}
			printTopicSummaries(out, sums)
		}
		return nil
	},
}

func printStats(w io.Writer, s progress.Stats) {
	fmt.Fprintln(w, tutor.StatusLine(s))
	fmt.Fprintf(w, "Correct answers: %d\n", s.Correct)
	topics := "none yet"
	if len(s.TopicsSeen) > 0 {
		topics = strings.Join(s.TopicsSeen.Sorted(), ", ")
	}
	fmt.Fprintf(w, "Topics practiced: %s\n", topics)
}

func printTopicSummaries(w io.Writer, sums []store.TopicSummary) {
	if len(sums) == 0 {
		return
	}
	fmt.Fprintln(w)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TOPIC\tATTEMPTED\tCORRECT\tACCURACY\tHINTS")
	for _, s := range sums {
		label := s.Topic
		if info, err := problemgen.Lookup(problemgen.Topic(s.Topic)); err == nil {
			label = info.Label
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%.1f%%\t%d\n", label, s.Attempted, s.Correct, s.Accuracy(), s.Hints)
	}
	tw.Flush()
}
