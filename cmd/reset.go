package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset learner progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := setup(cmd, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer d.Close()

		all, _ := cmd.Flags().GetBool("all")
		yes, _ := cmd.Flags().GetBool("yes")
		out := cmd.OutOrStdout()

		if !yes {
			what := d.progress.Path()
			if all {
				what += " and the event log"
			}
			fmt.Fprintf(out, "This deletes %s. Continue? [y/N] ", what)
			answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			if a := strings.ToLower(strings.TrimSpace(answer)); a != "y" && a != "yes" {
				fmt.Fprintln(out, "Cancelled.")
				return nil
			}
		}

		if err := d.progress.Reset(); err != nil {
			return err
		}
		if all {
			if d.store == nil {
				return errors.New("progress reset, but the event log is not available and was left untouched")
			}
			if err := d.store.Purge(context.Background()); err != nil {
				return err
			}
		}
		d.log.Info("progress reset", zap.Bool("events", all))
		fmt.Fprintln(out, "Progress reset.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("all", false, "Also delete the event log")
	resetCmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")
}
