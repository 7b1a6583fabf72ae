package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/p2tutor/internal/difficulty"
	"github.com/abhisek/p2tutor/internal/problemgen"
	"github.com/abhisek/p2tutor/internal/tutor"
)

const practiceHelp = `Commands:
  topics           list the practice topics
  topic <n|id>     start a problem, e.g. "topic 3" or "topic addition"
  hint             show the next hint
  level <name>     set the difficulty: easy, medium or hard
  stats            show your progress
  help             show this help
  quit             leave
Anything else is checked as your answer.`

var practiceCmd = &cobra.Command{
	Use:   "practice",
	Short: "Practice in a plain text conversation",
	Long:  "Practice without the full-screen interface. Reads commands and answers line by line from standard input.",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := setup(cmd, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer d.Close()

		out := cmd.OutOrStdout()
		t := d.newTutor(tutor.PresenterFunc(func(m tutor.Message) {
			fmt.Fprintf(out, "%s%s\n", m.Prefix(), m.Text)
		}))
		d.log.Info("practice started", zap.String("session", t.SessionID()))

		if topic, _ := cmd.Flags().GetString("topic"); topic != "" {
			if err := chooseTopic(t, topic); err != nil {
				return err
			}
		} else {
			t.Welcome()
			fmt.Fprintln(out, practiceHelp)
		}
		return practiceLoop(t, cmd.InOrStdin(), out)
	},
}

func init() {
	practiceCmd.Flags().String("topic", "", "Start straight away with this topic")
}

// practiceLoop reads one command or answer per line until quit or EOF.
func practiceLoop(t *tutor.Tutor, in io.Reader, out io.Writer) error {
	sc := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !sc.Scan() {
			fmt.Fprintln(out)
			return sc.Err()
		}
		line := strings.TrimSpace(sc.Text())
		cmd, arg, _ := strings.Cut(line, " ")
		arg = strings.TrimSpace(arg)

		switch strings.ToLower(cmd) {
		case "quit", "exit":
			fmt.Fprintln(out, "Murabeho! (Goodbye!)")
			return nil
		case "help":
			fmt.Fprintln(out, practiceHelp)
		case "topics":
			printTopics(out)
		case "topic":
			if err := chooseTopic(t, arg); err != nil {
				fmt.Fprintln(out, err)
			}
		case "hint":
			t.RequestHint()
		case "level":
			level, err := difficulty.ParseLevel(arg)
			if err == nil {
				err = t.SetDifficulty(level)
			}
			if err != nil {
				fmt.Fprintln(out, err)
			}
		case "stats":
			fmt.Fprintln(out, t.StatusLine())
		default:
			t.Submit(line)
		}
	}
}

// chooseTopic accepts a 1-based menu number or a topic ID.
func chooseTopic(t *tutor.Tutor, arg string) error {
	if arg == "" {
		return errors.New("which topic? Type \"topics\" to see the list")
	}
	topics := problemgen.Topics()
	if n, err := strconv.Atoi(arg); err == nil {
		if n < 1 || n > len(topics) {
			return fmt.Errorf("pick a topic between 1 and %d", len(topics))
		}
		return t.ChooseTopic(topics[n-1].ID)
	}
	return t.ChooseTopic(problemgen.Topic(strings.ToLower(arg)))
}

func printTopics(w io.Writer) {
	for i, info := range problemgen.Topics() {
		fmt.Fprintf(w, "%2d. %s %-24s (%s)\n", i+1, info.Icon, info.Label, info.ID)
	}
}
