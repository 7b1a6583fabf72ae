package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/p2tutor/internal/problemgen"
	"github.com/abhisek/p2tutor/internal/progress"
	"github.com/abhisek/p2tutor/internal/tutor"
)

// execCLI executes the root command with isolated files and returns the
// combined output.
func execCLI(t *testing.T, dir, stdin string, args ...string) (string, error) {
	t.Helper()
	return execCLIWithDB(t, dir, filepath.Join(dir, "events.db"), stdin, args...)
}

func execCLIWithDB(t *testing.T, dir, db, stdin string, args ...string) (string, error) {
	t.Helper()
	base := []string{
		"--progress", filepath.Join(dir, "progress.json"),
		"--db", db,
		"--log-file", filepath.Join(dir, "p2tutor.log"),
		"--config", "",
	}
	var out bytes.Buffer
	rootCmd.SetArgs(append(args, base...))
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	err := rootCmd.Execute()
	return out.String(), err
}

// runCLI is execCLI for commands expected to succeed.
func runCLI(t *testing.T, dir, stdin string, args ...string) string {
	t.Helper()
	out, err := execCLI(t, dir, stdin, args...)
	require.NoError(t, err)
	return out
}

func TestPracticeCommand(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	out := runCLI(t, dir, "hint\nlevel hard\nquit\n", "practice", "--topic", "addition", "--seed", "5")

	assert.Contains(t, out, "Addition Problem (up to 999)")
	assert.Contains(t, out, "💡 Hint 1:")
	assert.Contains(t, out, "Difficulty set to Hard.")
	assert.Contains(t, out, "Murabeho!")

	s, err := progress.NewFileStore(filepath.Join(dir, "progress.json")).Load()
	require.NoError(t, err)
	assert.True(t, s.TopicsSeen.Has("Addition up to 999"))
	assert.Equal(t, "Hard", string(s.Difficulty))
}

func TestStatsAndResetCommands(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	runCLI(t, dir, "topic 1\nquit\n", "practice")
	out := runCLI(t, dir, "", "stats")
	assert.Contains(t, out, "Problems Solved: 0 | Accuracy: 0.0% | Level: Easy")
	assert.Contains(t, out, "Numeration 0-999")

	out = runCLI(t, dir, "", "reset", "--yes")
	assert.Contains(t, out, "Progress reset.")
	assert.NoFileExists(t, filepath.Join(dir, "progress.json"))
}

func TestStatsCommandCorruptProgressFallsBack(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "progress.json"), []byte("{not json"), 0o644))

	out := runCLI(t, dir, "", "stats")
	assert.Contains(t, out, "Problems Solved: 0 | Accuracy: 0.0% | Level: Easy")
	assert.Contains(t, out, "Topics practiced: none yet")
}

func TestResetAllWithoutEventLog(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "progress.json"), []byte("{}"), 0o644))

	// A regular file in the DB path's parent makes the event log unopenable.
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	out, err := execCLIWithDB(t, dir, filepath.Join(blocker, "events.db"), "", "reset", "--yes", "--all")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "event log is not available")
	assert.NotContains(t, out, "Progress reset.\n")
	assert.NoFileExists(t, filepath.Join(dir, "progress.json"))
}

func TestTopicsCommand(t *testing.T) {
	var out bytes.Buffer
	printTopics(&out)
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Len(t, lines, len(problemgen.Topics()))
	assert.Contains(t, lines[0], "(numeration)")
}

func TestPracticeLoopAnswers(t *testing.T) {
	var out bytes.Buffer
	var current problemgen.Problem
	tu := tutor.New(tutor.Options{
		Presenter: tutor.PresenterFunc(func(m tutor.Message) { out.WriteString(m.Text + "\n") }),
		Rand:      problemgen.NewRand(9),
		Now:       func() time.Time { return time.Date(2026, 2, 2, 10, 0, 0, 0, time.UTC) },
	})
	require.NoError(t, chooseTopic(tu, "multiplication"))
	current, _ = tu.Current()

	err := practiceLoop(tu, strings.NewReader(current.Answer.String()+"\n"), &out)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "You got it right!")
	assert.Equal(t, 1, tu.Stats().Correct)
}

func TestChooseTopicErrors(t *testing.T) {
	tu := tutor.New(tutor.Options{Rand: problemgen.NewRand(1)})
	assert.Error(t, chooseTopic(tu, ""))
	assert.Error(t, chooseTopic(tu, "15"))
	assert.ErrorIs(t, chooseTopic(tu, "algebra"), problemgen.ErrUnknownTopic)
	assert.NoError(t, chooseTopic(tu, "14"))
}
