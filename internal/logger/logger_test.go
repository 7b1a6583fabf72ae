package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WritesJSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "p2tutor.log")
	log, err := New(Options{File: path, Level: "debug"})
	require.NoError(t, err)

	log.Debug("problem generated")
	require.NoError(t, log.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(data), &rec))
	assert.Equal(t, "problem generated", rec["msg"])
	assert.Equal(t, "DEBUG", rec["level"])
}

func TestNew_ConsoleOnlyWarnings(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Options{Console: &buf})
	require.NoError(t, err)

	log.Info("quiet")
	log.Warn("progress file unreadable")
	_ = log.Sync()

	out := buf.String()
	assert.False(t, strings.Contains(out, "quiet"))
	assert.True(t, strings.Contains(out, "progress file unreadable"))
}

func TestNew_BadLevel(t *testing.T) {
	_, err := New(Options{Level: "loud"})
	assert.Error(t, err)
}

func TestNew_NoSinksIsNop(t *testing.T) {
	log, err := New(Options{})
	require.NoError(t, err)
	log.Error("dropped")
}

func TestOrNop(t *testing.T) {
	assert.NotNil(t, OrNop(nil))
}
