package progress

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/p2tutor/internal/difficulty"
)

func tempStore(t *testing.T) *FileStore {
	t.Helper()
	return NewFileStore(filepath.Join(t.TempDir(), "progress.json"))
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	s, err := tempStore(t).Load()
	require.NoError(t, err)
	assert.Equal(t, Defaults(), s)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	fs := tempStore(t)
	in := Defaults()
	in.Attempted = 12
	in.Correct = 9
	in.TopicsSeen.Add("Perimeter")
	in.TopicsSeen.Add("Addition up to 999")
	in.Difficulty = difficulty.Hard

	require.NoError(t, fs.Save(in))
	out, err := fs.Load()
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestSave_WritesSortedTopicsAndKnownKeys(t *testing.T) {
	fs := tempStore(t)
	s := Defaults()
	s.TopicsSeen.Add("Word Problems")
	s.TopicsSeen.Add("Division")
	require.NoError(t, fs.Save(s))

	data, err := os.ReadFile(fs.Path())
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, []any{"Division", "Word Problems"}, doc["topics_practiced"])
	assert.Equal(t, "Easy", doc["difficulty_level"])
	assert.Contains(t, doc, "problems_solved")
	assert.Contains(t, doc, "correct_answers")
}

func TestSave_LeavesNoTempFiles(t *testing.T) {
	fs := tempStore(t)
	require.NoError(t, fs.Save(Defaults()))
	entries, err := os.ReadDir(filepath.Dir(fs.Path()))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestSave_FileIsWorldReadable(t *testing.T) {
	fs := tempStore(t)
	require.NoError(t, fs.Save(Defaults()))
	info, err := os.Stat(fs.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())
}

func TestLoad_CorruptFile(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", "{{{"},
		{"wrong type", `{"problems_solved": "many"}`},
		{"negative counter", `{"correct_answers": -3}`},
		{"topics not a list", `{"topics_practiced": "Perimeter"}`},
		{"top-level array", `[1, 2, 3]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := tempStore(t)
			require.NoError(t, os.WriteFile(fs.Path(), []byte(tt.data), 0o644))

			s, err := fs.Load()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrCorrupt), "err = %v", err)
			assert.Equal(t, Defaults(), s)
		})
	}
}

func TestLoad_PartialKeysMergeOverDefaults(t *testing.T) {
	fs := tempStore(t)
	require.NoError(t, os.WriteFile(fs.Path(), []byte(`{"correct_answers": 4, "extra": true}`), 0o644))

	s, err := fs.Load()
	require.NoError(t, err)
	assert.Equal(t, 4, s.Correct)
	assert.Equal(t, 0, s.Attempted)
	assert.Equal(t, difficulty.Easy, s.Difficulty)
	assert.Empty(t, s.TopicsSeen)
	assert.NotNil(t, s.TopicsSeen)
}

func TestLoad_UnknownDifficultyKeepsDefault(t *testing.T) {
	fs := tempStore(t)
	require.NoError(t, os.WriteFile(fs.Path(), []byte(`{"difficulty_level": "Expert", "problems_solved": 2}`), 0o644))

	s, err := fs.Load()
	require.NoError(t, err)
	assert.Equal(t, difficulty.Default, s.Difficulty)
	assert.Equal(t, 2, s.Attempted)
}

func TestReset(t *testing.T) {
	fs := tempStore(t)
	require.NoError(t, fs.Reset(), "reset without a file")
	require.NoError(t, fs.Save(Defaults()))
	require.NoError(t, fs.Reset())
	_, err := os.Stat(fs.Path())
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
