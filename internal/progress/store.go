package progress

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/abhisek/p2tutor/internal/difficulty"
)

// DefaultFile is the progress file name used when none is configured.
const DefaultFile = "rwanda_p2_math_progress.json"

// ErrCorrupt wraps any failure to read an existing progress file.
var ErrCorrupt = errors.New("corrupt progress file")

//go:embed schema.json
var schemaJSON []byte

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

// Store loads and saves learner statistics.
type Store interface {
	// Load returns the saved statistics merged over Defaults. When the
	// backing data is missing it returns Defaults and no error; when it is
	// unreadable it returns Defaults and an error wrapping ErrCorrupt.
	Load() (Stats, error)

	// Save replaces the saved statistics with s.
	Save(s Stats) error
}

// FileStore keeps statistics in a single JSON file.
type FileStore struct {
	path string
}

// NewFileStore returns a FileStore backed by path. An empty path selects
// DefaultFile in the working directory.
func NewFileStore(path string) *FileStore {
	if path == "" {
		path = DefaultFile
	}
	return &FileStore{path: path}
}

// Path returns the file location.
func (f *FileStore) Path() string {
	return f.path
}

func (f *FileStore) Load() (Stats, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return Defaults(), nil
	}
	if err != nil {
		return Defaults(), fmt.Errorf("read %s: %w", f.path, err)
	}
	s, err := Decode(data)
	if err != nil {
		return Defaults(), fmt.Errorf("%s: %w", f.path, err)
	}
	return s, nil
}

// fileMode is the permission of a saved progress file.
const fileMode = 0o644

// Save writes s to a temporary file next to the target and renames it into
// place, so a crash never leaves a half-written file behind.
func (f *FileStore) Save(s Stats) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encode progress: %w", err)
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create progress directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".progress-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := tmp.Chmod(fileMode); err != nil {
		tmp.Close()
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		return fmt.Errorf("write progress: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("replace %s: %w", f.path, err)
	}
	return nil
}

// Reset deletes the progress file. A missing file is not an error.
func (f *FileStore) Reset() error {
	if err := os.Remove(f.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove %s: %w", f.path, err)
	}
	return nil
}

// Decode validates a progress document and merges it key by key over
// Defaults. Keys that are absent keep their default value; unknown keys are
// ignored. An unrecognized difficulty name falls back to the default level.
func Decode(data []byte) (Stats, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return Defaults(), fmt.Errorf("%w: %w", ErrCorrupt, err)
	}

	sch, err := progressSchema()
	if err != nil {
		return Defaults(), fmt.Errorf("compile progress schema: %w", err)
	}
	if err := sch.Validate(doc); err != nil {
		return Defaults(), fmt.Errorf("%w: %w", ErrCorrupt, err)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return Defaults(), fmt.Errorf("%w: %w", ErrCorrupt, err)
	}

	s := Defaults()
	if raw, ok := fields["problems_solved"]; ok {
		if err := json.Unmarshal(raw, &s.Attempted); err != nil {
			return Defaults(), fmt.Errorf("%w: problems_solved: %w", ErrCorrupt, err)
		}
	}
	if raw, ok := fields["correct_answers"]; ok {
		if err := json.Unmarshal(raw, &s.Correct); err != nil {
			return Defaults(), fmt.Errorf("%w: correct_answers: %w", ErrCorrupt, err)
		}
	}
	if raw, ok := fields["topics_practiced"]; ok {
		if err := json.Unmarshal(raw, &s.TopicsSeen); err != nil {
			return Defaults(), fmt.Errorf("%w: topics_practiced: %w", ErrCorrupt, err)
		}
	}
	if raw, ok := fields["difficulty_level"]; ok {
		var name string
		if err := json.Unmarshal(raw, &name); err != nil {
			return Defaults(), fmt.Errorf("%w: difficulty_level: %w", ErrCorrupt, err)
		}
		if level, err := difficulty.ParseLevel(name); err == nil {
			s.Difficulty = level
		}
	}
	return s, nil
}

func progressSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		var doc any
		if err := json.Unmarshal(schemaJSON, &doc); err != nil {
			schemaErr = err
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("progress.json", doc); err != nil {
			schemaErr = err
			return
		}
		compiledSchema, schemaErr = c.Compile("progress.json")
	})
	return compiledSchema, schemaErr
}
