package release

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/spf13/afero"
)

const (
	recordFile = "release-check.json"
	// RecheckAfter is how long a lookup result is reused.
	RecheckAfter = 24 * time.Hour
)

// record is what the last lookup found for one build.
type record struct {
	Build    string    `json:"build"`
	Latest   string    `json:"latest"`
	Newer    bool      `json:"newer"`
	LookedUp time.Time `json:"looked_up"`
}

// due reports whether build needs a fresh lookup at now. A missing record,
// one written by another build, or one older than RecheckAfter is due.
func (r *record) due(build string, now time.Time) bool {
	return r == nil || r.Build != build || now.Sub(r.LookedUp) > RecheckAfter
}

// store keeps the record in the codegen home directory.
type store struct {
	fs   afero.Fs
	path string
}

func newStore(fsys afero.Fs, dir string) store {
	return store{fs: fsys, path: filepath.Join(dir, recordFile)}
}

// read returns nil, nil before the first lookup.
func (s store) read() (*record, error) {
	data, err := afero.ReadFile(s.fs, s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.path, err)
	}

	var r record
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", s.path, err)
	}
	return &r, nil
}

func (s store) write(r record) error {
	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(s.path), err)
	}
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding release record: %w", err)
	}
	if err := afero.WriteFile(s.fs, s.path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", s.path, err)
	}
	return nil
}
