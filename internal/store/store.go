// Package store keeps person records in memory keyed by ID and mirrors the
// whole set to a flat semicolon-delimited text file.
package store

import (
	"bufio"
	"errors"
	"io"
	"io/fs"
	"os"
	"sort"
	"strings"

	"record-form/internal/models"
)

// DefaultPath is the data file used when no other location is configured.
const DefaultPath = "data.txt"

// Store maps record IDs to their serialized lines. It is not safe for
// concurrent use; callers drive it from a single goroutine.
type Store struct {
	path    string
	records map[string]string
}

// New returns an empty store bound to path without touching the filesystem.
func New(path string) *Store {
	return &Store{
		path:    path,
		records: make(map[string]string),
	}
}

// Load reads path into a new store. A missing file yields an empty store.
// Lines that do not split into exactly five fields are skipped. When the file
// exists but cannot be read, Load returns an empty store together with an
// *IOError so the caller can report the failure and carry on.
func Load(path string) (*Store, error) {
	s := New(path)

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s, nil
		}
		return s, &IOError{Op: "load", Path: path, Err: err}
	}
	defer f.Close()

	loaded := make(map[string]string)
	r := bufio.NewReader(f)
	for {
		line, err := r.ReadString('\n')
		if line != "" {
			line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
			if rec, ok := models.ParseLine(line); ok {
				loaded[rec.ID] = line
			}
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return s, &IOError{Op: "load", Path: path, Err: err}
		}
	}

	s.records = loaded
	return s, nil
}

// Save rewrites the data file with one line per record. The in-memory
// records are left as they are whether or not the write succeeds.
func (s *Store) Save() error {
	f, err := os.Create(s.path)
	if err != nil {
		return &IOError{Op: "save", Path: s.path, Err: err}
	}

	w := bufio.NewWriter(f)
	for _, line := range s.records {
		if _, err := w.WriteString(line + "\n"); err != nil {
			f.Close()
			return &IOError{Op: "save", Path: s.path, Err: err}
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return &IOError{Op: "save", Path: s.path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &IOError{Op: "save", Path: s.path, Err: err}
	}
	return nil
}

// Put stores rec under rec.ID, replacing any earlier record with the same ID,
// and then saves the file. An empty ID is rejected with a *ValidationError
// before anything changes.
func (s *Store) Put(rec models.Record) error {
	if rec.ID == "" {
		return &ValidationError{Field: "id", Reason: "required"}
	}
	s.records[rec.ID] = rec.Line()
	return s.Save()
}

// Find returns the record stored under id, or ErrNotFound.
func (s *Store) Find(id string) (models.Record, error) {
	line, ok := s.records[id]
	if !ok {
		return models.Record{}, ErrNotFound
	}
	return models.FromLine(line), nil
}

// Len reports how many records are held.
func (s *Store) Len() int {
	return len(s.records)
}

// Path returns the data file the store reads and writes.
func (s *Store) Path() string {
	return s.path
}

// Lines returns the serialized records ordered by ID.
func (s *Store) Lines() []string {
	ids := s.ids()
	lines := make([]string, 0, len(ids))
	for _, id := range ids {
		lines = append(lines, s.records[id])
	}
	return lines
}

// Records returns every stored record ordered by ID.
func (s *Store) Records() []models.Record {
	ids := s.ids()
	out := make([]models.Record, 0, len(ids))
	for _, id := range ids {
		out = append(out, models.FromLine(s.records[id]))
	}
	return out
}

func (s *Store) ids() []string {
	ids := make([]string, 0, len(s.records))
	for id := range s.records {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
