package learnlog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// HistoryRepository persists the full store state.
type HistoryRepository interface {
	Save(store *Store) error
	Load() (*Store, error)
}

// recordJSON is the wire shape of a single record. Pointer fields
// distinguish an absent key from an empty value; the presence of "status"
// decides the record kind on load.
type recordJSON struct {
	EntryType string  `json:"entry_type"`
	Text      *string `json:"text"`
	Timestamp *string `json:"timestamp"`
	Mood      *string `json:"mood"`
	Status    *string `json:"status,omitempty"`
}

// JSONHistoryRepository saves and loads the store as a JSON file keyed by
// category label. Categories without records are omitted from the file.
type JSONHistoryRepository struct {
	path string
}

// NewJSONHistoryRepository creates a repository backed by the given file.
func NewJSONHistoryRepository(path string) *JSONHistoryRepository {
	return &JSONHistoryRepository{path: path}
}

// Path returns the history file path.
func (r *JSONHistoryRepository) Path() string {
	return r.path
}

// Exists reports whether the history file is present.
func (r *JSONHistoryRepository) Exists() bool {
	_, err := os.Stat(r.path)
	return err == nil
}

// Save writes every non-empty category sequence to the history file.
// The file is written to a temporary name and renamed on success so a
// failed write never leaves a truncated file in place.
func (r *JSONHistoryRepository) Save(store *Store) error {
	out := make(map[string][]recordJSON)
	for _, c := range categories {
		records := store.Records(c)
		if len(records) == 0 {
			continue
		}
		rows := make([]recordJSON, 0, len(records))
		for _, record := range records {
			rows = append(rows, marshalRecord(record))
		}
		out[string(c)] = rows
	}

	data, err := json.MarshalIndent(out, "", "    ")
	if err != nil {
		return fmt.Errorf("json.MarshalIndent() > %w", err)
	}
	if err := writeFileAtomic(r.path, append(data, '\n')); err != nil {
		return fmt.Errorf("writeFileAtomic(%s) > %w", r.path, err)
	}
	return nil
}

// Load reads the history file into a fresh store. The kind of each record is
// reconstructed with a fixed precedence: a present "status" field means a
// goal record, otherwise the Notes category means a reflection, otherwise a
// base record. The order is deliberate legacy behavior; a Notes record that
// carries a status loads as a goal record.
//
// Any unknown category key or unparsable record rejects the whole file and
// the caller's live store stays untouched.
func (r *JSONHistoryRepository) Load() (*Store, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile(%s) > %w", r.path, err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %s: %s", ErrMalformedRecord, r.path, err)
	}

	store := NewStore()
	for _, c := range categories {
		rows, ok := raw[string(c)]
		if !ok {
			continue
		}
		delete(raw, string(c))

		var records []recordJSON
		if err := json.Unmarshal(rows, &records); err != nil {
			return nil, fmt.Errorf("%w: %s: category %q: %s", ErrMalformedRecord, r.path, c, err)
		}
		for _, row := range records {
			store.entries[c] = append(store.entries[c], unmarshalRecord(c, row))
		}
	}
	for key := range raw {
		return nil, fmt.Errorf("%w: %s: %q", ErrUnknownCategory, r.path, key)
	}
	return store, nil
}

func marshalRecord(record Record) recordJSON {
	row := recordJSON{
		EntryType: string(record.Category),
		Text:      &record.Text,
		Timestamp: &record.Timestamp,
		Mood:      &record.Mood,
	}
	if record.Kind == KindGoal {
		row.Status = &record.Status
	}
	return row
}

func unmarshalRecord(c Category, row recordJSON) Record {
	record := Record{
		Category:  c,
		Kind:      KindBase,
		Text:      stringValue(row.Text),
		Timestamp: stringValue(row.Timestamp),
		Mood:      stringValue(row.Mood),
	}
	switch {
	case row.Status != nil:
		record.Kind = KindGoal
		record.Status = *row.Status
	case c == CategoryNotes:
		record.Kind = KindReflection
	}
	return record
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// writeFileAtomic writes data to a temporary file next to path and renames
// it into place once the write fully succeeds.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("os.CreateTemp(%s) > %w", dir, err)
	}
	defer func() {
		_ = os.Remove(tmp.Name())
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("tmp.Write() > %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("tmp.Close() > %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("os.Chmod() > %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("os.Rename() > %w", err)
	}
	return nil
}

// IsNotExist reports whether err means the history file was missing.
func IsNotExist(err error) bool {
	return errors.Is(err, os.ErrNotExist)
}
