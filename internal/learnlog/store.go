package learnlog

import "fmt"

// Store holds the ordered per-category record history.
// Sequences are append-only; the only resets are Service.Clear and a
// wholesale replacement on load. Mutation happens exclusively through the
// Service, external readers only ever see deep copies.
type Store struct {
	entries map[Category][]Record
}

// NewStore creates an empty store with one sequence per category.
func NewStore() *Store {
	entries := make(map[Category][]Record, len(categories))
	for _, c := range categories {
		entries[c] = nil
	}
	return &Store{entries: entries}
}

// Append adds a record to the end of its category sequence.
func (s *Store) Append(r Record) error {
	if !r.Category.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidCategory, r.Category)
	}
	s.entries[r.Category] = append(s.entries[r.Category], r)
	return nil
}

// Records returns the sequence for a category, oldest first.
func (s *Store) Records(c Category) []Record {
	return s.entries[c]
}

// Latest returns the most recent record for a category, if any.
func (s *Store) Latest(c Category) (Record, bool) {
	records := s.entries[c]
	if len(records) == 0 {
		return Record{}, false
	}
	return records[len(records)-1], true
}

// Len returns the total record count across every category.
func (s *Store) Len() int {
	total := 0
	for _, records := range s.entries {
		total += len(records)
	}
	return total
}

// Clone returns a structurally independent deep copy of the store.
func (s *Store) Clone() *Store {
	clone := NewStore()
	for c, records := range s.entries {
		if len(records) == 0 {
			continue
		}
		copied := make([]Record, len(records))
		copy(copied, records)
		clone.entries[c] = copied
	}
	return clone
}

// annotateLatestMood sets the mood of the most recent record in a category.
// Only the service calls this, immediately after an append.
func (s *Store) annotateLatestMood(c Category, mood string) {
	records := s.entries[c]
	if len(records) == 0 {
		return
	}
	records[len(records)-1].Mood = mood
}
