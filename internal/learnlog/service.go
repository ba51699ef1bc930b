package learnlog

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/mlindborg/learnflow/internal/mood"
)

// AuditWriter receives every committed record for the append-only audit
// trail. A write failure is surfaced to the caller but never rolls back the
// in-memory append; the store is the source of truth.
type AuditWriter interface {
	Write(record Record) error
}

// Service is the command/query facade over the store. All mutating
// operations are serialized behind one mutex so that Clear and Replace
// appear atomic to readers.
type Service struct {
	mu         sync.Mutex
	store      *Store
	audit      AuditWriter
	classifier mood.Classifier
	now        func() time.Time
	goalStatus string
}

// ServiceOption configures optional service behavior.
type ServiceOption func(*Service)

// WithClock overrides the clock used for record timestamps.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) {
		s.now = now
	}
}

// WithDefaultGoalStatus overrides the status assigned to new goal records.
func WithDefaultGoalStatus(status string) ServiceOption {
	return func(s *Service) {
		s.goalStatus = status
	}
}

// NewService creates a service over an empty store. audit may be nil to
// disable the audit trail, classifier may be nil to disable mood analysis.
func NewService(audit AuditWriter, classifier mood.Classifier, opts ...ServiceOption) *Service {
	s := &Service{
		store:      NewStore(),
		audit:      audit,
		classifier: classifier,
		now:        time.Now,
		goalStatus: DefaultGoalStatus,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetEntry sanitizes the text and appends a base record for the category.
// The returned error only ever reports an audit trail failure or an invalid
// category; empty text is a valid entry.
func (s *Service) SetEntry(category Category, text string) (Record, error) {
	if !category.Valid() {
		return Record{}, fmt.Errorf("%w: %q", ErrInvalidCategory, category)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	record := NewRecord(category, strings.TrimSpace(text), s.now())
	s.store.entries[category] = append(s.store.entries[category], record)
	return record, s.writeAudit(record)
}

// GoalOption configures a new goal record.
type GoalOption func(*goalConfig)

type goalConfig struct {
	status string
}

// WithStatus overrides the default status for a single goal record.
func WithStatus(status string) GoalOption {
	return func(cfg *goalConfig) {
		cfg.status = status
	}
}

// AddGoal appends a goal record to the Goal category.
func (s *Service) AddGoal(text string, opts ...GoalOption) (Record, error) {
	cfg := goalConfig{status: s.goalStatus}
	for _, opt := range opts {
		opt(&cfg)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	record := NewGoalRecord(strings.TrimSpace(text), cfg.status, s.now())
	s.store.entries[CategoryGoal] = append(s.store.entries[CategoryGoal], record)
	return record, s.writeAudit(record)
}

// AddReflection appends a reflection record to the Notes category, then asks
// the classifier for a mood and annotates the appended record in place. The
// append and the annotation are one logical operation for the caller. When
// classification fails the record stays appended with an empty mood.
func (s *Service) AddReflection(ctx context.Context, text string) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record := NewReflectionRecord(strings.TrimSpace(text), s.now())
	s.store.entries[CategoryNotes] = append(s.store.entries[CategoryNotes], record)

	if s.classifier != nil {
		label, err := s.classifier.Classify(ctx, record.Text)
		if err != nil {
			if auditErr := s.writeAudit(record); auditErr != nil {
				return record, fmt.Errorf("classifier.Classify() > %w; audit.Write() > %w", err, auditErr)
			}
			return record, fmt.Errorf("classifier.Classify() > %w", err)
		}
		s.store.annotateLatestMood(CategoryNotes, label)
		record.Mood = label
	}
	return record, s.writeAudit(record)
}

// Clear resets every category sequence to empty in one step.
func (s *Service) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.store = NewStore()
}

// Latest returns the text of the most recent record in a category,
// or "" when the category has no records.
func (s *Service) Latest(category Category) (string, error) {
	if !category.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidCategory, category)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.store.Latest(category)
	if !ok {
		return "", nil
	}
	return record.Text, nil
}

// Summary returns the one-line rendering of the latest record per category,
// keyed by category. Categories without records are omitted, so the result
// never has more than four entries. Iterate Categories() for ordered output.
func (s *Service) Summary() map[Category]string {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make(map[Category]string)
	for _, c := range categories {
		if record, ok := s.store.Latest(c); ok {
			result[c] = record.Summary()
		}
	}
	return result
}

// Snapshot returns a deep copy of the current store. Mutating the result
// never affects the live store.
func (s *Service) Snapshot() *Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Clone()
}

// Replace swaps in a fully loaded store. Callers load into a fresh store
// first so a failed load never leaves partial state behind.
func (s *Service) Replace(store *Store) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.store = store.Clone()
}

func (s *Service) writeAudit(record Record) error {
	if s.audit == nil {
		return nil
	}
	return s.audit.Write(record)
}
