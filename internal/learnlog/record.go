package learnlog

import (
	"fmt"
	"time"
)

// Kind discriminates the record shapes. It is independent of Category:
// by convention a Goal category record carries KindGoal and a Notes record
// carries KindReflection, but the model never assumes that pairing.
type Kind string

const (
	KindBase       Kind = "base"
	KindGoal       Kind = "goal"
	KindReflection Kind = "reflection"
)

// DefaultGoalStatus is the status a goal record carries unless overridden.
const DefaultGoalStatus = "in-progress"

// TimestampLayout is the ISO-8601 second precision layout used for record
// timestamps, matching the spelling in saved history files.
const TimestampLayout = "2006-01-02T15:04:05"

// Record is a single timestamped learning activity entry.
// Status is only meaningful for KindGoal records and Mood is expected to be
// populated for KindReflection records, but neither is enforced here.
type Record struct {
	Category  Category
	Kind      Kind
	Text      string
	Timestamp string
	Mood      string
	Status    string
}

// NewRecord creates a base record with the current time and no mood.
func NewRecord(category Category, text string, now time.Time) Record {
	return Record{
		Category:  category,
		Kind:      KindBase,
		Text:      text,
		Timestamp: now.Format(TimestampLayout),
	}
}

// NewGoalRecord creates a goal record with the given status,
// or DefaultGoalStatus when status is empty.
func NewGoalRecord(text, status string, now time.Time) Record {
	if status == "" {
		status = DefaultGoalStatus
	}
	r := NewRecord(CategoryGoal, text, now)
	r.Kind = KindGoal
	r.Status = status
	return r
}

// NewReflectionRecord creates a reflection record in the Notes category.
// The mood is annotated by the service after the record is appended.
func NewReflectionRecord(text string, now time.Time) Record {
	r := NewRecord(CategoryNotes, text, now)
	r.Kind = KindReflection
	return r
}

// Summary returns the one-line rendering of the record.
// Example: "Notes: Felt stuck [Mood: stuck]"
func (r Record) Summary() string {
	if r.Mood != "" {
		return fmt.Sprintf("%s: %s [Mood: %s]", r.Category, r.Text, r.Mood)
	}
	return fmt.Sprintf("%s: %s", r.Category, r.Text)
}
