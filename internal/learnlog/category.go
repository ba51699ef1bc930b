// Package learnlog provides the learning activity domain model, the
// in-memory store and service, and the history persistence codecs.
package learnlog

import "fmt"

// Category identifies which kind of learning activity a record belongs to.
// The string value is the stable spelling used in saved files and summaries.
type Category string

const (
	CategoryGoal    Category = "Goal"
	CategorySkill   Category = "Skill"
	CategorySession Category = "Session"
	CategoryNotes   Category = "Notes"
)

// categories lists every category in declaration order. Summary output,
// CSV export and history rendering all iterate in this order.
var categories = []Category{CategoryGoal, CategorySkill, CategorySession, CategoryNotes}

// Categories returns all categories in their canonical order.
func Categories() []Category {
	result := make([]Category, len(categories))
	copy(result, categories)
	return result
}

// Valid reports whether c is one of the four known categories.
func (c Category) Valid() bool {
	for _, known := range categories {
		if c == known {
			return true
		}
	}
	return false
}

// ParseCategory converts a category label into a Category.
// Returns ErrUnknownCategory for anything outside the closed set.
func ParseCategory(label string) (Category, error) {
	c := Category(label)
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, label)
	}
	return c, nil
}
