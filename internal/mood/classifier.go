// Package mood provides the mood classification collaborators used to
// annotate reflection entries.
package mood

import "context"

// Labels a classifier may return. A record stores the label as a plain
// string; an empty string means no mood was assigned.
const (
	LabelMotivated = "motivated"
	LabelStuck     = "stuck"
	LabelNeutral   = "neutral"
)

//go:generate mockgen -source=classifier.go -destination=../mocks/mood/mock_classifier.go -package=mock_mood Classifier

// Classifier maps free text to one of the mood labels. Implementations must
// be deterministic for the same input within a session.
type Classifier interface {
	Classify(ctx context.Context, text string) (string, error)
}
