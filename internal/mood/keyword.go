package mood

import (
	"context"
	"strings"
)

// Word weights for the local classifier. The polarity scale and the ±0.3
// cutoffs reproduce the sentiment contract the application has always used:
// mean polarity above 0.3 is motivated, below -0.3 is stuck, anything else
// neutral.
var lexicon = map[string]float64{
	"great":       1.0,
	"excellent":   1.0,
	"awesome":     1.0,
	"love":        0.9,
	"excited":     0.9,
	"good":        0.7,
	"progress":    0.7,
	"finished":    0.6,
	"learned":     0.6,
	"done":        0.5,
	"happy":       0.8,
	"productive":  0.8,
	"confident":   0.7,
	"fun":         0.6,
	"easy":        0.4,
	"okay":        0.1,
	"fine":        0.1,
	"hard":        -0.4,
	"difficult":   -0.5,
	"slow":        -0.4,
	"tired":       -0.5,
	"confused":    -0.6,
	"confusing":   -0.6,
	"stuck":       -0.8,
	"frustrated":  -0.9,
	"frustrating": -0.9,
	"failed":      -0.8,
	"failing":     -0.8,
	"lost":        -0.6,
	"terrible":    -1.0,
	"awful":       -1.0,
	"hate":        -0.9,
	"giving":      -0.2,
}

const (
	motivatedThreshold = 0.3
	stuckThreshold     = -0.3
)

// KeywordClassifier scores text against a small sentiment lexicon.
// It never fails and needs no network access.
type KeywordClassifier struct{}

// NewKeywordClassifier creates a new KeywordClassifier.
func NewKeywordClassifier() *KeywordClassifier {
	return &KeywordClassifier{}
}

// Classify returns the mood label for the text. Polarity is the mean weight
// of recognized words; unrecognized words count as zero.
func (c *KeywordClassifier) Classify(_ context.Context, text string) (string, error) {
	words := strings.Fields(strings.ToLower(text))
	if len(words) == 0 {
		return LabelNeutral, nil
	}

	total := 0.0
	for _, word := range words {
		word = strings.Trim(word, ".,!?;:'\"()")
		total += lexicon[word]
	}
	polarity := total / float64(len(words))

	switch {
	case polarity > motivatedThreshold:
		return LabelMotivated, nil
	case polarity < stuckThreshold:
		return LabelStuck, nil
	default:
		return LabelNeutral, nil
	}
}
