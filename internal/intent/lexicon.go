package intent

import (
	"fmt"
	"math"
	"strings"

	"grocery-assistant/internal/model"
)

// Entry is one weighted keyword or phrase of a category.
type Entry struct {
	Phrase string  `yaml:"phrase"`
	Weight float64 `yaml:"weight"`
}

type entry struct {
	phrase    string // normalized: lowercase tokens joined by single spaces
	multiword bool
	weight    float64
}

// Lexicon holds the weighted keyword tables for every category. It is
// immutable once built and safe for concurrent use.
type Lexicon struct {
	entries   map[model.IntentCategory][]entry
	maxScores map[model.IntentCategory]float64
}

// NewLexicon validates and normalizes tables. Categories absent from tables
// get an empty entry list and can never score.
func NewLexicon(tables map[model.IntentCategory][]Entry) (*Lexicon, error) {
	lx := &Lexicon{
		entries:   make(map[model.IntentCategory][]entry, len(model.IntentCategories)),
		maxScores: make(map[model.IntentCategory]float64, len(model.IntentCategories)),
	}

	for cat, raw := range tables {
		if !cat.IsValid() {
			return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, cat)
		}
		if len(raw) > MaxEntriesPerCategory {
			return nil, fmt.Errorf("%w: %s has %d (max %d)", ErrTooManyEntries, cat, len(raw), MaxEntriesPerCategory)
		}

		seen := make(map[string]bool, len(raw))
		normalized := make([]entry, 0, len(raw))
		max := 0.0
		for _, e := range raw {
			if e.Weight <= 0 || math.IsNaN(e.Weight) || math.IsInf(e.Weight, 0) {
				return nil, fmt.Errorf("%w: %s/%q weight %v", ErrInvalidWeight, cat, e.Phrase, e.Weight)
			}
			tokens := tokenize(e.Phrase)
			if len(tokens) == 0 {
				return nil, fmt.Errorf("%w: %s/%q", ErrEmptyPhrase, cat, e.Phrase)
			}
			if len(tokens) > MaxPhraseTokens {
				return nil, fmt.Errorf("%w: %s/%q", ErrPhraseTooLong, cat, e.Phrase)
			}

			phrase := strings.Join(tokens, " ")
			// A duplicate would double-count the same evidence.
			if seen[phrase] {
				continue
			}
			seen[phrase] = true

			normalized = append(normalized, entry{
				phrase:    phrase,
				multiword: len(tokens) > 1,
				weight:    e.Weight,
			})
			max += e.Weight
		}

		lx.entries[cat] = normalized
		lx.maxScores[cat] = max
	}

	return lx, nil
}

// MaxScore is the sum of all entry weights of c.
func (lx *Lexicon) MaxScore(c model.IntentCategory) float64 {
	return lx.maxScores[c]
}

// Entries returns a copy of the normalized entries of c.
func (lx *Lexicon) Entries(c model.IntentCategory) []Entry {
	src := lx.entries[c]
	out := make([]Entry, len(src))
	for i, e := range src {
		out[i] = Entry{Phrase: e.phrase, Weight: e.weight}
	}
	return out
}

// rawScore sums the weights of c's entries that match the message.
func (lx *Lexicon) rawScore(c model.IntentCategory, tokenSet map[string]struct{}, text string) float64 {
	score := 0.0
	for _, e := range lx.entries[c] {
		if e.multiword {
			if strings.Contains(text, " "+e.phrase+" ") {
				score += e.weight
			}
			continue
		}
		if _, ok := tokenSet[e.phrase]; ok {
			score += e.weight
		}
	}
	return score
}
