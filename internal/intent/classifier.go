package intent

import (
	"sort"

	"grocery-assistant/internal/model"
)

// KeywordClassifier scores text against a Lexicon with additive weights and
// per-category normalization.
type KeywordClassifier struct {
	lexicon *Lexicon
}

var _ Classifier = (*KeywordClassifier)(nil)

// New returns a classifier over lx. A nil lexicon selects the built-in one.
func New(lx *Lexicon) *KeywordClassifier {
	if lx == nil {
		lx = DefaultLexicon()
	}
	return &KeywordClassifier{lexicon: lx}
}

// Classify ranks every category for text. Empty or unrecognized text yields
// the general intent with zero confidence.
func (c *KeywordClassifier) Classify(text string) model.IntentResult {
	tokens := tokenize(text)
	if len(tokens) == 0 {
		return fallbackResult()
	}

	tokenSet := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		tokenSet[t] = struct{}{}
	}
	normalized := normalizedText(tokens)

	scores := make([]model.ScoredIntent, 0, len(model.IntentCategories))
	for _, cat := range model.IntentCategories {
		scores = append(scores, model.ScoredIntent{
			Intent: cat,
			Score:  c.normalize(cat, c.lexicon.rawScore(cat, tokenSet, normalized)),
		})
	}

	// Stable sort keeps declaration order among equal scores.
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Score > scores[j].Score
	})

	if scores[0].Score == 0 {
		return fallbackResult()
	}

	result := model.IntentResult{
		PrimaryIntent:    scores[0].Intent,
		Confidence:       scores[0].Score,
		SecondaryIntents: []model.ScoredIntent{},
	}
	for _, s := range scores[1:] {
		if s.Score > 0 {
			result.SecondaryIntents = append(result.SecondaryIntents, s)
		}
	}
	return result
}

func (c *KeywordClassifier) normalize(cat model.IntentCategory, raw float64) float64 {
	max := c.lexicon.MaxScore(cat)
	if max <= 0 || raw <= 0 {
		return 0
	}
	score := raw / max
	if score > 1 {
		return 1
	}
	return score
}

func fallbackResult() model.IntentResult {
	return model.IntentResult{
		PrimaryIntent:    model.IntentGeneral,
		Confidence:       0,
		SecondaryIntents: []model.ScoredIntent{},
	}
}
