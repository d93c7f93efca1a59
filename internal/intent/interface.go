package intent

import "grocery-assistant/internal/model"

// Classifier maps free text to a ranked intent result. Implementations never
// fail; unrecognized text resolves to the general intent with zero confidence.
type Classifier interface {
	Classify(text string) model.IntentResult
}
