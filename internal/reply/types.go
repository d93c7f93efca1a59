package reply

import (
	"context"
	"time"

	"grocery-assistant/internal/model"
)

// Config tunes the synthesizer.
type Config struct {
	// EnrichmentTimeout bounds the wait on the text generator.
	EnrichmentTimeout time.Duration
}

// input is what every handler sees.
type input struct {
	text   string
	tokens map[string]struct{}
	result model.IntentResult
}

func (in input) has(words ...string) bool {
	for _, w := range words {
		if _, ok := in.tokens[w]; ok {
			return true
		}
	}
	return false
}

type handler func(ctx context.Context, in input) (string, []model.ChatActionButton)

// diet links a dietary keyword set to its filter action.
type diet struct {
	name    string
	action  model.ChatAction
	keyword []string
}
