package reply

import (
	"context"

	"grocery-assistant/internal/model"
)

// Synthesizer turns a classified message into a reply and its action buttons.
// It never fails: enrichment problems resolve to a canned reply.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string, result model.IntentResult) (string, []model.ChatActionButton)
}
