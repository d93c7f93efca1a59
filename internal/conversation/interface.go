package conversation

import (
	"context"

	"grocery-assistant/internal/model"
)

// Conversation is the message history of one chat plus the operations that
// may change it.
type Conversation interface {
	// SendMessage appends the user message and the synthesized bot reply.
	// Blank text is a no-op and reports false.
	SendMessage(ctx context.Context, text string) (model.ChatMessage, bool)

	// ClearMessages empties the history. It does not wait for, or cancel,
	// a send in flight.
	ClearMessages()

	// Messages returns a copy of the history in insertion order.
	Messages() []model.ChatMessage

	// State reports whether a reply is being synthesized.
	State() State
}
