package conversation

import (
	"context"
	"strings"
	"time"

	"grocery-assistant/internal/model"
)

// SendMessage trims text, appends it as a user message, classifies it,
// synthesizes a reply and appends that as a bot message. It returns the bot
// message, or false when the trimmed text is empty.
func (e *Engine) SendMessage(ctx context.Context, text string) (model.ChatMessage, bool) {
	content := strings.TrimSpace(text)
	if content == "" {
		return model.ChatMessage{}, false
	}

	e.sendMu.Lock()
	defer e.sendMu.Unlock()

	start := time.Now()
	e.append(model.ChatMessage{
		ID:            e.newID(),
		Content:       content,
		IsUser:        true,
		ActionButtons: []model.ChatActionButton{},
		CreatedAt:     e.now(),
	})

	e.awaiting.Store(true)
	defer e.awaiting.Store(false)

	result := e.classifier.Classify(content)
	replyText, buttons := e.synth.Synthesize(ctx, content, result)

	bot := model.ChatMessage{
		ID:            e.newID(),
		Content:       replyText,
		IsUser:        false,
		ActionButtons: buttons,
		CreatedAt:     e.now(),
	}
	e.append(bot)

	e.l.Info(ctx, LogPrefixSendMessage+": assistant reply",
		"intent", string(result.PrimaryIntent),
		"confidence", result.Confidence,
		"buttons", len(buttons),
		"latency_ms", time.Since(start).Milliseconds(),
	)

	return bot.Clone(), true
}

// ClearMessages empties the conversation.
func (e *Engine) ClearMessages() {
	e.mu.Lock()
	n := len(e.messages)
	e.messages = []model.ChatMessage{}
	e.mu.Unlock()

	e.l.Debugf(context.Background(), "%s: cleared %d message(s)", LogPrefixClearMessages, n)
}

// Messages returns a copy of the conversation.
func (e *Engine) Messages() []model.ChatMessage {
	e.mu.RLock()
	defer e.mu.RUnlock()

	out := make([]model.ChatMessage, len(e.messages))
	for i, m := range e.messages {
		out[i] = m.Clone()
	}
	return out
}

// Len returns the number of messages.
func (e *Engine) Len() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.messages)
}

// State reports whether a send is waiting on its reply.
func (e *Engine) State() State {
	if e.awaiting.Load() {
		return StateAwaitingResponse
	}
	return StateIdle
}

func (e *Engine) append(m model.ChatMessage) {
	m = m.Clone()
	e.mu.Lock()
	e.messages = append(e.messages, m)
	e.mu.Unlock()
}
