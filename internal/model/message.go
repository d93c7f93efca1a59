package model

import "time"

// ChatMessage is one entry of a conversation. Values are never mutated after
// construction; ActionButtons is copied on the way in and out of the engine.
type ChatMessage struct {
	ID            string             `json:"id"`
	Content       string             `json:"content"`
	IsUser        bool               `json:"is_user"`
	ActionButtons []ChatActionButton `json:"action_buttons"`
	CreatedAt     time.Time          `json:"created_at"`
}

// Clone returns a copy that shares no slice storage with m.
func (m ChatMessage) Clone() ChatMessage {
	c := m
	c.ActionButtons = make([]ChatActionButton, len(m.ActionButtons))
	copy(c.ActionButtons, m.ActionButtons)
	return c
}
