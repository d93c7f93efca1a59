package conversation

import "time"

// State of a conversation.
type State string

const (
	StateIdle             State = "idle"
	StateAwaitingResponse State = "awaitingResponse"
)

// RegistryConfig bounds the number and lifetime of live sessions.
type RegistryConfig struct {
	MaxSessions int
	SessionTTL  time.Duration
}
