package conversation

import "time"

// Log prefixes
const (
	LogPrefixSendMessage   = "internal.conversation.SendMessage"
	LogPrefixClearMessages = "internal.conversation.ClearMessages"
	LogPrefixRegistry      = "internal.conversation.Registry"
)

// Registry defaults
const (
	DefaultMaxSessions = 1000
	DefaultSessionTTL  = 30 * time.Minute
	MaxSessionIDLength = 128
)
