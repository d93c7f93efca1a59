package model

// Scope identifies who is talking to the assistant and on which channel.
type Scope struct {
	SessionID string
	UserID    string
	Username  string
	Channel   string // "http", "telegram", "cli"
}
