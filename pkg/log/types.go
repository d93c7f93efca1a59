package log

// ZapConfig configures the zap-backed logger.
type ZapConfig struct {
	Level        string
	Mode         string // "production" or "debug"
	Encoding     string // "json" or "console"
	ColorEnabled bool
}

// ctxKey is the context key type for request-scoped log fields.
type ctxKey string

const (
	// TraceIDKey carries a request trace id through context.
	TraceIDKey ctxKey = "trace_id"
	// SessionIDKey carries the conversation session id through context.
	SessionIDKey ctxKey = "session_id"
)

const (
	ModeProduction = "production"
	ModeDebug      = "debug"

	EncodingJSON    = "json"
	EncodingConsole = "console"
)
