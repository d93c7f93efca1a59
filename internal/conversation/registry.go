package conversation

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"grocery-assistant/pkg/log"
)

// Registry hands out one Engine per session id. Idle sessions expire and the
// least recently used ones are evicted past MaxSessions; a returning user
// then starts with an empty conversation.
type Registry struct {
	mu      sync.Mutex
	engines *expirable.LRU[string, *Engine]
	factory func() *Engine
	l       log.Logger
}

// NewRegistry creates a registry building engines with factory.
func NewRegistry(cfg RegistryConfig, factory func() *Engine, l log.Logger) *Registry {
	if cfg.MaxSessions <= 0 {
		cfg.MaxSessions = DefaultMaxSessions
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = DefaultSessionTTL
	}

	onEvict := func(id string, _ *Engine) {
		l.Debugf(context.Background(), "%s: session %s evicted", LogPrefixRegistry, id)
	}

	return &Registry{
		engines: expirable.NewLRU[string, *Engine](cfg.MaxSessions, onEvict, cfg.SessionTTL),
		factory: factory,
		l:       l,
	}
}

// Get returns the engine of sessionID, creating it on first use.
func (r *Registry) Get(ctx context.Context, sessionID string) (*Engine, error) {
	if err := ValidateSessionID(sessionID); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if e, ok := r.engines.Get(sessionID); ok {
		return e, nil
	}

	e := r.factory()
	r.engines.Add(sessionID, e)
	r.l.Debugf(ctx, "%s: session %s created", LogPrefixRegistry, sessionID)
	return e, nil
}

// Lookup returns the engine of sessionID if it is live, refreshing its
// recency. It never creates one.
func (r *Registry) Lookup(sessionID string) (*Engine, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.engines.Get(sessionID)
}

// Peek returns the engine of sessionID without creating or refreshing it.
func (r *Registry) Peek(sessionID string) (*Engine, bool) {
	return r.engines.Peek(sessionID)
}

// Remove drops a session. It reports whether the session existed.
func (r *Registry) Remove(sessionID string) bool {
	return r.engines.Remove(sessionID)
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	return r.engines.Len()
}

// ValidateSessionID rejects blank, overlong or whitespace-bearing ids.
func ValidateSessionID(id string) error {
	switch {
	case strings.TrimSpace(id) == "":
		return fmt.Errorf("%w: empty", ErrInvalidSessionID)
	case len(id) > MaxSessionIDLength:
		return fmt.Errorf("%w: longer than %d bytes", ErrInvalidSessionID, MaxSessionIDLength)
	case strings.ContainsAny(id, " \t\r\n"):
		return fmt.Errorf("%w: contains whitespace", ErrInvalidSessionID)
	}
	return nil
}
