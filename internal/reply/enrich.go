package reply

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"grocery-assistant/internal/model"
	"grocery-assistant/internal/textgen"
)

type generated struct {
	text string
	err  error
}

// enrichOr asks the generator for a reply and waits at most s.timeout.
// Any failure returns fallback.
func (s *ResponseSynthesizer) enrichOr(ctx context.Context, kind textgen.Kind, category model.IntentCategory, text, fallback string) string {
	if s.gen == nil {
		return fallback
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	// Buffered so the goroutine never blocks after a timeout.
	ch := make(chan generated, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				ch <- generated{err: fmt.Errorf("generator panic: %v", r)}
			}
		}()
		out, err := s.gen.Generate(ctx, kind, text)
		ch <- generated{text: out, err: err}
	}()

	select {
	case res := <-ch:
		if res.err != nil {
			if errors.Is(res.err, textgen.ErrRateLimited) {
				s.l.Debugf(ctx, "%s: kind=%s rate limited, using fallback", LogPrefixEnrich, kind)
			} else {
				s.l.Warnf(ctx, "%s: kind=%s: %v", LogPrefixEnrich, kind, res.err)
			}
			return fallback
		}
		out := strings.TrimSpace(res.text)
		if out == "" {
			return fallback
		}
		return withMarker(category, out)

	case <-ctx.Done():
		s.l.Warnf(ctx, "%s: kind=%s timed out after %s", LogPrefixEnrich, kind, s.timeout)
		return fallback
	}
}

// withMarker prefixes the category lead-in when reply lacks every marker word.
func withMarker(category model.IntentCategory, reply string) string {
	words := markers[category]
	if len(words) == 0 || containsAny(reply, words) {
		return reply
	}
	return leadIns[category] + reply
}

func containsAny(s string, words []string) bool {
	s = strings.ToLower(s)
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
