package textgen

import (
	"context"
	"fmt"
	"strings"

	"grocery-assistant/pkg/llmprovider"
)

// Generate returns a reply for query using the system prompt of kind.
func (s *Service) Generate(ctx context.Context, kind Kind, query string) (string, error) {
	system, ok := systemPrompts[kind]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}

	query = normalizeQuery(query)
	if query == "" {
		return "", ErrEmptyQuery
	}

	key := string(kind) + "|" + strings.ToLower(query)
	if cached, ok := s.cache.Get(key); ok {
		s.l.Debugf(ctx, "%s: cache hit kind=%s", LogPrefixGenerate, kind)
		return cached, nil
	}

	if !s.limiter.Allow() {
		s.l.Warnf(ctx, "%s: rate limited kind=%s", LogPrefixGenerate, kind)
		return "", ErrRateLimited
	}

	resp, err := s.llm.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: system,
		Messages:          llmprovider.UserMessage(query),
		Temperature:       s.cfg.Temperature,
		MaxTokens:         s.cfg.MaxTokens,
	})
	if err != nil {
		s.l.Warnf(ctx, "%s: kind=%s: %v", LogPrefixGenerate, kind, err)
		return "", fmt.Errorf("%s: %w", LogPrefixGenerate, err)
	}

	text := ""
	if resp != nil {
		text = strings.TrimSpace(resp.Text)
	}
	if text == "" {
		return "", ErrEmptyResponse
	}

	s.cache.Add(key, text)
	return text, nil
}

// normalizeQuery collapses whitespace and truncates to MaxQueryRunes.
func normalizeQuery(q string) string {
	q = strings.Join(strings.Fields(q), " ")
	if r := []rune(q); len(r) > MaxQueryRunes {
		q = string(r[:MaxQueryRunes])
	}
	return q
}
