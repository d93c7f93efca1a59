package textgen

import "time"

// Kind selects the system prompt used for a generation.
type Kind string

const (
	KindRecipeSuggestion Kind = "recipeSuggestion"
	KindProductGuidance  Kind = "productGuidance"
	KindGeneralResponse  Kind = "generalResponse"
)

// IsValid reports whether k is a known kind.
func (k Kind) IsValid() bool {
	_, ok := systemPrompts[k]
	return ok
}

// Config tunes caching, call budget and sampling.
type Config struct {
	CacheSize       int
	CacheTTL        time.Duration
	RateLimitPerMin int
	Temperature     float64
	MaxTokens       int
}
