package textgen

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"grocery-assistant/pkg/log"
)

// Service is a Generator backed by an LLM provider chain. Replies are cached
// per (kind, normalized query) and uncached calls draw from a token bucket.
type Service struct {
	llm     LLM
	cfg     Config
	cache   *expirable.LRU[string, string]
	limiter *rate.Limiter
	l       log.Logger
}

var _ Generator = (*Service)(nil)

// New creates a Service. Zero Config fields take the package defaults.
func New(llm LLM, cfg Config, l log.Logger) *Service {
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = DefaultCacheSize
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = DefaultCacheTTL
	}
	if cfg.RateLimitPerMin <= 0 {
		cfg.RateLimitPerMin = DefaultRateLimitPerMin
	}
	if cfg.Temperature <= 0 {
		cfg.Temperature = DefaultTemperature
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = DefaultMaxTokens
	}

	return &Service{
		llm:     llm,
		cfg:     cfg,
		cache:   expirable.NewLRU[string, string](cfg.CacheSize, nil, cfg.CacheTTL),
		limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(cfg.RateLimitPerMin)), cfg.RateLimitPerMin),
		l:       l,
	}
}
