package textgen

import (
	"context"

	"grocery-assistant/pkg/llmprovider"
)

// Generator produces free text for one of the supported kinds.
// Implementations may be slow or fail; callers bound the wait themselves.
type Generator interface {
	Generate(ctx context.Context, kind Kind, query string) (string, error)
}

// LLM is the subset of llmprovider.Manager the service depends on.
type LLM interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}
