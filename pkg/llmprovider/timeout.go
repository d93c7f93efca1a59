package llmprovider

import (
	"context"
	"errors"
	"time"
)

// timeoutProvider bounds every call of the wrapped provider
type timeoutProvider struct {
	Provider
	timeout time.Duration
}

// WithTimeout wraps p so each GenerateContent call gets its own deadline.
// A non-positive timeout returns p unchanged.
func WithTimeout(p Provider, timeout time.Duration) Provider {
	if timeout <= 0 {
		return p
	}
	return &timeoutProvider{Provider: p, timeout: timeout}
}

func (t *timeoutProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	resp, err := t.Provider.GenerateContent(ctx, req)
	if err != nil && errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return nil, ErrProviderTimeout
	}
	return resp, err
}
