package textgen

import "errors"

var (
	ErrUnknownKind   = errors.New("textgen: unknown kind")
	ErrEmptyQuery    = errors.New("textgen: empty query")
	ErrRateLimited   = errors.New("textgen: call budget exhausted")
	ErrEmptyResponse = errors.New("textgen: empty response")
)
