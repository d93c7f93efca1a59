package reply

import "errors"

var ErrMissingHandler = errors.New("reply: no handler for intent")
