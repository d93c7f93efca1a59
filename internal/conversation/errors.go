package conversation

import "errors"

var ErrInvalidSessionID = errors.New("conversation: invalid session id")
