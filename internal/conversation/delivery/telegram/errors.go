package telegram

import "errors"

var errNoReply = errors.New("conversation produced no reply")
