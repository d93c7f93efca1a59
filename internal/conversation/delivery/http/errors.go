package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"grocery-assistant/internal/conversation"
	"grocery-assistant/pkg/response"
)

var (
	errInvalidBody = errors.New("invalid request body")
	errTextTooLong = errors.New("text is too long")
)

// writeError maps domain errors onto responses. Unknown errors are 500s.
func (h *handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, conversation.ErrInvalidSessionID),
		errors.Is(err, errInvalidBody),
		errors.Is(err, errTextTooLong):
		response.Error(c, err, nil)
	default:
		h.l.Errorf(c.Request.Context(), "internal.conversation.delivery.http: %v", err)
		response.InternalError(c, err)
	}
}
