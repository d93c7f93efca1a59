package http

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"grocery-assistant/internal/conversation"
)

// processSendReq binds the send body and the session URI param.
func (h *handler) processSendReq(c *gin.Context) (sendReq, error) {
	var req sendReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, fmt.Errorf("%w: %v", errInvalidBody, err)
	}
	req.SessionID = c.Param("session_id")
	return req, req.validate()
}

// processClassifyReq binds the classify body.
func (h *handler) processClassifyReq(c *gin.Context) (classifyReq, error) {
	var req classifyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, fmt.Errorf("%w: %v", errInvalidBody, err)
	}
	return req, req.validate()
}

// lookup resolves an existing session for the read-only routes. Unknown ids
// report false and are not created.
func (h *handler) lookup(sessionID string) (*conversation.Engine, bool, error) {
	if err := conversation.ValidateSessionID(sessionID); err != nil {
		return nil, false, err
	}
	engine, ok := h.sessions.Lookup(sessionID)
	return engine, ok, nil
}
