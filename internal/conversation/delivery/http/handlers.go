package http

import (
	"context"

	"github.com/gin-gonic/gin"

	"grocery-assistant/pkg/log"
	"grocery-assistant/pkg/response"
)

// SendMessage godoc
// @Summary     Send a message to the assistant
// @Description Appends the user message and the assistant's reply to the session. Blank text is ignored and the unchanged history is returned.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       session_id path string  true "Session ID"
// @Param       body       body sendReq true "Message"
// @Success     200 {object} messagesResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Router      /api/v1/assistant/sessions/{session_id}/messages [POST]
func (h *handler) SendMessage(c *gin.Context) {
	req, err := h.processSendReq(c)
	if err != nil {
		h.writeError(c, err)
		return
	}

	ctx := context.WithValue(c.Request.Context(), log.SessionIDKey, req.SessionID)
	engine, err := h.sessions.Get(ctx, req.SessionID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	_, sent := engine.SendMessage(ctx, req.Text)
	response.OK(c, newMessagesResp(req.SessionID, engine, sent))
}

// ListMessages godoc
// @Summary     List session messages
// @Description Returns the conversation of a session in insertion order. An unknown session reads as empty and is not created.
// @Tags        Assistant
// @Produce     json
// @Param       session_id path string true "Session ID"
// @Success     200 {object} messagesResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/assistant/sessions/{session_id}/messages [GET]
func (h *handler) ListMessages(c *gin.Context) {
	sessionID := c.Param("session_id")
	engine, ok, err := h.lookup(sessionID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	if !ok {
		response.OK(c, emptyMessagesResp(sessionID))
		return
	}

	response.OK(c, newMessagesResp(sessionID, engine, false))
}

// ClearMessages godoc
// @Summary     Clear session messages
// @Description Empties the conversation. A send still in flight appends its reply once done. An unknown session is not created.
// @Tags        Assistant
// @Produce     json
// @Param       session_id path string true "Session ID"
// @Success     200 {object} messagesResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/assistant/sessions/{session_id}/messages [DELETE]
func (h *handler) ClearMessages(c *gin.Context) {
	sessionID := c.Param("session_id")
	engine, ok, err := h.lookup(sessionID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	if !ok {
		response.OK(c, emptyMessagesResp(sessionID))
		return
	}

	engine.ClearMessages()
	response.OK(c, newMessagesResp(sessionID, engine, false))
}

// ListActions godoc
// @Summary     List dispatchable actions
// @Description Returns every action identifier with its family and display metadata.
// @Tags        Assistant
// @Produce     json
// @Success     200 {object} actionsResp
// @Router      /api/v1/assistant/actions [GET]
func (h *handler) ListActions(c *gin.Context) {
	response.OK(c, newActionsResp(h.catalog.Descriptors()))
}

// Classify godoc
// @Summary     Classify text
// @Description Returns the ranked intent result for a text without touching any session. Useful when tuning the lexicon.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body classifyReq true "Text"
// @Success     200 {object} classifyResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/assistant/classify [POST]
func (h *handler) Classify(c *gin.Context) {
	req, err := h.processClassifyReq(c)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.OK(c, newClassifyResp(h.classifier.Classify(req.Text)))
}
