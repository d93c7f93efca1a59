package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	assistantHTTP "grocery-assistant/internal/conversation/delivery/http"
)

// setupAssistantDomain builds the assistant HTTP handler and registers
// /api/v1/assistant/... on api.
func (srv HTTPServer) setupAssistantDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := assistantHTTP.New(srv.l, srv.sessions, srv.classifier, srv.catalog)
	assistantHTTP.RegisterRoutes(api.Group("/assistant"), h, srv.mw)

	srv.l.Infof(ctx, "Assistant domain registered")
	return nil
}
