package http

import (
	"github.com/gin-gonic/gin"

	"grocery-assistant/internal/action"
	"grocery-assistant/internal/conversation"
	"grocery-assistant/internal/intent"
	"grocery-assistant/pkg/log"
)

// Handler is the public interface for the assistant HTTP delivery layer.
type Handler interface {
	SendMessage(c *gin.Context)
	ListMessages(c *gin.Context)
	ClearMessages(c *gin.Context)
	ListActions(c *gin.Context)
	Classify(c *gin.Context)
}

type handler struct {
	l          log.Logger
	sessions   *conversation.Registry
	classifier intent.Classifier
	catalog    *action.Catalog
}

// New creates a new HTTP handler for the assistant.
func New(l log.Logger, sessions *conversation.Registry, classifier intent.Classifier, catalog *action.Catalog) *handler {
	return &handler{
		l:          l,
		sessions:   sessions,
		classifier: classifier,
		catalog:    catalog,
	}
}
