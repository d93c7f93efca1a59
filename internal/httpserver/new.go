package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"grocery-assistant/internal/action"
	"grocery-assistant/internal/conversation"
	tgDelivery "grocery-assistant/internal/conversation/delivery/telegram"
	"grocery-assistant/internal/intent"
	"grocery-assistant/internal/middleware"
	"grocery-assistant/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration
	mw              middleware.Middleware

	// Assistant domain
	sessions   *conversation.Registry
	classifier intent.Classifier
	catalog    *action.Catalog

	// Telegram channel
	telegramHandler tgDelivery.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration
	Middleware      middleware.Middleware

	// Assistant domain
	Sessions   *conversation.Registry
	Classifier intent.Classifier
	Catalog    *action.Catalog

	// Telegram channel (optional)
	TelegramHandler tgDelivery.Handler
}

// New creates a new HTTPServer instance and maps its routes.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	timeout := cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = DefaultShutdownTimeout
	}

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: timeout,
		mw:              cfg.Middleware,
		sessions:        cfg.Sessions,
		classifier:      cfg.Classifier,
		catalog:         cfg.Catalog,
		telegramHandler: cfg.TelegramHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.sessions == nil || srv.classifier == nil || srv.catalog == nil {
		return errors.New("assistant sessions, classifier and catalog are required")
	}
	return nil
}

// Handler exposes the routed engine, mainly for tests.
func (srv HTTPServer) Handler() *gin.Engine {
	return srv.gin
}
