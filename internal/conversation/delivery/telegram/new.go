package telegram

import (
	"context"
	"sync"

	"github.com/gin-gonic/gin"

	"grocery-assistant/internal/action"
	"grocery-assistant/internal/conversation"
	pkgLog "grocery-assistant/pkg/log"
	pkgTelegram "grocery-assistant/pkg/telegram"
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

// Messenger is the subset of the Bot API the handler uses.
type Messenger interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
	SendMessageWithKeyboard(ctx context.Context, chatID int64, text string, keyboard *pkgTelegram.InlineKeyboardMarkup) error
	AnswerCallbackQuery(ctx context.Context, callbackQueryID, text string) error
}

type handler struct {
	l        pkgLog.Logger
	bot      Messenger
	sessions *conversation.Registry
	catalog  *action.Catalog

	// pending holds the queued jobs of each chat; a chat has a key while
	// its drain goroutine runs.
	mu      sync.Mutex
	pending map[int64][]job
}

type job func(ctx context.Context) error

// New creates a new Telegram delivery handler.
func New(l pkgLog.Logger, bot Messenger, sessions *conversation.Registry, catalog *action.Catalog) Handler {
	return &handler{
		l:        l,
		bot:      bot,
		sessions: sessions,
		catalog:  catalog,
		pending:  make(map[int64][]job),
	}
}
