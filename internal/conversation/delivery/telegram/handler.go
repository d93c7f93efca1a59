package telegram

import (
	"context"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"grocery-assistant/internal/model"
	pkgLog "grocery-assistant/pkg/log"
	pkgResponse "grocery-assistant/pkg/response"
	pkgTelegram "grocery-assistant/pkg/telegram"
)

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It responds with HTTP 200 immediately and processes the update in the
// background. Messages of one chat are processed in arrival order.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "%s: failed to parse update: %v", LogPrefixHandleWebhook, err)
		pkgResponse.Error(c, err, nil)
		return
	}

	switch {
	case update.CallbackQuery != nil:
		cb := update.CallbackQuery
		go h.run(func(bgCtx context.Context) error { return h.processCallback(bgCtx, cb) })

	case update.Message != nil && update.Message.Chat != nil:
		msg := update.Message
		h.enqueue(msg.Chat.ID, func(bgCtx context.Context) error {
			if err := h.processMessage(bgCtx, msg); err != nil {
				_ = h.bot.SendMessage(bgCtx, msg.Chat.ID, MsgProcessFailed)
				return err
			}
			return nil
		})

	default:
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// enqueue appends fn to the chat's queue, starting a drain goroutine when
// the chat has none.
func (h *handler) enqueue(chatID int64, fn job) {
	h.mu.Lock()
	queue, draining := h.pending[chatID]
	h.pending[chatID] = append(queue, fn)
	h.mu.Unlock()

	if !draining {
		go h.drain(chatID)
	}
}

// drain runs the chat's jobs one at a time and exits once the queue is empty.
func (h *handler) drain(chatID int64) {
	for {
		h.mu.Lock()
		queue := h.pending[chatID]
		if len(queue) == 0 {
			delete(h.pending, chatID)
			h.mu.Unlock()
			return
		}
		next := queue[0]
		h.pending[chatID] = queue[1:]
		h.mu.Unlock()

		h.run(next)
	}
}

// run detaches from the request context, which is cancelled once the
// response is written.
func (h *handler) run(fn job) {
	ctx := context.Background()
	defer func() {
		if r := recover(); r != nil {
			h.l.Errorf(ctx, "%s: panic: %v", LogPrefixHandleWebhook, r)
		}
	}()
	if err := fn(ctx); err != nil {
		h.l.Errorf(ctx, "%s: %v", LogPrefixHandleWebhook, err)
	}
}

// processMessage handles a single Telegram text message.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return nil
	}

	sc := scopeOf(msg.Chat.ID, msg.From)
	ctx = context.WithValue(ctx, pkgLog.SessionIDKey, sc.SessionID)

	switch commandOf(text) {
	case CommandStart:
		return h.bot.SendMessage(ctx, msg.Chat.ID, MsgStart)
	case CommandHelp:
		return h.bot.SendMessage(ctx, msg.Chat.ID, MsgHelp)
	case CommandClear:
		engine, err := h.sessions.Get(ctx, sc.SessionID)
		if err != nil {
			return fmt.Errorf("%s: %w", LogPrefixProcessMessage, err)
		}
		engine.ClearMessages()
		return h.bot.SendMessage(ctx, msg.Chat.ID, MsgCleared)
	}

	engine, err := h.sessions.Get(ctx, sc.SessionID)
	if err != nil {
		return fmt.Errorf("%s: %w", LogPrefixProcessMessage, err)
	}

	bot, ok := engine.SendMessage(ctx, text)
	if !ok {
		return fmt.Errorf("%s: %w", LogPrefixProcessMessage, errNoReply)
	}

	h.l.Debugf(ctx, "%s: user=%s buttons=%d", LogPrefixProcessMessage, sc.Username, len(bot.ActionButtons))
	return h.bot.SendMessageWithKeyboard(ctx, msg.Chat.ID, bot.Content, keyboardOf(bot.ActionButtons))
}

// processCallback acknowledges a pressed action button. Carrying out the
// action belongs to the list, meal-plan and navigation services.
func (h *handler) processCallback(ctx context.Context, cb *pkgTelegram.CallbackQuery) error {
	a, ok := h.catalog.Lookup(cb.Data)
	if !ok {
		return h.bot.AnswerCallbackQuery(ctx, cb.ID, MsgUnknownAction)
	}

	d, _ := h.catalog.Metadata(a)
	h.l.Infof(ctx, "%s: action=%s from=%s", LogPrefixProcessCallback, a, userName(cb.From))
	return h.bot.AnswerCallbackQuery(ctx, cb.ID, fmt.Sprintf(MsgActionQueued, d.Title))
}

// keyboardOf lays buttons out ButtonsPerRow per row with the action id as callback data.
func keyboardOf(buttons []model.ChatActionButton) *pkgTelegram.InlineKeyboardMarkup {
	if len(buttons) == 0 {
		return nil
	}

	kb := &pkgTelegram.InlineKeyboardMarkup{}
	var row []pkgTelegram.InlineKeyboardButton
	for _, b := range buttons {
		data := string(b.Action)
		if len(data) > pkgTelegram.MaxCallbackDataBytes {
			continue
		}
		row = append(row, pkgTelegram.InlineKeyboardButton{Text: b.Title, CallbackData: data})
		if len(row) == ButtonsPerRow {
			kb.InlineKeyboard = append(kb.InlineKeyboard, row)
			row = nil
		}
	}
	if len(row) > 0 {
		kb.InlineKeyboard = append(kb.InlineKeyboard, row)
	}
	return kb
}

// commandOf returns the bot command of text, dropping any @botname suffix.
func commandOf(text string) string {
	if !strings.HasPrefix(text, "/") {
		return ""
	}
	cmd := strings.Fields(text)[0]
	if i := strings.IndexByte(cmd, '@'); i > 0 {
		cmd = cmd[:i]
	}
	return strings.ToLower(cmd)
}

func scopeOf(chatID int64, from *pkgTelegram.User) model.Scope {
	return model.Scope{
		SessionID: fmt.Sprintf("telegram_%d", chatID),
		UserID:    userID(from),
		Username:  userName(from),
		Channel:   "telegram",
	}
}

func userID(u *pkgTelegram.User) string {
	if u == nil {
		return ""
	}
	return fmt.Sprintf("telegram_%d", u.ID)
}

func userName(u *pkgTelegram.User) string {
	if u == nil {
		return ""
	}
	if u.Username != "" {
		return u.Username
	}
	return u.FirstName
}
