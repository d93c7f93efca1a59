package http

import (
	"unicode/utf8"

	"grocery-assistant/internal/action"
	"grocery-assistant/internal/conversation"
	"grocery-assistant/internal/model"
	"grocery-assistant/pkg/response"
)

// MaxTextRunes bounds a single user message.
const MaxTextRunes = 4000

// --- Request DTOs ---

type sendReq struct {
	SessionID string `json:"-"`
	Text      string `json:"text"`
}

func (r sendReq) validate() error {
	if err := conversation.ValidateSessionID(r.SessionID); err != nil {
		return err
	}
	if utf8.RuneCountInString(r.Text) > MaxTextRunes {
		return errTextTooLong
	}
	return nil
}

type classifyReq struct {
	Text string `json:"text"`
}

func (r classifyReq) validate() error {
	if utf8.RuneCountInString(r.Text) > MaxTextRunes {
		return errTextTooLong
	}
	return nil
}

// --- Response DTOs ---

type buttonResp struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Action string `json:"action"`
	Icon   string `json:"icon"`
}

type messageResp struct {
	ID            string            `json:"id"`
	Content       string            `json:"content"`
	IsUser        bool              `json:"is_user"`
	ActionButtons []buttonResp      `json:"action_buttons"`
	CreatedAt     response.DateTime `json:"created_at"`
}

func newMessageResp(m model.ChatMessage) messageResp {
	buttons := make([]buttonResp, len(m.ActionButtons))
	for i, b := range m.ActionButtons {
		buttons[i] = buttonResp{
			ID:     b.ID,
			Title:  b.Title,
			Action: string(b.Action),
			Icon:   b.Icon,
		}
	}
	return messageResp{
		ID:            m.ID,
		Content:       m.Content,
		IsUser:        m.IsUser,
		ActionButtons: buttons,
		CreatedAt:     response.DateTime(m.CreatedAt),
	}
}

type messagesResp struct {
	SessionID string        `json:"session_id"`
	State     string        `json:"state"`
	Sent      bool          `json:"sent"`
	Count     int           `json:"count"`
	Messages  []messageResp `json:"messages"`
}

func newMessagesResp(sessionID string, e conversation.Conversation, sent bool) messagesResp {
	msgs := e.Messages()
	out := make([]messageResp, len(msgs))
	for i, m := range msgs {
		out[i] = newMessageResp(m)
	}
	return messagesResp{
		SessionID: sessionID,
		State:     string(e.State()),
		Sent:      sent,
		Count:     len(out),
		Messages:  out,
	}
}

func emptyMessagesResp(sessionID string) messagesResp {
	return messagesResp{
		SessionID: sessionID,
		State:     string(conversation.StateIdle),
		Messages:  []messageResp{},
	}
}

type actionResp struct {
	ID     string `json:"id"`
	Family string `json:"family"`
	Title  string `json:"title"`
	Icon   string `json:"icon"`
}

type actionsResp struct {
	Actions []actionResp `json:"actions"`
}

func newActionsResp(descriptors []action.Descriptor) actionsResp {
	out := make([]actionResp, len(descriptors))
	for i, d := range descriptors {
		out[i] = actionResp{
			ID:     string(d.Action),
			Family: string(d.Family),
			Title:  d.Title,
			Icon:   d.Icon,
		}
	}
	return actionsResp{Actions: out}
}

type scoredResp struct {
	Intent string  `json:"intent"`
	Score  float64 `json:"score"`
}

type classifyResp struct {
	PrimaryIntent    string       `json:"primary_intent"`
	Confidence       float64      `json:"confidence"`
	SecondaryIntents []scoredResp `json:"secondary_intents"`
}

func newClassifyResp(r model.IntentResult) classifyResp {
	secondary := make([]scoredResp, len(r.SecondaryIntents))
	for i, s := range r.SecondaryIntents {
		secondary[i] = scoredResp{Intent: string(s.Intent), Score: s.Score}
	}
	return classifyResp{
		PrimaryIntent:    string(r.PrimaryIntent),
		Confidence:       r.Confidence,
		SecondaryIntents: secondary,
	}
}
