package conversation

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"grocery-assistant/internal/intent"
	"grocery-assistant/internal/model"
	"grocery-assistant/internal/reply"
	"grocery-assistant/pkg/log"
)

// Engine owns one conversation. Sends are serialized by sendMu for the whole
// user-append, synthesize, bot-append cycle; the history has its own lock so
// readers and ClearMessages never wait on a send.
type Engine struct {
	classifier intent.Classifier
	synth      reply.Synthesizer
	l          log.Logger
	now        func() time.Time
	newID      func() string

	sendMu   sync.Mutex
	awaiting atomic.Bool

	mu       sync.RWMutex
	messages []model.ChatMessage
}

var _ Conversation = (*Engine)(nil)

// New creates an engine with an empty conversation.
func New(classifier intent.Classifier, synth reply.Synthesizer, l log.Logger) *Engine {
	return &Engine{
		classifier: classifier,
		synth:      synth,
		l:          l,
		now:        time.Now,
		newID:      uuid.NewString,
		messages:   []model.ChatMessage{},
	}
}
