package screens

import (
	"context"
	"github.com/asaskevich/EventBus"
	"github.com/maxaizer/career-bot/internal/domain/events"
	"github.com/maxaizer/career-bot/internal/domain/models"
	"github.com/maxaizer/career-bot/internal/metrics"
	"github.com/maxaizer/career-bot/internal/state"
	log "github.com/sirupsen/logrus"
	"strings"
	"sync"
	"time"
	"unicode/utf8"
)

const (
	Greeting           = "Hello! I'm your AI career assistant. How can I help you today?"
	MaxChatInputLength = 500
)

type ChatState string

const (
	ChatIdle    ChatState = "idle"
	ChatPending ChatState = "pending"
)

// Chat is the assistant conversation. Every accepted submission schedules its own
// reply, so several replies may be outstanding at once.
type Chat struct {
	mu        sync.Mutex
	owner     Owner
	responder Responder
	bus       EventBus.Bus
	ids       state.IDGenerator
	now       func() time.Time
	delay     time.Duration
	messages  []models.ChatMessage
	pending   int
	closed    bool
	lifetime  *lifetime
}

func NewChat(owner Owner, responder Responder, bus EventBus.Bus, options Options) *Chat {
	options.setDefaults()
	c := &Chat{
		owner:     owner,
		responder: responder,
		bus:       bus,
		ids:       options.IDs,
		now:       options.Now,
		delay:     options.ChatReplyDelay,
		lifetime:  newLifetime(),
	}
	c.messages = []models.ChatMessage{c.newMessage(Greeting, models.SenderBot)}
	return c
}

func (c *Chat) Route() Route {
	return RouteChat
}

// Submit appends the trimmed text as a user message and schedules the reply.
// Blank input is ignored and reported as false.
func (c *Chat) Submit(text string) bool {

	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}
	if utf8.RuneCountInString(text) > MaxChatInputLength {
		text = string([]rune(text)[:MaxChatInputLength])
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return false
	}

	c.messages = append(c.messages, c.newMessage(text, models.SenderUser))
	if c.lifetime.after(c.delay, func(ctx context.Context) { c.reply(ctx, text) }) {
		c.pending++
	}
	metrics.ScreenOperationsCounter.WithLabelValues(string(RouteChat), "submit").Inc()
	return true
}

func (c *Chat) reply(ctx context.Context, prompt string) {

	text, err := c.responder.Respond(ctx, prompt)

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.pending--
	if err != nil {
		c.mu.Unlock()
		log.Errorf("failed to produce chat reply: %v", err)
		return
	}
	message := c.newMessage(text, models.SenderBot)
	c.messages = append(c.messages, message)
	c.mu.Unlock()

	metrics.ChatRepliesCounter.Inc()
	c.bus.Publish(events.ChatRepliedTopic, events.ChatReplied{
		UserID:  c.owner.UserID,
		ChatID:  c.owner.ChatID,
		Message: message,
	})
}

func (c *Chat) Messages() []models.ChatMessage {
	c.mu.Lock()
	defer c.mu.Unlock()
	messages := make([]models.ChatMessage, len(c.messages))
	copy(messages, c.messages)
	return messages
}

func (c *Chat) State() ChatState {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pending > 0 {
		return ChatPending
	}
	return ChatIdle
}

func (c *Chat) PendingReplies() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending
}

func (c *Chat) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	c.pending = 0
	c.lifetime.close()
}

// newMessage keeps timestamps strictly increasing even when the clock does not move.
func (c *Chat) newMessage(text string, sender models.Sender) models.ChatMessage {
	timestamp := c.now()
	if n := len(c.messages); n > 0 && !timestamp.After(c.messages[n-1].Timestamp) {
		timestamp = c.messages[n-1].Timestamp.Add(time.Nanosecond)
	}
	return models.ChatMessage{ID: c.ids(), Text: text, Sender: sender, Timestamp: timestamp}
}
