// Package chat implements the session-scoped support conversation.
// Replies are canned: each sent message schedules one auto-reply after
// a fixed delay. Two concurrent sends may interleave their replies in
// wall-clock order; no ordering guarantee is made between them.
package chat

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	supportSender = "Suporte"
	greeting      = "Olá! Como posso ajudá-lo hoje?"
	autoReply     = "Obrigado pela sua mensagem! Nossa equipe irá responder em breve."
)

// ErrEmptyMessage rejects blank or whitespace-only messages.
var ErrEmptyMessage = errors.New("empty message")

// Message is one chat entry.
type Message struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Own       bool      `json:"own"`
	Sender    string    `json:"sender,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Store holds the session conversation.
type Store struct {
	mu         sync.RWMutex
	messages   []Message
	replyDelay time.Duration
	now        func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock pins the message clock.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithReplyDelay overrides the auto-reply delay.
func WithReplyDelay(d time.Duration) Option {
	return func(s *Store) { s.replyDelay = d }
}

// NewStore builds a conversation seeded with the support greeting,
// timestamped five minutes before session start.
func NewStore(opts ...Option) *Store {
	s := &Store{
		replyDelay: time.Second,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.messages = []Message{{
		ID:        uuid.NewString(),
		Text:      greeting,
		Own:       false,
		Sender:    supportSender,
		Timestamp: s.now().Add(-5 * time.Minute),
	}}
	return s
}

// Messages returns the conversation so far, in append order.
func (s *Store) Messages() []Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// Send appends an operator message and schedules the auto-reply. The
// scheduled reply is one-shot and has no cancellation.
func (s *Store) Send(text string) (Message, error) {
	if strings.TrimSpace(text) == "" {
		return Message{}, ErrEmptyMessage
	}

	msg := Message{
		ID:        uuid.NewString(),
		Text:      text,
		Own:       true,
		Timestamp: s.now(),
	}

	s.mu.Lock()
	s.messages = append(s.messages, msg)
	s.mu.Unlock()

	time.AfterFunc(s.replyDelay, func() {
		reply := Message{
			ID:        uuid.NewString(),
			Text:      autoReply,
			Own:       false,
			Sender:    supportSender,
			Timestamp: s.now(),
		}
		s.mu.Lock()
		s.messages = append(s.messages, reply)
		s.mu.Unlock()
	})

	return msg, nil
}
