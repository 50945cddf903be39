// Package ledger keeps the ordered conversation with the guessing agent: one
// system message first, then alternating user/assistant pairs. The only
// mutation beyond append is an explicit rollback, used to erase the
// (prompt, guess) pair of a guess the game page refused.
package ledger

import (
	"errors"
	"fmt"
)

// Role tags a message's author.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one entry in the conversation.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Exchange is one (user prompt, assistant guess) turn, reconstructed by
// positional zip of the user and assistant messages.
type Exchange struct {
	Prompt Message
	Guess  Message
}

var (
	// ErrInvalidRollback is returned when a rollback count is out of range.
	ErrInvalidRollback = errors.New("ledger: invalid rollback count")
	// ErrNoSystemMessage is returned when the ledger holds no system message.
	ErrNoSystemMessage = errors.New("ledger: no system message")
)

// Ledger is an append-only message log with truncating rollback. Owned by a
// single turn controller for the duration of one game; not safe for
// concurrent use and not intended for it.
type Ledger struct {
	messages []Message
}

// New returns a ledger seeded with the given system prompt.
func New(systemPrompt string) *Ledger {
	return &Ledger{messages: []Message{{Role: RoleSystem, Content: systemPrompt}}}
}

// FromMessages rebuilds a ledger from a persisted transcript.
func FromMessages(messages []Message) *Ledger {
	msgs := make([]Message, len(messages))
	copy(msgs, messages)
	return &Ledger{messages: msgs}
}

// Append adds a message to the end of the log.
func (l *Ledger) Append(role Role, content string) {
	l.messages = append(l.messages, Message{Role: role, Content: content})
}

// Len returns the number of messages.
func (l *Ledger) Len() int {
	return len(l.messages)
}

// Messages returns a copy of the log in order.
func (l *Ledger) Messages() []Message {
	out := make([]Message, len(l.messages))
	copy(out, l.messages)
	return out
}

// Rollback removes exactly the last n messages. It is a pure truncation, not
// an edit replay. n must be positive and no larger than the current length.
func (l *Ledger) Rollback(n int) error {
	if n <= 0 || n > len(l.messages) {
		return fmt.Errorf("%w: %d of %d", ErrInvalidRollback, n, len(l.messages))
	}
	l.messages = l.messages[:len(l.messages)-n]
	return nil
}

// SystemMessage returns the first system-tagged message.
func (l *Ledger) SystemMessage() (Message, error) {
	for _, m := range l.messages {
		if m.Role == RoleSystem {
			return m, nil
		}
	}
	return Message{}, ErrNoSystemMessage
}

// FilterByRole returns the messages with the given role, in order.
func (l *Ledger) FilterByRole(role Role) []Message {
	var out []Message
	for _, m := range l.messages {
		if m.Role == role {
			out = append(out, m)
		}
	}
	return out
}

// Exchanges zips user messages with assistant messages by position. A
// trailing user prompt with no reply is dropped.
func (l *Ledger) Exchanges() []Exchange {
	users := l.FilterByRole(RoleUser)
	assistants := l.FilterByRole(RoleAssistant)
	n := len(users)
	if len(assistants) < n {
		n = len(assistants)
	}
	out := make([]Exchange, n)
	for i := 0; i < n; i++ {
		out[i] = Exchange{Prompt: users[i], Guess: assistants[i]}
	}
	return out
}
