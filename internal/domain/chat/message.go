package chat

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// TypingText is the transient placeholder shown while a reply is pending.
const TypingText = "Typing..."

// Message is one bubble of a widget transcript. Typing marks the transient
// placeholder; it never outlives the reply it stands in for.
type Message struct {
	ID        string    `json:"id"`
	Role      Role      `json:"role"`
	Text      string    `json:"text"`
	Typing    bool      `json:"typing,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func NewMessage(role Role, text string) Message {
	return Message{
		ID:        uuid.NewString(),
		Role:      role,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}
}

func NewTypingPlaceholder() Message {
	m := NewMessage(RoleAssistant, TypingText)
	m.Typing = true
	return m
}

// Transcript is the in-memory message list of one widget.
type Transcript []Message

// Without returns the transcript minus the message with the given id.
func (t Transcript) Without(id string) Transcript {
	out := make(Transcript, 0, len(t))
	for _, m := range t {
		if m.ID == id {
			continue
		}
		out = append(out, m)
	}
	return out
}

func (t Transcript) HasTyping() bool {
	for _, m := range t {
		if m.Typing {
			return true
		}
	}
	return false
}

func (t Transcript) Last() (Message, bool) {
	if len(t) == 0 {
		return Message{}, false
	}
	return t[len(t)-1], true
}
