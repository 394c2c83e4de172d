package model

import (
	"time"

	"github.com/google/uuid"
)

// Sender identifies who a message in the display list belongs to.
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// Message represents one entry in the display list. Messages are never
// mutated after creation; surfaces only append or remove them.
type Message struct {
	ID        string
	Text      string
	Sender    Sender
	Failed    bool // Bot message reporting a failed exchange
	Timestamp time.Time
}

// NewMessage creates a message with a fresh id and the current time.
func NewMessage(text string, sender Sender) Message {
	return Message{
		ID:        uuid.NewString(),
		Text:      text,
		Sender:    sender,
		Timestamp: time.Now(),
	}
}

// NewFailureMessage creates the bot message shown in place of a reply when
// an exchange fails.
func NewFailureMessage(err error) Message {
	msg := NewMessage(FailureText(err), SenderBot)
	msg.Failed = true
	return msg
}
