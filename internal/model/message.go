package model

import (
	"time"

	"github.com/google/uuid"
)

type SenderType string

const (
	SenderUser SenderType = "user"
	SenderAI   SenderType = "ai"
	SenderRSS  SenderType = "rss"
)

// ThinkingSentinel is the content of a streaming placeholder before the
// first delta arrives.
const ThinkingSentinel = "<thinking>"

type MessageList []Message

type Message struct {
	ID              uuid.UUID  `db:"id" json:"id"`
	Content         string     `db:"content" json:"content"`
	SenderType      SenderType `db:"sender_type" json:"sender_type"`
	SenderID        *uuid.UUID `db:"sender_id" json:"sender_id"`
	SenderName      string     `db:"sender_name" json:"sender_name"`
	CreatedAt       time.Time  `db:"created_at" json:"created_at"`
	Metadata        Metadata   `db:"metadata" json:"metadata"`
	QuotedMessageID *uuid.UUID `db:"quoted_message_id" json:"quoted_message_id"`
}

// InFlight reports whether the message is a placeholder still being
// generated or a failed reply.
func (m Message) InFlight() bool {
	return m.Metadata.Loading() || m.Metadata.Failed()
}

type MessageUpdate struct {
	Content  *string
	Metadata Metadata
}

type MessageFilter struct {
	SenderTypes     []SenderType
	ExcludeInFlight bool
}
