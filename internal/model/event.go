package model

import "github.com/google/uuid"

type EventType string

const (
	EventUser       EventType = "user"
	EventAIStart    EventType = "ai_start"
	EventAIChunk    EventType = "ai_chunk"
	EventAIComplete EventType = "ai_complete"
	EventError      EventType = "error"
)

// Event is one record of a fanout stream. BotID and MessageID are the
// routing keys for a multiplexing client; position carries no meaning
// across bots.
type Event struct {
	Type      EventType  `json:"type"`
	BotID     *uuid.UUID `json:"botId,omitempty"`
	BotName   string     `json:"botName,omitempty"`
	MessageID *uuid.UUID `json:"messageId,omitempty"`
	Content   string     `json:"content,omitempty"`
	Message   *Message   `json:"message,omitempty"`
	Error     string     `json:"error,omitempty"`
}
