package model

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// RoleMessage is one entry of the conversation handed to a responder.
type RoleMessage struct {
	Role    string
	Content string
}
