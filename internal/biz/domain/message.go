package domain

import "time"

// Message roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one turn of conversation history for a session.
type Message struct {
	SessionID string
	Role      string
	Content   string
	CreatedAt time.Time
}
