package agent

import (
	"time"

	"github.com/google/uuid"
)

// Role identifies the author of a conversational turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// Message is a single turn of conversation. It is treated as immutable after
// creation: records are appended to a session by value and never mutated in
// place.
type Message struct {
	ID        string         `json:"id"`
	Role      Role           `json:"role"`
	Content   string         `json:"content"`
	Timestamp time.Time      `json:"timestamp"`
	Metadata  map[string]any `json:"metadata"`
}

// NewMessage creates a message with a fresh identifier and a UTC timestamp.
func NewMessage(role Role, content string) Message {
	return Message{
		ID:        uuid.NewString(),
		Role:      role,
		Content:   content,
		Timestamp: time.Now().UTC(),
		Metadata:  map[string]any{},
	}
}
