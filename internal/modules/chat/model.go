// README: Chat turns and request shapes for the travel assistant.
package chat

import "errors"

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

var ErrEmptyMessage = errors.New("Message is required")

// Turn is one message within a conversation. Conversations are append-only;
// turns are never mutated or removed.
type Turn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Request is the inbound body of POST /api/chat.
type Request struct {
	Message string `json:"message"`
	TripID  string `json:"tripId,omitempty"`
	History []Turn `json:"history,omitempty"`
}
