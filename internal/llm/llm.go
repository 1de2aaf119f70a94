// Package llm defines the chat-provider boundary between the editing
// pipeline and the hosted language models.
package llm

import (
	"context"
	"errors"
)

// Role values follow the convention the chat log is stored in.
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// Message is one prior turn of a conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Provider produces a complete response for a chat exchange. Implementations
// must return the fully accumulated text: the edit-response parser requires
// the whole payload, never a partial stream.
type Provider interface {
	Chat(ctx context.Context, system string, history []Message, prompt string) (string, error)
}

var (
	ErrUnauthorized = errors.New("llm: unauthorized")
	ErrRateLimited  = errors.New("llm: rate limited")
	ErrUnavailable  = errors.New("llm: provider unavailable")
	ErrEmptyReply   = errors.New("llm: empty response")
)
