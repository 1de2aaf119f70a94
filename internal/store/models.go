package store

import (
	"encoding/json"
	"time"
)

type User struct {
	ID                    string
	DisplayName           string
	Email                 string
	PasswordHash          string
	IsEmailVerified       bool
	VerificationToken     string
	VerificationExpiresAt *time.Time
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

type Document struct {
	ID        string
	UserID    string
	Title     string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ChatMessage is one turn of a conversation, persisted inside the chat's
// jsonb message log. Preview and Edits are present only for model turns that
// carried an edit envelope; Status tracks whether the user applied or
// dismissed the proposal.
type ChatMessage struct {
	ID      string          `json:"id"`
	Role    string          `json:"role"`   // user | model
	Status  string          `json:"status"` // default | used | dismissed
	Content string          `json:"content"`
	Preview string          `json:"preview,omitempty"`
	Edits   json.RawMessage `json:"edits,omitempty"`
}

type Chat struct {
	ID        string
	UserID    string
	Title     string
	Messages  []ChatMessage
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Book struct {
	ID          string
	UserID      string
	Title       string
	Author      string
	StoragePath string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
