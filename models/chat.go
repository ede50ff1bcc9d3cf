package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Chat roles. The store accepts other values as-is; these are the two the
// assistant gateway ever writes.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is one turn of a visitor conversation, keyed by an opaque
// client-generated session ID. Rows are append-only: nothing mutates a
// message after insert, and ordering is reconstructed from Timestamp.
type ChatMessage struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SessionID string             `bson:"session_id" json:"session_id"`
	Role      string             `bson:"role" json:"role"`
	Content   string             `bson:"content" json:"content"`
	Language  string             `bson:"language" json:"language"`
	Timestamp time.Time          `bson:"timestamp" json:"timestamp"`
}

type AssistantChatRequest struct {
	SessionID string `json:"session_id" binding:"required"`
	Message   string `json:"message" binding:"required"`
	Language  string `json:"language" binding:"required"`
}

type AssistantChatResponse struct {
	Reply     string    `json:"reply"`
	SessionID string    `json:"session_id"`
	Timestamp time.Time `json:"timestamp"`
}

// OwnerAssistantRequest is the single-turn owner productivity call.
// Task is one of "translate", "suggest_description", "suggest_pricing";
// anything else gets the generic persona.
type OwnerAssistantRequest struct {
	Task     string `json:"task" binding:"required"`
	Input    string `json:"input" binding:"required"`
	Language string `json:"language" binding:"required"`
}
