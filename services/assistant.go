package services

import (
	"context"
	"fmt"

	"abi-fashion-backend/internal/ai"
	"abi-fashion-backend/internal/logger"
	"abi-fashion-backend/models"
)

const (
	customerMaxTokens = 500
	ownerMaxTokens    = 300
)

// transcriptStore is the slice of TranscriptService the gateway needs.
type transcriptStore interface {
	AppendMessage(ctx context.Context, sessionID, role, content, language string) (*models.ChatMessage, error)
	GetSessionMessages(ctx context.Context, sessionID string) ([]models.ChatMessage, error)
}

// completer is the external completion call the gateway depends on.
type completer interface {
	Complete(ctx context.Context, systemPrompt string, turns []ai.Turn, maxTokens int64) (string, error)
}

// AssistantService turns a visitor message or an owner task into a single
// text reply from the completion service, persisting customer transcripts
// along the way.
type AssistantService struct {
	transcripts transcriptStore
	client      completer
}

func NewAssistantService(transcripts transcriptStore, client completer) *AssistantService {
	return &AssistantService{transcripts: transcripts, client: client}
}

// ChatWithAssistant runs the customer flow: persist the user turn, replay
// the stored transcript after the localized system prompt, persist and
// return the reply. An upstream failure propagates, leaving the user turn
// unanswered in the transcript; the UI owns the fallback text.
func (s *AssistantService) ChatWithAssistant(ctx context.Context, sessionID, message, language string) (string, error) {
	if _, err := s.transcripts.AppendMessage(ctx, sessionID, models.RoleUser, message, language); err != nil {
		return "", fmt.Errorf("failed to store user message: %w", err)
	}

	history, err := s.transcripts.GetSessionMessages(ctx, sessionID)
	if err != nil {
		return "", fmt.Errorf("failed to load transcript: %w", err)
	}

	// The just-appended user turn is already the transcript tail, so the
	// history replay carries the new message too.
	turns := make([]ai.Turn, 0, len(history))
	for _, msg := range history {
		turns = append(turns, ai.Turn{Role: msg.Role, Content: msg.Content})
	}

	reply, err := s.client.Complete(ctx, CustomerPrompt(language), turns, customerMaxTokens)
	if err != nil {
		logger.Error("assistant completion failed", "session_id", sessionID, "error", err)
		return "", err
	}

	if _, err := s.transcripts.AppendMessage(ctx, sessionID, models.RoleAssistant, reply, language); err != nil {
		return "", fmt.Errorf("failed to store assistant message: %w", err)
	}

	return reply, nil
}

// OwnerAssistant is the stateless single-turn owner flow. Nothing is
// persisted; an unknown task falls back to the generic persona.
func (s *AssistantService) OwnerAssistant(ctx context.Context, task, input, language string) (string, error) {
	reply, err := s.client.Complete(ctx, OwnerPrompt(task, language), []ai.Turn{{Role: models.RoleUser, Content: input}}, ownerMaxTokens)
	if err != nil {
		logger.Error("owner assistant completion failed", "task", task, "error", err)
		return "", err
	}
	return reply, nil
}
