package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"abi-fashion-backend/internal/ai"
	"abi-fashion-backend/models"
)

// memTranscript is an in-memory transcriptStore for gateway tests.
type memTranscript struct {
	messages []models.ChatMessage
}

func (m *memTranscript) AppendMessage(ctx context.Context, sessionID, role, content, language string) (*models.ChatMessage, error) {
	msg := models.ChatMessage{
		SessionID: sessionID,
		Role:      role,
		Content:   content,
		Language:  language,
		Timestamp: time.Now(),
	}
	m.messages = append(m.messages, msg)
	return &msg, nil
}

func (m *memTranscript) GetSessionMessages(ctx context.Context, sessionID string) ([]models.ChatMessage, error) {
	out := []models.ChatMessage{}
	for _, msg := range m.messages {
		if msg.SessionID == sessionID {
			out = append(out, msg)
		}
	}
	return out, nil
}

// fakeCompleter records the call and returns a canned reply or error.
type fakeCompleter struct {
	systemPrompt string
	turns        []ai.Turn
	maxTokens    int64
	reply        string
	err          error
}

func (f *fakeCompleter) Complete(ctx context.Context, systemPrompt string, turns []ai.Turn, maxTokens int64) (string, error) {
	f.systemPrompt = systemPrompt
	f.turns = turns
	f.maxTokens = maxTokens
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func TestChatWithAssistantAppendsBothTurns(t *testing.T) {
	store := &memTranscript{}
	store.AppendMessage(context.Background(), "s1", models.RoleUser, "Hi", "en")

	client := &fakeCompleter{reply: "We specialize in bridal blouses."}
	svc := NewAssistantService(store, client)

	reply, err := svc.ChatWithAssistant(context.Background(), "s1", "What about pricing?", "en")
	if err != nil {
		t.Fatalf("chat failed: %v", err)
	}
	if reply != "We specialize in bridal blouses." {
		t.Fatalf("unexpected reply: %q", reply)
	}

	// Two new rows in order: the new user turn, then the assistant turn.
	if len(store.messages) != 3 {
		t.Fatalf("expected 3 stored messages, got %d", len(store.messages))
	}
	if store.messages[1].Role != models.RoleUser || store.messages[1].Content != "What about pricing?" {
		t.Errorf("second row should be the new user turn: %+v", store.messages[1])
	}
	if store.messages[2].Role != models.RoleAssistant || store.messages[2].Content != reply {
		t.Errorf("third row should be the assistant turn matching the reply: %+v", store.messages[2])
	}
}

func TestChatWithAssistantSendsHistoryInOrder(t *testing.T) {
	store := &memTranscript{}
	store.AppendMessage(context.Background(), "s1", models.RoleUser, "Hi", "en")
	store.AppendMessage(context.Background(), "s1", models.RoleAssistant, "Hello!", "en")

	client := &fakeCompleter{reply: "ok"}
	svc := NewAssistantService(store, client)

	if _, err := svc.ChatWithAssistant(context.Background(), "s1", "Prices?", "en"); err != nil {
		t.Fatalf("chat failed: %v", err)
	}

	want := []ai.Turn{
		{Role: models.RoleUser, Content: "Hi"},
		{Role: models.RoleAssistant, Content: "Hello!"},
		{Role: models.RoleUser, Content: "Prices?"},
	}
	if len(client.turns) != len(want) {
		t.Fatalf("expected %d turns, got %d", len(want), len(client.turns))
	}
	for i, turn := range want {
		if client.turns[i] != turn {
			t.Errorf("turn %d: got %+v, want %+v", i, client.turns[i], turn)
		}
	}

	if !strings.Contains(client.systemPrompt, "Abi Fashion Designer") {
		t.Errorf("system prompt not rendered: %q", client.systemPrompt)
	}
	if client.maxTokens != customerMaxTokens {
		t.Errorf("customer flow should cap at %d tokens, got %d", customerMaxTokens, client.maxTokens)
	}
}

func TestChatWithAssistantFailureLeavesUserTurn(t *testing.T) {
	store := &memTranscript{}
	client := &fakeCompleter{err: errors.New("upstream down")}
	svc := NewAssistantService(store, client)

	if _, err := svc.ChatWithAssistant(context.Background(), "s1", "Hello?", "en"); err == nil {
		t.Fatal("expected upstream error to propagate")
	}

	// The user turn dangles unanswered; that inconsistency is accepted.
	if len(store.messages) != 1 {
		t.Fatalf("expected only the user turn, got %d messages", len(store.messages))
	}
	if store.messages[0].Role != models.RoleUser {
		t.Errorf("stored turn should be the user's: %+v", store.messages[0])
	}
}

func TestOwnerAssistantIsStateless(t *testing.T) {
	store := &memTranscript{}
	client := &fakeCompleter{reply: "Elegant silk blouse with Aari work."}
	svc := NewAssistantService(store, client)

	reply, err := svc.OwnerAssistant(context.Background(), TaskSuggestDescription, "silk blouse", "en")
	if err != nil {
		t.Fatalf("owner assistant failed: %v", err)
	}
	if reply != "Elegant silk blouse with Aari work." {
		t.Fatalf("unexpected reply: %q", reply)
	}

	if len(store.messages) != 0 {
		t.Errorf("owner flow must not persist transcript rows, found %d", len(store.messages))
	}
	if len(client.turns) != 1 || client.turns[0].Content != "silk blouse" {
		t.Errorf("owner input should be the sole user turn: %+v", client.turns)
	}
	if client.maxTokens != ownerMaxTokens {
		t.Errorf("owner flow should cap at %d tokens, got %d", ownerMaxTokens, client.maxTokens)
	}
}
