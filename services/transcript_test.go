package services

import (
	"context"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"abi-fashion-backend/models"
)

func TestTranscriptOrdering(t *testing.T) {
	transcripts := NewTranscriptService(testDB(t))
	ctx := context.Background()

	contents := []string{"first", "second", "third"}
	for _, content := range contents {
		if _, err := transcripts.AppendMessage(ctx, "s1", models.RoleUser, content, "en"); err != nil {
			t.Fatalf("append: %v", err)
		}
		time.Sleep(2 * time.Millisecond)
	}
	// Another session interleaved; must not leak into s1.
	if _, err := transcripts.AppendMessage(ctx, "s2", models.RoleUser, "other", "ta"); err != nil {
		t.Fatalf("append: %v", err)
	}

	messages, err := transcripts.GetSessionMessages(ctx, "s1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(messages) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(messages))
	}
	for i, content := range contents {
		if messages[i].Content != content {
			t.Errorf("message %d out of order: %q", i, messages[i].Content)
		}
	}
}

func TestAppendMessageLenientRole(t *testing.T) {
	transcripts := NewTranscriptService(testDB(t))
	ctx := context.Background()

	// Role spelling is not validated; the row is stored as given.
	if _, err := transcripts.AppendMessage(ctx, "s1", "narrator", "hm", "en"); err != nil {
		t.Fatalf("append: %v", err)
	}

	messages, err := transcripts.GetSessionMessages(ctx, "s1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(messages) != 1 || messages[0].Role != "narrator" {
		t.Fatalf("lenient role not preserved: %+v", messages)
	}
}

func TestPruneOlderThan(t *testing.T) {
	db := testDB(t)
	transcripts := NewTranscriptService(db)
	ctx := context.Background()

	// Backdate two rows past the cutoff; AppendMessage always stamps
	// now, so old rows are inserted directly.
	old := models.ChatMessage{SessionID: "s1", Role: models.RoleUser, Content: "old", Language: "en", Timestamp: time.Now().AddDate(0, 0, -10)}
	older := models.ChatMessage{SessionID: "s1", Role: models.RoleAssistant, Content: "older", Language: "en", Timestamp: time.Now().AddDate(0, 0, -30)}
	if _, err := db.Collection("chat_messages").InsertMany(ctx, []interface{}{old, older}); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if _, err := transcripts.AppendMessage(ctx, "s1", models.RoleUser, "fresh", "en"); err != nil {
		t.Fatalf("append: %v", err)
	}

	deleted, err := transcripts.PruneOlderThan(ctx, 7)
	if err != nil {
		t.Fatalf("prune: %v", err)
	}
	if deleted != 2 {
		t.Fatalf("expected 2 deleted, got %d", deleted)
	}

	remaining, err := transcripts.GetSessionMessages(ctx, "s1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(remaining) != 1 || remaining[0].Content != "fresh" {
		t.Fatalf("newer message should survive: %+v", remaining)
	}

	// Second sweep finds nothing.
	deleted, err = transcripts.PruneOlderThan(ctx, 7)
	if err != nil {
		t.Fatalf("second prune: %v", err)
	}
	if deleted != 0 {
		t.Fatalf("second sweep should delete zero, got %d", deleted)
	}

	count, err := db.Collection("chat_messages").CountDocuments(ctx, bson.M{})
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 remaining row, got %d", count)
	}
}
