package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"abi-fashion-backend/models"
)

// TranscriptService is append-only storage of chat turns keyed by an
// opaque session ID. Messages are never mutated after insert; the role
// value is stored as given, with no validation beyond the store's types.
type TranscriptService struct {
	messages *mongo.Collection
}

func NewTranscriptService(db *mongo.Database) *TranscriptService {
	return &TranscriptService{messages: db.Collection("chat_messages")}
}

// AppendMessage inserts one turn with a server-assigned timestamp.
func (s *TranscriptService) AppendMessage(ctx context.Context, sessionID, role, content, language string) (*models.ChatMessage, error) {
	msg := models.ChatMessage{
		SessionID: sessionID,
		Role:      role,
		Content:   content,
		Language:  language,
		Timestamp: time.Now(),
	}

	if _, err := s.messages.InsertOne(ctx, msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

// GetSessionMessages returns every turn of a session in ascending
// timestamp order. Sessions are small (tens of turns); no pagination.
func (s *TranscriptService) GetSessionMessages(ctx context.Context, sessionID string) ([]models.ChatMessage, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}})
	cursor, err := s.messages.Find(ctx, bson.M{"session_id": sessionID}, opts)
	if err != nil {
		return nil, err
	}

	messages := []models.ChatMessage{}
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

// PruneOlderThan deletes turns strictly older than now minus the given
// number of days and returns how many were removed.
func (s *TranscriptService) PruneOlderThan(ctx context.Context, days int) (int64, error) {
	cutoff := time.Now().AddDate(0, 0, -days)
	result, err := s.messages.DeleteMany(ctx, bson.M{"timestamp": bson.M{"$lt": cutoff}})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}
