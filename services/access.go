package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"abi-fashion-backend/models"
)

// AccessService gates the single shared administrative capability. The
// stored value is compared as an opaque string, exactly as the admin set
// it; when no settings row exists the environment default applies. The
// result never reveals which branch matched.
type AccessService struct {
	settings    *mongo.Collection
	defaultHash string
}

func NewAccessService(db *mongo.Database, defaultHash string) *AccessService {
	return &AccessService{
		settings:    db.Collection("settings"),
		defaultHash: defaultHash,
	}
}

// ValidatePassword returns true exactly when the candidate equals the
// stored (or default) value. Wrong passwords are a boolean false, never
// an error; there is no lockout or throttle.
func (s *AccessService) ValidatePassword(ctx context.Context, candidate string) (bool, error) {
	var setting models.Setting
	err := s.settings.FindOne(ctx, bson.M{"key": models.SettingAdminPasswordHash}).Decode(&setting)
	if err == mongo.ErrNoDocuments {
		if s.defaultHash == "" {
			return false, nil
		}
		return candidate == s.defaultHash, nil
	}
	if err != nil {
		return false, err
	}

	return candidate == setting.Value, nil
}

// SetAdminPassword upserts the settings row for the well-known key,
// overwriting unconditionally.
func (s *AccessService) SetAdminPassword(ctx context.Context, newValue string) error {
	opts := options.Update().SetUpsert(true)
	_, err := s.settings.UpdateOne(ctx,
		bson.M{"key": models.SettingAdminPasswordHash},
		bson.M{"$set": bson.M{"value": newValue}},
		opts,
	)
	return err
}
