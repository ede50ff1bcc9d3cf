package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Well-known settings keys.
const SettingAdminPasswordHash = "adminPasswordHash"

// Setting is a generic key/value row. One row per key, enforced by
// upsert-on-key plus a unique index.
type Setting struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Key   string             `bson:"key" json:"key"`
	Value string             `bson:"value" json:"value"`
}
