package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Work is one portfolio entry: a finished tailoring piece shown in the
// public gallery. Titles and descriptions are stored in both Tamil and
// English; the category is a denormalized label, not a reference.
type Work struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Category          string             `bson:"category" json:"category"`
	Images            []string           `bson:"images" json:"images"`
	TitleTA           string             `bson:"title_ta" json:"title_ta"`
	TitleEN           string             `bson:"title_en" json:"title_en"`
	DescriptionTA     string             `bson:"description_ta" json:"description_ta"`
	DescriptionEN     string             `bson:"description_en" json:"description_en"`
	Price             *int               `bson:"price,omitempty" json:"price,omitempty"`
	CustomField1Label *string            `bson:"custom_field1_label,omitempty" json:"custom_field1_label,omitempty"`
	CustomField1Value *string            `bson:"custom_field1_value,omitempty" json:"custom_field1_value,omitempty"`
	CustomField2Label *string            `bson:"custom_field2_label,omitempty" json:"custom_field2_label,omitempty"`
	CustomField2Value *string            `bson:"custom_field2_value,omitempty" json:"custom_field2_value,omitempty"`
	CreatedAt         time.Time          `bson:"created_at" json:"created_at"`
	IsActive          bool               `bson:"is_active" json:"is_active"`
}

// CreateWorkRequest carries the admin form for a new work. Both language
// variants of title and description are required independently.
type CreateWorkRequest struct {
	Category          string     `json:"category" binding:"required"`
	Images            []string   `json:"images"`
	TitleTA           string     `json:"title_ta" binding:"required"`
	TitleEN           string     `json:"title_en" binding:"required"`
	DescriptionTA     string     `json:"description_ta" binding:"required"`
	DescriptionEN     string     `json:"description_en" binding:"required"`
	Price             *int       `json:"price,omitempty"`
	CustomField1Label *string    `json:"custom_field1_label,omitempty"`
	CustomField1Value *string    `json:"custom_field1_value,omitempty"`
	CustomField2Label *string    `json:"custom_field2_label,omitempty"`
	CustomField2Value *string    `json:"custom_field2_value,omitempty"`
	IsActive          *bool      `json:"is_active,omitempty"`
	CreatedAt         *time.Time `json:"created_at,omitempty"`
}

// UpdateWorkRequest is a partial update: nil fields are left untouched.
type UpdateWorkRequest struct {
	Category          *string   `json:"category,omitempty"`
	Images            *[]string `json:"images,omitempty"`
	TitleTA           *string   `json:"title_ta,omitempty"`
	TitleEN           *string   `json:"title_en,omitempty"`
	DescriptionTA     *string   `json:"description_ta,omitempty"`
	DescriptionEN     *string   `json:"description_en,omitempty"`
	Price             *int      `json:"price,omitempty"`
	CustomField1Label *string   `json:"custom_field1_label,omitempty"`
	CustomField1Value *string   `json:"custom_field1_value,omitempty"`
	CustomField2Label *string   `json:"custom_field2_label,omitempty"`
	CustomField2Value *string   `json:"custom_field2_value,omitempty"`
	IsActive          *bool     `json:"is_active,omitempty"`
}

// SetFields builds the $set document for a partial update, including only
// the fields the caller provided.
func (r *UpdateWorkRequest) SetFields() map[string]interface{} {
	set := map[string]interface{}{}
	if r.Category != nil {
		set["category"] = *r.Category
	}
	if r.Images != nil {
		set["images"] = *r.Images
	}
	if r.TitleTA != nil {
		set["title_ta"] = *r.TitleTA
	}
	if r.TitleEN != nil {
		set["title_en"] = *r.TitleEN
	}
	if r.DescriptionTA != nil {
		set["description_ta"] = *r.DescriptionTA
	}
	if r.DescriptionEN != nil {
		set["description_en"] = *r.DescriptionEN
	}
	if r.Price != nil {
		set["price"] = *r.Price
	}
	if r.CustomField1Label != nil {
		set["custom_field1_label"] = *r.CustomField1Label
	}
	if r.CustomField1Value != nil {
		set["custom_field1_value"] = *r.CustomField1Value
	}
	if r.CustomField2Label != nil {
		set["custom_field2_label"] = *r.CustomField2Label
	}
	if r.CustomField2Value != nil {
		set["custom_field2_value"] = *r.CustomField2Value
	}
	if r.IsActive != nil {
		set["is_active"] = *r.IsActive
	}
	return set
}
