package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category is a named grouping of works. Display order is a plain
// sortable integer assigned by the admin; gaps are fine and nothing is
// renumbered on insert or delete.
type Category struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	NameTA       *string            `bson:"name_ta,omitempty" json:"name_ta,omitempty"`
	DisplayOrder int                `bson:"display_order" json:"display_order"`
	IsActive     bool               `bson:"is_active" json:"is_active"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
}

type CreateCategoryRequest struct {
	Name         string  `json:"name" binding:"required"`
	NameTA       *string `json:"name_ta,omitempty"`
	DisplayOrder int     `json:"display_order"`
	IsActive     *bool   `json:"is_active,omitempty"`
}

// UpdateCategoryRequest is a partial update: nil fields are left untouched.
// Renaming a category does not cascade to works that carry the old label.
type UpdateCategoryRequest struct {
	Name         *string `json:"name,omitempty"`
	NameTA       *string `json:"name_ta,omitempty"`
	DisplayOrder *int    `json:"display_order,omitempty"`
	IsActive     *bool   `json:"is_active,omitempty"`
}

// SetFields builds the $set document for a partial update.
func (r *UpdateCategoryRequest) SetFields() map[string]interface{} {
	set := map[string]interface{}{}
	if r.Name != nil {
		set["name"] = *r.Name
	}
	if r.NameTA != nil {
		set["name_ta"] = *r.NameTA
	}
	if r.DisplayOrder != nil {
		set["display_order"] = *r.DisplayOrder
	}
	if r.IsActive != nil {
		set["is_active"] = *r.IsActive
	}
	return set
}
