package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category groups dishes, e.g. "Starters".
type Category struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name string             `bson:"name" json:"name"`
}

// SubCategory refines a category.
type SubCategory struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CategoryID primitive.ObjectID `bson:"category_id" json:"category_id"`
	Name       string             `bson:"name" json:"name"`
}

// Occasion tags a package with events it suits, e.g. "Wedding".
type Occasion struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name string             `bson:"name" json:"name"`
}

// CatererSettings holds per-caterer defaults used when packages are created.
type CatererSettings struct {
	CatererID     primitive.ObjectID `bson:"_id" json:"caterer_id"`
	MinimumGuests *int               `bson:"minimum_guests,omitempty" json:"minimum_guests,omitempty"`
	Currency      string             `bson:"currency,omitempty" json:"currency,omitempty"`
	UpdatedAt     time.Time          `bson:"updated_at" json:"updated_at"`
}

// MinimumGuestsOrZero returns the configured floor, or 0 when unset.
func (s *CatererSettings) MinimumGuestsOrZero() int {
	if s == nil || s.MinimumGuests == nil {
		return 0
	}
	return *s.MinimumGuests
}
