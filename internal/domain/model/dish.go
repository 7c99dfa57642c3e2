package model

import (
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Dish is a catalog item published by a caterer. Price is per person.
type Dish struct {
	ID            primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	CatererID     primitive.ObjectID  `bson:"caterer_id" json:"caterer_id"`
	CategoryID    primitive.ObjectID  `bson:"category_id" json:"category_id"`
	SubCategoryID *primitive.ObjectID `bson:"sub_category_id,omitempty" json:"sub_category_id,omitempty"`
	Name          string              `bson:"name" json:"name"`
	Description   string              `bson:"description,omitempty" json:"description,omitempty"`
	Price         decimal.Decimal     `bson:"price" json:"price"`
	Currency      string              `bson:"currency" json:"currency"`
	Pieces        int                 `bson:"pieces" json:"pieces"`
	Portion       string              `bson:"portion,omitempty" json:"portion,omitempty"`
	IsActive      bool                `bson:"is_active" json:"is_active"`
	CreatedAt     time.Time           `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time           `bson:"updated_at" json:"updated_at"`
}

// OwnedBy reports whether the dish belongs to the given caterer.
func (d *Dish) OwnedBy(catererID primitive.ObjectID) bool {
	return d != nil && d.CatererID == catererID
}

// DefaultQuantity is the quantity a package item gets when created straight from this dish.
func (d *Dish) DefaultQuantity() int {
	if d.Pieces > 0 {
		return d.Pieces
	}
	return 1
}
