package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AddOn is an optional extra sold with a FIXED package. Price is in whole currency units.
type AddOn struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PackageID   primitive.ObjectID `bson:"package_id" json:"package_id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Price       int64              `bson:"price" json:"price"`
	Currency    string             `bson:"currency" json:"currency"`
	IsActive    bool               `bson:"is_active" json:"is_active"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}
