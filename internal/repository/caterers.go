package repository

import (
	"context"
	"errors"
	"time"

	"github.com/guttosm/catering-service/internal/domain/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CatererRepository stores per-caterer settings keyed by caterer id.
type CatererRepository struct {
	collection *mongo.Collection
}

// NewCatererRepository creates a new caterer repository.
func NewCatererRepository(db *MongoDB) *CatererRepository {
	return &CatererRepository{
		collection: db.Caterers,
	}
}

// GetSettings returns the caterer's settings, or nil when none were saved.
func (r *CatererRepository) GetSettings(ctx context.Context, catererID primitive.ObjectID) (*model.CatererSettings, error) {
	var settings model.CatererSettings
	err := r.collection.FindOne(ctx, bson.M{"_id": catererID}).Decode(&settings)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// UpsertSettings creates or replaces the caterer's settings.
func (r *CatererRepository) UpsertSettings(ctx context.Context, settings *model.CatererSettings) error {
	settings.UpdatedAt = time.Now().UTC()
	_, err := r.collection.ReplaceOne(ctx,
		bson.M{"_id": settings.CatererID},
		settings,
		options.Replace().SetUpsert(true),
	)
	return err
}
