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

// AddOnRepository provides methods for add-on operations.
type AddOnRepository struct {
	collection *mongo.Collection
}

// NewAddOnRepository creates a new add-on repository.
func NewAddOnRepository(db *MongoDB) *AddOnRepository {
	return &AddOnRepository{
		collection: db.AddOns,
	}
}

// Create inserts a new add-on.
func (r *AddOnRepository) Create(ctx context.Context, addOn *model.AddOn) error {
	if addOn.ID.IsZero() {
		addOn.ID = primitive.NewObjectID()
	}
	now := time.Now().UTC()
	addOn.CreatedAt = now
	addOn.UpdatedAt = now

	_, err := r.collection.InsertOne(ctx, addOn)
	return err
}

// GetByID returns the add-on scoped to its package, or nil when it does not exist.
func (r *AddOnRepository) GetByID(ctx context.Context, packageID, id primitive.ObjectID) (*model.AddOn, error) {
	var addOn model.AddOn
	err := r.collection.FindOne(ctx, bson.M{"_id": id, "package_id": packageID}).Decode(&addOn)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &addOn, nil
}

// ListByPackage returns a package's add-ons in creation order.
func (r *AddOnRepository) ListByPackage(ctx context.Context, packageID primitive.ObjectID) ([]model.AddOn, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"package_id": packageID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	addOns := []model.AddOn{}
	if err := cursor.All(ctx, &addOns); err != nil {
		return nil, err
	}
	return addOns, nil
}

// Update replaces the add-on document.
func (r *AddOnRepository) Update(ctx context.Context, addOn *model.AddOn) error {
	addOn.UpdatedAt = time.Now().UTC()
	res, err := r.collection.ReplaceOne(ctx, bson.M{"_id": addOn.ID, "package_id": addOn.PackageID}, addOn)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return model.ErrAddOnNotFound
	}
	return nil
}

// Delete removes a single add-on of a package.
func (r *AddOnRepository) Delete(ctx context.Context, packageID, id primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id, "package_id": packageID})
	return err
}

// DeleteByPackage removes every add-on of a package.
func (r *AddOnRepository) DeleteByPackage(ctx context.Context, packageID primitive.ObjectID) (int64, error) {
	res, err := r.collection.DeleteMany(ctx, bson.M{"package_id": packageID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
