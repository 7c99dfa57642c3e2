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

// PackageItemRepository provides methods for package item operations.
type PackageItemRepository struct {
	collection *mongo.Collection
}

// NewPackageItemRepository creates a new package item repository.
func NewPackageItemRepository(db *MongoDB) *PackageItemRepository {
	return &PackageItemRepository{
		collection: db.PackageItems,
	}
}

// Create inserts a new package item.
func (r *PackageItemRepository) Create(ctx context.Context, item *model.PackageItem) error {
	if item.ID.IsZero() {
		item.ID = primitive.NewObjectID()
	}
	now := time.Now().UTC()
	item.CreatedAt = now
	item.UpdatedAt = now

	_, err := r.collection.InsertOne(ctx, item)
	return err
}

// CreateMany inserts several package items in one round trip.
func (r *PackageItemRepository) CreateMany(ctx context.Context, items []*model.PackageItem) error {
	if len(items) == 0 {
		return nil
	}

	now := time.Now().UTC()
	docs := make([]interface{}, len(items))
	for i, item := range items {
		if item.ID.IsZero() {
			item.ID = primitive.NewObjectID()
		}
		item.CreatedAt = now
		item.UpdatedAt = now
		docs[i] = item
	}

	_, err := r.collection.InsertMany(ctx, docs)
	return err
}

// GetByID returns the item, or nil when it does not exist.
func (r *PackageItemRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*model.PackageItem, error) {
	var item model.PackageItem
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// GetByIDsForCaterer returns the items among ids owned by the caterer.
func (r *PackageItemRepository) GetByIDsForCaterer(ctx context.Context, catererID primitive.ObjectID, ids []primitive.ObjectID) ([]model.PackageItem, error) {
	if len(ids) == 0 {
		return []model.PackageItem{}, nil
	}
	return r.find(ctx, bson.M{"_id": bson.M{"$in": ids}, "caterer_id": catererID})
}

// ListByCaterer returns all of a caterer's items, or only drafts when draftOnly is set.
func (r *PackageItemRepository) ListByCaterer(ctx context.Context, catererID primitive.ObjectID, draftOnly bool) ([]model.PackageItem, error) {
	filter := bson.M{"caterer_id": catererID}
	if draftOnly {
		filter["package_id"] = nil
	}
	return r.find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
}

// ListByPackage returns the items linked to a package.
func (r *PackageItemRepository) ListByPackage(ctx context.Context, packageID primitive.ObjectID) ([]model.PackageItem, error) {
	return r.find(ctx, bson.M{"package_id": packageID}, options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
}

// Update replaces the item document.
func (r *PackageItemRepository) Update(ctx context.Context, item *model.PackageItem) error {
	item.UpdatedAt = time.Now().UTC()
	res, err := r.collection.ReplaceOne(ctx, bson.M{"_id": item.ID}, item)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return model.ErrItemNotFound
	}
	return nil
}

// Delete removes the item.
func (r *PackageItemRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// Link attaches the caterer's items to a package and re-asserts their owner.
// It returns the number of items matched.
func (r *PackageItemRepository) Link(ctx context.Context, catererID, packageID primitive.ObjectID, ids []primitive.ObjectID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res, err := r.collection.UpdateMany(ctx,
		bson.M{"_id": bson.M{"$in": ids}, "caterer_id": catererID},
		bson.M{"$set": bson.M{
			"package_id": packageID,
			"caterer_id": catererID,
			"updated_at": time.Now().UTC(),
		}},
	)
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

// Unlink returns items of a package to the draft state. An empty ids unlinks every item.
func (r *PackageItemRepository) Unlink(ctx context.Context, packageID primitive.ObjectID, ids []primitive.ObjectID) (int64, error) {
	filter := bson.M{"package_id": packageID}
	if len(ids) > 0 {
		filter["_id"] = bson.M{"$in": ids}
	}
	res, err := r.collection.UpdateMany(ctx, filter, bson.M{"$set": bson.M{
		"package_id": nil,
		"updated_at": time.Now().UTC(),
	}})
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

// CountByDish counts the items that reference a dish.
func (r *PackageItemRepository) CountByDish(ctx context.Context, dishID primitive.ObjectID) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"dish_id": dishID})
}

func (r *PackageItemRepository) find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]model.PackageItem, error) {
	cursor, err := r.collection.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	items := []model.PackageItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}
