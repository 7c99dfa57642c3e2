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

// DishFilter narrows a caterer's dish listing.
type DishFilter struct {
	CategoryID *primitive.ObjectID
	ActiveOnly bool
}

// DishRepository provides methods for dish operations.
type DishRepository struct {
	collection *mongo.Collection
}

// NewDishRepository creates a new dish repository.
func NewDishRepository(db *MongoDB) *DishRepository {
	return &DishRepository{
		collection: db.Dishes,
	}
}

// Create inserts a new dish.
func (r *DishRepository) Create(ctx context.Context, dish *model.Dish) error {
	if dish.ID.IsZero() {
		dish.ID = primitive.NewObjectID()
	}
	now := time.Now().UTC()
	dish.CreatedAt = now
	dish.UpdatedAt = now

	_, err := r.collection.InsertOne(ctx, dish)
	return err
}

// GetByID returns the dish, or nil when it does not exist.
func (r *DishRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Dish, error) {
	var dish model.Dish
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&dish)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &dish, nil
}

// GetByIDs returns the dishes that exist among ids. Missing ids are skipped.
func (r *DishRepository) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]model.Dish, error) {
	if len(ids) == 0 {
		return []model.Dish{}, nil
	}
	return r.find(ctx, bson.M{"_id": bson.M{"$in": ids}})
}

// ListByCaterer returns a caterer's dishes ordered by name.
func (r *DishRepository) ListByCaterer(ctx context.Context, catererID primitive.ObjectID, f DishFilter) ([]model.Dish, error) {
	filter := bson.M{"caterer_id": catererID}
	if f.CategoryID != nil {
		filter["category_id"] = *f.CategoryID
	}
	if f.ActiveOnly {
		filter["is_active"] = true
	}
	return r.find(ctx, filter, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
}

// Update replaces the dish document.
func (r *DishRepository) Update(ctx context.Context, dish *model.Dish) error {
	dish.UpdatedAt = time.Now().UTC()
	res, err := r.collection.ReplaceOne(ctx, bson.M{"_id": dish.ID}, dish)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return model.ErrDishNotFound
	}
	return nil
}

// Delete removes the dish.
func (r *DishRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (r *DishRepository) find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]model.Dish, error) {
	cursor, err := r.collection.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	dishes := []model.Dish{}
	if err := cursor.All(ctx, &dishes); err != nil {
		return nil, err
	}
	return dishes, nil
}
