package repository

import (
	"context"
	"errors"

	"github.com/guttosm/catering-service/internal/domain/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CatalogRepository provides read access to reference data: categories,
// sub-categories and occasions. Create methods exist for seeding.
type CatalogRepository struct {
	categories    *mongo.Collection
	subCategories *mongo.Collection
	occasions     *mongo.Collection
}

// NewCatalogRepository creates a new catalog repository.
func NewCatalogRepository(db *MongoDB) *CatalogRepository {
	return &CatalogRepository{
		categories:    db.Categories,
		subCategories: db.SubCategories,
		occasions:     db.Occasions,
	}
}

// GetCategory returns the category, or nil when it does not exist.
func (r *CatalogRepository) GetCategory(ctx context.Context, id primitive.ObjectID) (*model.Category, error) {
	var c model.Category
	if err := findOne(ctx, r.categories, id, &c); err != nil {
		return nil, nilIfNoDocuments(err)
	}
	return &c, nil
}

// ListCategories returns every category ordered by name.
func (r *CatalogRepository) ListCategories(ctx context.Context) ([]model.Category, error) {
	categories := []model.Category{}
	err := findAll(ctx, r.categories, bson.M{}, &categories)
	return categories, err
}

// GetCategoriesByIDs returns the categories that exist among ids.
func (r *CatalogRepository) GetCategoriesByIDs(ctx context.Context, ids []primitive.ObjectID) ([]model.Category, error) {
	categories := []model.Category{}
	if len(ids) == 0 {
		return categories, nil
	}
	err := findAll(ctx, r.categories, bson.M{"_id": bson.M{"$in": ids}}, &categories)
	return categories, err
}

// GetSubCategory returns the sub-category, or nil when it does not exist.
func (r *CatalogRepository) GetSubCategory(ctx context.Context, id primitive.ObjectID) (*model.SubCategory, error) {
	var s model.SubCategory
	if err := findOne(ctx, r.subCategories, id, &s); err != nil {
		return nil, nilIfNoDocuments(err)
	}
	return &s, nil
}

// ListOccasions returns every occasion ordered by name.
func (r *CatalogRepository) ListOccasions(ctx context.Context) ([]model.Occasion, error) {
	occasions := []model.Occasion{}
	err := findAll(ctx, r.occasions, bson.M{}, &occasions)
	return occasions, err
}

// GetOccasionsByIDs returns the occasions that exist among ids.
func (r *CatalogRepository) GetOccasionsByIDs(ctx context.Context, ids []primitive.ObjectID) ([]model.Occasion, error) {
	occasions := []model.Occasion{}
	if len(ids) == 0 {
		return occasions, nil
	}
	err := findAll(ctx, r.occasions, bson.M{"_id": bson.M{"$in": ids}}, &occasions)
	return occasions, err
}

// CreateCategory inserts a category.
func (r *CatalogRepository) CreateCategory(ctx context.Context, c *model.Category) error {
	if c.ID.IsZero() {
		c.ID = primitive.NewObjectID()
	}
	_, err := r.categories.InsertOne(ctx, c)
	return err
}

// CreateSubCategory inserts a sub-category.
func (r *CatalogRepository) CreateSubCategory(ctx context.Context, s *model.SubCategory) error {
	if s.ID.IsZero() {
		s.ID = primitive.NewObjectID()
	}
	_, err := r.subCategories.InsertOne(ctx, s)
	return err
}

// CreateOccasion inserts an occasion.
func (r *CatalogRepository) CreateOccasion(ctx context.Context, o *model.Occasion) error {
	if o.ID.IsZero() {
		o.ID = primitive.NewObjectID()
	}
	_, err := r.occasions.InsertOne(ctx, o)
	return err
}

func findOne(ctx context.Context, coll *mongo.Collection, id primitive.ObjectID, out interface{}) error {
	return coll.FindOne(ctx, bson.M{"_id": id}).Decode(out)
}

func findAll(ctx context.Context, coll *mongo.Collection, filter bson.M, out interface{}) error {
	cursor, err := coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()
	return cursor.All(ctx, out)
}

func nilIfNoDocuments(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil
	}
	return err
}
