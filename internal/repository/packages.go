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

// PackageRepository provides methods for package operations.
// Writes are guarded by the package revision.
type PackageRepository struct {
	collection *mongo.Collection
}

// NewPackageRepository creates a new package repository.
func NewPackageRepository(db *MongoDB) *PackageRepository {
	return &PackageRepository{
		collection: db.Packages,
	}
}

// Create inserts a new package at revision 1.
func (r *PackageRepository) Create(ctx context.Context, pkg *model.Package) error {
	if pkg.ID.IsZero() {
		pkg.ID = primitive.NewObjectID()
	}
	now := time.Now().UTC()
	pkg.CreatedAt = now
	pkg.UpdatedAt = now
	pkg.Revision = 1
	if pkg.CategorySelections == nil {
		pkg.CategorySelections = []model.CategorySelection{}
	}
	if pkg.OccasionIDs == nil {
		pkg.OccasionIDs = []primitive.ObjectID{}
	}

	_, err := r.collection.InsertOne(ctx, pkg)
	return err
}

// GetByID returns the package, or nil when it does not exist.
func (r *PackageRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Package, error) {
	var pkg model.Package
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&pkg)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &pkg, nil
}

// GetByIDs returns the packages that exist among ids.
func (r *PackageRepository) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]model.Package, error) {
	if len(ids) == 0 {
		return []model.Package{}, nil
	}
	return r.find(ctx, bson.M{"_id": bson.M{"$in": ids}})
}

// ListByCaterer returns a caterer's packages, newest first.
func (r *PackageRepository) ListByCaterer(ctx context.Context, catererID primitive.ObjectID) ([]model.Package, error) {
	return r.find(ctx, bson.M{"caterer_id": catererID}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
}

// Update replaces the package when its stored revision still equals pkg.Revision.
// On success pkg.Revision is advanced; a stale revision yields model.ErrConcurrentModification.
func (r *PackageRepository) Update(ctx context.Context, pkg *model.Package) error {
	expected := pkg.Revision
	next := *pkg
	next.Revision = expected + 1
	next.UpdatedAt = time.Now().UTC()
	if next.CategorySelections == nil {
		next.CategorySelections = []model.CategorySelection{}
	}
	if next.OccasionIDs == nil {
		next.OccasionIDs = []primitive.ObjectID{}
	}

	res, err := r.collection.ReplaceOne(ctx, bson.M{"_id": pkg.ID, "revision": expected}, &next)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return model.ErrConcurrentModification
	}

	*pkg = next
	return nil
}

// Delete removes the package.
func (r *PackageRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (r *PackageRepository) find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]model.Package, error) {
	cursor, err := r.collection.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	packages := []model.Package{}
	if err := cursor.All(ctx, &packages); err != nil {
		return nil, err
	}
	return packages, nil
}
