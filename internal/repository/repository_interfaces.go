// Package repository provides the MongoDB data access layer of the catering service.
package repository

import (
	"context"

	"github.com/guttosm/catering-service/internal/domain/model"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Getters return (nil, nil) when the document does not exist.

// Transactor runs a function atomically across repositories.
type Transactor interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// DishRepositoryInterface defines the interface for dish repository operations.
type DishRepositoryInterface interface {
	Create(ctx context.Context, dish *model.Dish) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.Dish, error)
	GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]model.Dish, error)
	ListByCaterer(ctx context.Context, catererID primitive.ObjectID, filter DishFilter) ([]model.Dish, error)
	Update(ctx context.Context, dish *model.Dish) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// PackageItemRepositoryInterface defines the interface for package item repository operations.
type PackageItemRepositoryInterface interface {
	Create(ctx context.Context, item *model.PackageItem) error
	CreateMany(ctx context.Context, items []*model.PackageItem) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.PackageItem, error)
	GetByIDsForCaterer(ctx context.Context, catererID primitive.ObjectID, ids []primitive.ObjectID) ([]model.PackageItem, error)
	ListByCaterer(ctx context.Context, catererID primitive.ObjectID, draftOnly bool) ([]model.PackageItem, error)
	ListByPackage(ctx context.Context, packageID primitive.ObjectID) ([]model.PackageItem, error)
	Update(ctx context.Context, item *model.PackageItem) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	Link(ctx context.Context, catererID, packageID primitive.ObjectID, ids []primitive.ObjectID) (int64, error)
	Unlink(ctx context.Context, packageID primitive.ObjectID, ids []primitive.ObjectID) (int64, error)
	CountByDish(ctx context.Context, dishID primitive.ObjectID) (int64, error)
}

// PackageRepositoryInterface defines the interface for package repository operations.
type PackageRepositoryInterface interface {
	Create(ctx context.Context, pkg *model.Package) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.Package, error)
	GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]model.Package, error)
	ListByCaterer(ctx context.Context, catererID primitive.ObjectID) ([]model.Package, error)
	Update(ctx context.Context, pkg *model.Package) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// AddOnRepositoryInterface defines the interface for add-on repository operations.
type AddOnRepositoryInterface interface {
	Create(ctx context.Context, addOn *model.AddOn) error
	GetByID(ctx context.Context, packageID, id primitive.ObjectID) (*model.AddOn, error)
	ListByPackage(ctx context.Context, packageID primitive.ObjectID) ([]model.AddOn, error)
	Update(ctx context.Context, addOn *model.AddOn) error
	Delete(ctx context.Context, packageID, id primitive.ObjectID) error
	DeleteByPackage(ctx context.Context, packageID primitive.ObjectID) (int64, error)
}

// CatalogRepositoryInterface defines read access to categories, sub-categories and occasions.
type CatalogRepositoryInterface interface {
	GetCategory(ctx context.Context, id primitive.ObjectID) (*model.Category, error)
	ListCategories(ctx context.Context) ([]model.Category, error)
	GetCategoriesByIDs(ctx context.Context, ids []primitive.ObjectID) ([]model.Category, error)
	GetSubCategory(ctx context.Context, id primitive.ObjectID) (*model.SubCategory, error)
	ListOccasions(ctx context.Context) ([]model.Occasion, error)
	GetOccasionsByIDs(ctx context.Context, ids []primitive.ObjectID) ([]model.Occasion, error)
}

// CatererRepositoryInterface defines the interface for caterer settings operations.
type CatererRepositoryInterface interface {
	GetSettings(ctx context.Context, catererID primitive.ObjectID) (*model.CatererSettings, error)
	UpsertSettings(ctx context.Context, settings *model.CatererSettings) error
}

// LogsRepositoryInterface defines the interface for logs repository operations.
type LogsRepositoryInterface interface {
	Create(ctx context.Context, entry *LogEntryDocument) error
	CreateMany(ctx context.Context, entries []*LogEntryDocument) error
	Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error)
	Count(ctx context.Context, opts LogQueryOptions) (int64, error)
}

var (
	_ Transactor                     = (*MongoTransactor)(nil)
	_ DishRepositoryInterface        = (*DishRepository)(nil)
	_ PackageItemRepositoryInterface = (*PackageItemRepository)(nil)
	_ PackageRepositoryInterface     = (*PackageRepository)(nil)
	_ AddOnRepositoryInterface       = (*AddOnRepository)(nil)
	_ CatalogRepositoryInterface     = (*CatalogRepository)(nil)
	_ CatererRepositoryInterface     = (*CatererRepository)(nil)
	_ LogsRepositoryInterface        = (*LogsRepository)(nil)
	_ LogsRepositoryInterface        = (*LogsRepositoryWithCircuitBreaker)(nil)
)
