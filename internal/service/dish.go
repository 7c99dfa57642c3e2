package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/guttosm/catering-service/internal/domain/model"
	"github.com/guttosm/catering-service/internal/i18n"
	"github.com/guttosm/catering-service/internal/repository"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DishInput carries the writable fields of a dish.
type DishInput struct {
	CategoryID    primitive.ObjectID
	SubCategoryID *primitive.ObjectID
	Name          string
	Description   string
	Price         decimal.Decimal
	Currency      string
	Pieces        int
	Portion       string
	IsActive      *bool
}

// DishService provides dish catalog operations for caterers.
type DishService interface {
	Create(ctx context.Context, actor model.Actor, in DishInput) (*model.Dish, error)
	Get(ctx context.Context, actor model.Actor, id primitive.ObjectID) (*model.Dish, error)
	List(ctx context.Context, actor model.Actor, categoryID *primitive.ObjectID, activeOnly bool) ([]model.Dish, error)
	Update(ctx context.Context, actor model.Actor, id primitive.ObjectID, in DishInput) (*model.Dish, error)
	Delete(ctx context.Context, actor model.Actor, id primitive.ObjectID) error
}

// DishServiceImpl implements DishService.
type DishServiceImpl struct {
	dishes   repository.DishRepositoryInterface
	items    repository.PackageItemRepositoryInterface
	catalog  repository.CatalogRepositoryInterface
	caterers repository.CatererRepositoryInterface
	currency string
}

// NewDishService creates a new dish service.
func NewDishService(
	dishes repository.DishRepositoryInterface,
	items repository.PackageItemRepositoryInterface,
	catalog repository.CatalogRepositoryInterface,
	caterers repository.CatererRepositoryInterface,
	defaultCurrency string,
) DishService {
	if defaultCurrency == "" {
		defaultCurrency = DefaultCurrency
	}
	return &DishServiceImpl{
		dishes:   dishes,
		items:    items,
		catalog:  catalog,
		caterers: caterers,
		currency: defaultCurrency,
	}
}

func (s *DishServiceImpl) Create(ctx context.Context, actor model.Actor, in DishInput) (*model.Dish, error) {
	if err := requireCaterer(actor); err != nil {
		return nil, err
	}
	if err := s.validate(ctx, &in); err != nil {
		return nil, err
	}

	currency, err := s.resolveCurrency(ctx, actor.ID, in.Currency)
	if err != nil {
		return nil, err
	}

	dish := &model.Dish{
		CatererID:     actor.ID,
		CategoryID:    in.CategoryID,
		SubCategoryID: in.SubCategoryID,
		Name:          in.Name,
		Description:   in.Description,
		Price:         in.Price,
		Currency:      currency,
		Pieces:        in.Pieces,
		Portion:       in.Portion,
		IsActive:      boolOr(in.IsActive, true),
	}
	if err := s.dishes.Create(ctx, dish); err != nil {
		return nil, err
	}
	return dish, nil
}

func (s *DishServiceImpl) Get(ctx context.Context, actor model.Actor, id primitive.ObjectID) (*model.Dish, error) {
	if err := requireCaterer(actor); err != nil {
		return nil, err
	}
	return s.owned(ctx, actor.ID, id)
}

func (s *DishServiceImpl) List(ctx context.Context, actor model.Actor, categoryID *primitive.ObjectID, activeOnly bool) ([]model.Dish, error) {
	if err := requireCaterer(actor); err != nil {
		return nil, err
	}
	return s.dishes.ListByCaterer(ctx, actor.ID, repository.DishFilter{CategoryID: categoryID, ActiveOnly: activeOnly})
}

func (s *DishServiceImpl) Update(ctx context.Context, actor model.Actor, id primitive.ObjectID, in DishInput) (*model.Dish, error) {
	if err := requireCaterer(actor); err != nil {
		return nil, err
	}
	dish, err := s.owned(ctx, actor.ID, id)
	if err != nil {
		return nil, err
	}
	if err := s.validate(ctx, &in); err != nil {
		return nil, err
	}

	dish.CategoryID = in.CategoryID
	dish.SubCategoryID = in.SubCategoryID
	dish.Name = in.Name
	dish.Description = in.Description
	dish.Price = in.Price
	if in.Currency != "" {
		dish.Currency = strings.ToUpper(in.Currency)
	}
	dish.Pieces = in.Pieces
	dish.Portion = in.Portion
	dish.IsActive = boolOr(in.IsActive, dish.IsActive)

	if err := s.dishes.Update(ctx, dish); err != nil {
		return nil, err
	}
	return dish, nil
}

func (s *DishServiceImpl) Delete(ctx context.Context, actor model.Actor, id primitive.ObjectID) error {
	if err := requireCaterer(actor); err != nil {
		return err
	}
	if _, err := s.owned(ctx, actor.ID, id); err != nil {
		return err
	}

	used, err := s.items.CountByDish(ctx, id)
	if err != nil {
		return fmt.Errorf("count dish usage: %w", err)
	}
	if used > 0 {
		return model.ErrDishInUse
	}
	return s.dishes.Delete(ctx, id)
}

// owned loads a dish and hides dishes of other caterers behind NotFound.
func (s *DishServiceImpl) owned(ctx context.Context, catererID, id primitive.ObjectID) (*model.Dish, error) {
	dish, err := s.dishes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !dish.OwnedBy(catererID) {
		return nil, model.ErrDishNotFound
	}
	return dish, nil
}

func (s *DishServiceImpl) validate(ctx context.Context, in *DishInput) error {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return requiredField("name")
	}
	if in.Price.IsNegative() {
		return model.Validation(i18n.ErrKeyValidationFailed, "price must not be negative")
	}
	if in.Pieces < 0 {
		return model.Validation(i18n.ErrKeyValidationFailed, "pieces must not be negative")
	}

	category, err := s.catalog.GetCategory(ctx, in.CategoryID)
	if err != nil {
		return fmt.Errorf("load category: %w", err)
	}
	if category == nil {
		return model.ErrCategoryNotFound
	}

	if in.SubCategoryID != nil {
		sub, err := s.catalog.GetSubCategory(ctx, *in.SubCategoryID)
		if err != nil {
			return fmt.Errorf("load sub-category: %w", err)
		}
		if sub == nil || sub.CategoryID != in.CategoryID {
			return model.ErrSubCategoryMismatch
		}
	}
	return nil
}

func (s *DishServiceImpl) resolveCurrency(ctx context.Context, catererID primitive.ObjectID, requested string) (string, error) {
	if requested != "" {
		return strings.ToUpper(requested), nil
	}
	settings, err := s.caterers.GetSettings(ctx, catererID)
	if err != nil {
		return "", fmt.Errorf("load caterer settings: %w", err)
	}
	if settings != nil && settings.Currency != "" {
		return settings.Currency, nil
	}
	return s.currency, nil
}
