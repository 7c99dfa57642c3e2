package service

import (
	"context"
	"fmt"

	"github.com/guttosm/catering-service/internal/domain/model"
	"github.com/guttosm/catering-service/internal/i18n"
	"github.com/guttosm/catering-service/internal/logger"
	"github.com/guttosm/catering-service/internal/repository"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreatePackageItemInput describes a new package item. A nil PackageID creates a draft.
type CreatePackageItemInput struct {
	DishID      primitive.ObjectID
	PackageID   *primitive.ObjectID
	PeopleCount int
	Quantity    int
	IsOptional  bool
	IsAddon     bool
	PriceAtTime *decimal.Decimal
}

// UpdatePackageItemInput is a partial update. Nil fields are left unchanged;
// an Attachment of Unattached returns the item to the drafts.
type UpdatePackageItemInput struct {
	DishID      *primitive.ObjectID
	Attachment  *model.Attachment
	PeopleCount *int
	Quantity    *int
	IsOptional  *bool
	IsAddon     *bool
	PriceAtTime *decimal.Decimal
}

// PackageItemService manages a caterer's package items.
type PackageItemService interface {
	Create(ctx context.Context, actor model.Actor, in CreatePackageItemInput) (*model.PackageItemDetails, error)
	ListGrouped(ctx context.Context, actor model.Actor, draftOnly bool) ([]model.ItemGroup, error)
	Get(ctx context.Context, actor model.Actor, id primitive.ObjectID) (*model.PackageItemDetails, error)
	Update(ctx context.Context, actor model.Actor, id primitive.ObjectID, in UpdatePackageItemInput) (*model.PackageItemDetails, error)
	Delete(ctx context.Context, actor model.Actor, id primitive.ObjectID) error
	// Link attaches items to a package without repricing it. It returns the other packages
	// the items were moved away from.
	Link(ctx context.Context, actor model.Actor, packageID primitive.ObjectID, itemIDs []primitive.ObjectID) ([]primitive.ObjectID, error)
}

// PackageItemServiceImpl implements PackageItemService.
type PackageItemServiceImpl struct {
	items    repository.PackageItemRepositoryInterface
	dishes   repository.DishRepositoryInterface
	packages repository.PackageRepositoryInterface
	catalog  repository.CatalogRepositoryInterface
	tx       repository.Transactor
	pricing  PricingService
}

// NewPackageItemService creates a new package item service.
func NewPackageItemService(
	items repository.PackageItemRepositoryInterface,
	dishes repository.DishRepositoryInterface,
	packages repository.PackageRepositoryInterface,
	catalog repository.CatalogRepositoryInterface,
	tx repository.Transactor,
	pricing PricingService,
) PackageItemService {
	return &PackageItemServiceImpl{
		items:    items,
		dishes:   dishes,
		packages: packages,
		catalog:  catalog,
		tx:       tx,
		pricing:  pricing,
	}
}

func (s *PackageItemServiceImpl) Create(ctx context.Context, actor model.Actor, in CreatePackageItemInput) (*model.PackageItemDetails, error) {
	if err := requireCaterer(actor); err != nil {
		return nil, err
	}
	if err := validateItemNumbers(in.PeopleCount, in.Quantity, in.PriceAtTime); err != nil {
		return nil, err
	}

	dish, err := s.ownedDish(ctx, actor.ID, in.DishID)
	if err != nil {
		return nil, err
	}

	var pkg *model.Package
	if in.PackageID != nil {
		if pkg, err = s.ownedPackage(ctx, actor.ID, *in.PackageID); err != nil {
			return nil, err
		}
	}

	item := &model.PackageItem{
		DishID:      dish.ID,
		CatererID:   actor.ID,
		PeopleCount: in.PeopleCount,
		Quantity:    in.Quantity,
		IsOptional:  in.IsOptional,
		IsAddon:     in.IsAddon,
		PriceAtTime: in.PriceAtTime,
	}
	if item.Quantity <= 0 {
		item.Quantity = 1
	}
	if item.PriceAtTime == nil {
		price := dish.Price
		item.PriceAtTime = &price
	}
	if pkg != nil {
		item.Attachment = model.AttachedTo(pkg.ID)
		if item.PeopleCount == 0 {
			item.PeopleCount = pkg.MinimumPeople
		}
	}

	err = inTransaction(ctx, s.tx, func(ctx context.Context) error {
		if err := s.items.Create(ctx, item); err != nil {
			return fmt.Errorf("create package item: %w", err)
		}
		if pkg == nil {
			return nil
		}
		_, err := s.pricing.Reprice(ctx, pkg.ID, model.TriggerItemCreate)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &model.PackageItemDetails{Item: *item, Dish: dish, Package: summaryOf(pkg)}, nil
}

func (s *PackageItemServiceImpl) ListGrouped(ctx context.Context, actor model.Actor, draftOnly bool) ([]model.ItemGroup, error) {
	if err := requireCaterer(actor); err != nil {
		return nil, err
	}

	items, err := s.items.ListByCaterer(ctx, actor.ID, draftOnly)
	if err != nil {
		return nil, fmt.Errorf("list package items: %w", err)
	}
	categories, err := s.catalog.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	dishes, err := s.dishes.GetByIDs(ctx, dishIDsOf(items))
	if err != nil {
		return nil, fmt.Errorf("load dishes: %w", err)
	}
	summaries, err := s.summaries(ctx, actor.ID, items)
	if err != nil {
		return nil, err
	}

	groups := make([]model.ItemGroup, 0, len(categories))
	byCategory := make(map[primitive.ObjectID]int, len(categories))
	for _, c := range categories {
		byCategory[c.ID] = len(groups)
		groups = append(groups, model.ItemGroup{Category: c, Items: []model.PackageItemDetails{}})
	}

	dishByID := dishIndex(dishes)
	for _, item := range items {
		dish := dishByID[item.DishID]
		if dish == nil {
			logger.FromContext(ctx).Warn().
				Str("item_id", item.ID.Hex()).
				Str("dish_id", item.DishID.Hex()).
				Msg("Package item references a missing dish")
			continue
		}
		idx, ok := byCategory[dish.CategoryID]
		if !ok {
			idx = len(groups)
			byCategory[dish.CategoryID] = idx
			groups = append(groups, model.ItemGroup{Category: model.Category{ID: dish.CategoryID}, Items: []model.PackageItemDetails{}})
		}

		details := model.PackageItemDetails{Item: item, Dish: dish}
		if pkgID, linked := item.Attachment.PackageID(); linked {
			details.Package = summaries[pkgID]
		}
		groups[idx].Items = append(groups[idx].Items, details)
	}
	return groups, nil
}

func (s *PackageItemServiceImpl) Get(ctx context.Context, actor model.Actor, id primitive.ObjectID) (*model.PackageItemDetails, error) {
	if err := requireCaterer(actor); err != nil {
		return nil, err
	}
	item, err := s.ownedItem(ctx, actor.ID, id)
	if err != nil {
		return nil, err
	}
	return s.details(ctx, actor.ID, item)
}

func (s *PackageItemServiceImpl) Update(ctx context.Context, actor model.Actor, id primitive.ObjectID, in UpdatePackageItemInput) (*model.PackageItemDetails, error) {
	if err := requireCaterer(actor); err != nil {
		return nil, err
	}
	if err := validateItemNumbers(intOrZero(in.PeopleCount), intOrZero(in.Quantity), in.PriceAtTime); err != nil {
		return nil, err
	}

	var updated *model.PackageItem
	err := inTransaction(ctx, s.tx, func(ctx context.Context) error {
		item, err := s.ownedItem(ctx, actor.ID, id)
		if err != nil {
			return err
		}
		previous, wasLinked := item.Attachment.PackageID()

		if in.DishID != nil && *in.DishID != item.DishID {
			dish, err := s.ownedDish(ctx, actor.ID, *in.DishID)
			if err != nil {
				return err
			}
			item.DishID = dish.ID
			if in.PriceAtTime == nil {
				price := dish.Price
				item.PriceAtTime = &price
			}
		}
		if in.Attachment != nil {
			if pkgID, linked := in.Attachment.PackageID(); linked && !item.Attachment.IsAttachedTo(pkgID) {
				if _, err := s.ownedPackage(ctx, actor.ID, pkgID); err != nil {
					return err
				}
			}
			item.Attachment = *in.Attachment
		}
		if in.PeopleCount != nil {
			item.PeopleCount = *in.PeopleCount
		}
		if in.Quantity != nil {
			item.Quantity = *in.Quantity
		}
		if in.IsOptional != nil {
			item.IsOptional = *in.IsOptional
		}
		if in.IsAddon != nil {
			item.IsAddon = *in.IsAddon
		}
		if in.PriceAtTime != nil {
			price := *in.PriceAtTime
			item.PriceAtTime = &price
		}
		item.CatererID = actor.ID

		if err := s.items.Update(ctx, item); err != nil {
			return err
		}

		affected := make([]primitive.ObjectID, 0, 2)
		if wasLinked {
			affected = append(affected, previous)
		}
		if current, linked := item.Attachment.PackageID(); linked && (!wasLinked || current != previous) {
			affected = append(affected, current)
		}
		for _, pkgID := range affected {
			if _, err := s.pricing.Reprice(ctx, pkgID, model.TriggerItemUpdate); err != nil {
				return err
			}
		}
		updated = item
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.details(ctx, actor.ID, updated)
}

func (s *PackageItemServiceImpl) Delete(ctx context.Context, actor model.Actor, id primitive.ObjectID) error {
	if err := requireCaterer(actor); err != nil {
		return err
	}
	return inTransaction(ctx, s.tx, func(ctx context.Context) error {
		item, err := s.ownedItem(ctx, actor.ID, id)
		if err != nil {
			return err
		}
		if err := s.items.Delete(ctx, item.ID); err != nil {
			return fmt.Errorf("delete package item: %w", err)
		}
		if pkgID, linked := item.Attachment.PackageID(); linked {
			if _, err := s.pricing.Reprice(ctx, pkgID, model.TriggerItemDelete); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *PackageItemServiceImpl) Link(ctx context.Context, actor model.Actor, packageID primitive.ObjectID, itemIDs []primitive.ObjectID) ([]primitive.ObjectID, error) {
	if err := requireCaterer(actor); err != nil {
		return nil, err
	}
	if _, err := s.ownedPackage(ctx, actor.ID, packageID); err != nil {
		return nil, err
	}

	ids := uniqueIDs(itemIDs)
	if len(ids) == 0 {
		return nil, nil
	}
	found, err := s.items.GetByIDsForCaterer(ctx, actor.ID, ids)
	if err != nil {
		return nil, fmt.Errorf("load package items: %w", err)
	}
	if len(found) != len(ids) {
		return nil, model.ErrItemsNotOwned
	}

	matched, err := s.items.Link(ctx, actor.ID, packageID, ids)
	if err != nil {
		return nil, fmt.Errorf("link package items: %w", err)
	}
	if matched != int64(len(ids)) {
		return nil, model.ErrItemsNotOwned
	}

	logger.FromContext(ctx).Debug().
		Str("package_id", packageID.Hex()).
		Int("items", len(ids)).
		Msg("Package items linked")
	return movedFrom(found, packageID), nil
}

// movedFrom lists the packages other than target that items were attached to.
func movedFrom(items []model.PackageItem, target primitive.ObjectID) []primitive.ObjectID {
	var out []primitive.ObjectID
	for i := range items {
		if pkgID, linked := items[i].Attachment.PackageID(); linked && pkgID != target {
			out = append(out, pkgID)
		}
	}
	return uniqueIDs(out)
}

func (s *PackageItemServiceImpl) details(ctx context.Context, catererID primitive.ObjectID, item *model.PackageItem) (*model.PackageItemDetails, error) {
	dish, err := s.dishes.GetByID(ctx, item.DishID)
	if err != nil {
		return nil, fmt.Errorf("load dish: %w", err)
	}
	summaries, err := s.summaries(ctx, catererID, []model.PackageItem{*item})
	if err != nil {
		return nil, err
	}
	details := &model.PackageItemDetails{Item: *item, Dish: dish}
	if pkgID, linked := item.Attachment.PackageID(); linked {
		details.Package = summaries[pkgID]
	}
	return details, nil
}

// summaries loads the packages items are linked to. A package owned by another caterer is
// left out and logged.
func (s *PackageItemServiceImpl) summaries(ctx context.Context, catererID primitive.ObjectID, items []model.PackageItem) (map[primitive.ObjectID]*model.PackageSummary, error) {
	ids := make([]primitive.ObjectID, 0)
	for i := range items {
		if pkgID, linked := items[i].Attachment.PackageID(); linked {
			ids = append(ids, pkgID)
		}
	}
	out := make(map[primitive.ObjectID]*model.PackageSummary)
	if len(ids) == 0 {
		return out, nil
	}

	pkgs, err := s.packages.GetByIDs(ctx, uniqueIDs(ids))
	if err != nil {
		return nil, fmt.Errorf("load packages: %w", err)
	}
	for i := range pkgs {
		if !pkgs[i].OwnedBy(catererID) {
			logger.FromContext(ctx).Warn().
				Str("package_id", pkgs[i].ID.Hex()).
				Str("caterer_id", catererID.Hex()).
				Msg("Package item linked to a package of another caterer")
			continue
		}
		out[pkgs[i].ID] = summaryOf(&pkgs[i])
	}
	return out, nil
}

func (s *PackageItemServiceImpl) ownedItem(ctx context.Context, catererID, id primitive.ObjectID) (*model.PackageItem, error) {
	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load package item: %w", err)
	}
	if item == nil || item.CatererID != catererID {
		return nil, model.ErrItemNotFound
	}
	return item, nil
}

func (s *PackageItemServiceImpl) ownedDish(ctx context.Context, catererID, id primitive.ObjectID) (*model.Dish, error) {
	dish, err := s.dishes.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load dish: %w", err)
	}
	if !dish.OwnedBy(catererID) {
		return nil, model.ErrDishNotFound
	}
	return dish, nil
}

func (s *PackageItemServiceImpl) ownedPackage(ctx context.Context, catererID, id primitive.ObjectID) (*model.Package, error) {
	pkg, err := s.packages.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load package: %w", err)
	}
	if !pkg.OwnedBy(catererID) {
		return nil, model.ErrPackageNotFound
	}
	return pkg, nil
}

func summaryOf(pkg *model.Package) *model.PackageSummary {
	if pkg == nil {
		return nil
	}
	return &model.PackageSummary{ID: pkg.ID, Name: pkg.Name}
}

func validateItemNumbers(peopleCount, quantity int, price *decimal.Decimal) error {
	if peopleCount < 0 {
		return model.Validation(i18n.ErrKeyValidationFailed, "people_count must not be negative")
	}
	if quantity < 0 {
		return model.Validation(i18n.ErrKeyValidationFailed, "quantity must not be negative")
	}
	if price != nil && price.IsNegative() {
		return model.Validation(i18n.ErrKeyValidationFailed, "price_at_time must not be negative")
	}
	return nil
}

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
