package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/guttosm/catering-service/internal/domain/model"
	"github.com/guttosm/catering-service/internal/i18n"
	"github.com/guttosm/catering-service/internal/logger"
	"github.com/guttosm/catering-service/internal/metrics"
	"github.com/guttosm/catering-service/internal/repository"
	"github.com/guttosm/catering-service/internal/service/cache"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ItemRefs references the contents of a package.
// PackageItemIDs may mix item and dish ids: ids that are not items of the caterer are
// resolved as dishes. DishIDs are always dishes.
type ItemRefs struct {
	PackageItemIDs []primitive.ObjectID
	DishIDs        []primitive.ObjectID
}

func (r ItemRefs) empty() bool {
	return len(r.PackageItemIDs) == 0 && len(r.DishIDs) == 0
}

// CreatePackageInput describes a caterer-authored package.
type CreatePackageInput struct {
	Name               string
	Description        string
	TotalPrice         *decimal.Decimal
	MinimumPeople      *int
	CustomisationType  model.CustomisationType
	Currency           string
	IsActive           *bool
	IsAvailable        *bool
	Items              ItemRefs
	CategorySelections []model.CategorySelection
	OccasionIDs        []primitive.ObjectID
}

// UpdatePackageInput is a partial update. Nil fields are left unchanged.
type UpdatePackageInput struct {
	Name              *string
	Description       *string
	TotalPrice        *decimal.Decimal
	IsActive          *bool
	IsAvailable       *bool
	Currency          *string
	CustomisationType *model.CustomisationType
	MinimumPeople     *int
	// RepriceFromCatererDefaults re-applies the caterer's minimum guests to an unpinned
	// package when MinimumPeople is not given. Nil means true.
	RepriceFromCatererDefaults *bool
	Items                      *ItemRefs
	CategorySelections         *[]model.CategorySelection
	OccasionIDs                *[]primitive.ObjectID
	// ExpectedRevision rejects the update when the stored package has moved on.
	ExpectedRevision *int64
}

// BuyerPackageInput describes a package a buyer composes from one caterer's dishes.
type BuyerPackageInput struct {
	Name          string
	Description   string
	DishIDs       []primitive.ObjectID
	MinimumPeople *int
	OccasionIDs   []primitive.ObjectID
}

// PackageService is the package aggregate: it composes, prices and persists packages.
type PackageService interface {
	Create(ctx context.Context, actor model.Actor, in CreatePackageInput) (*model.PackageDetails, error)
	Update(ctx context.Context, actor model.Actor, id primitive.ObjectID, in UpdatePackageInput) (*model.PackageDetails, error)
	Delete(ctx context.Context, actor model.Actor, id primitive.ObjectID) error
	Get(ctx context.Context, actor model.Actor, id primitive.ObjectID) (*model.PackageDetails, error)
	List(ctx context.Context, actor model.Actor) ([]model.Package, error)
	GetPublic(ctx context.Context, id primitive.ObjectID) (*model.PackageDetails, error)
	LinkItems(ctx context.Context, actor model.Actor, id primitive.ObjectID, itemIDs []primitive.ObjectID) (*model.PackageDetails, error)
	CreateForBuyer(ctx context.Context, actor model.Actor, in BuyerPackageInput) (*model.PackageDetails, error)
}

// PackageServiceDeps groups the collaborators of the package service.
type PackageServiceDeps struct {
	Packages        repository.PackageRepositoryInterface
	Items           repository.PackageItemRepositoryInterface
	Dishes          repository.DishRepositoryInterface
	AddOns          repository.AddOnRepositoryInterface
	Catalog         repository.CatalogRepositoryInterface
	Caterers        repository.CatererRepositoryInterface
	Tx              repository.Transactor
	Pricing         PricingService
	Selections      CategorySelectionValidator
	ItemService     PackageItemService
	Notifier        PackageNotifier
	Cache           cache.Cache
	DefaultCurrency string
}

// PackageServiceImpl implements PackageService.
type PackageServiceImpl struct {
	packages   repository.PackageRepositoryInterface
	items      repository.PackageItemRepositoryInterface
	dishes     repository.DishRepositoryInterface
	addOns     repository.AddOnRepositoryInterface
	catalog    repository.CatalogRepositoryInterface
	caterers   repository.CatererRepositoryInterface
	tx         repository.Transactor
	pricing    PricingService
	selections CategorySelectionValidator
	itemSvc    PackageItemService
	notifier   PackageNotifier
	cache      cache.Cache
	currency   string
}

// NewPackageService creates a new package service.
func NewPackageService(deps PackageServiceDeps) PackageService {
	if deps.Notifier == nil {
		deps.Notifier = NewPackageNotifier(deps.Cache, nil)
	}
	if deps.Cache == nil {
		deps.Cache = cache.Noop{}
	}
	if deps.DefaultCurrency == "" {
		deps.DefaultCurrency = DefaultCurrency
	}
	return &PackageServiceImpl{
		packages:   deps.Packages,
		items:      deps.Items,
		dishes:     deps.Dishes,
		addOns:     deps.AddOns,
		catalog:    deps.Catalog,
		caterers:   deps.Caterers,
		tx:         deps.Tx,
		pricing:    deps.Pricing,
		selections: deps.Selections,
		itemSvc:    deps.ItemService,
		notifier:   deps.Notifier,
		cache:      deps.Cache,
		currency:   deps.DefaultCurrency,
	}
}

func (s *PackageServiceImpl) Create(ctx context.Context, actor model.Actor, in CreatePackageInput) (*model.PackageDetails, error) {
	if err := requireCaterer(actor); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, requiredField("name")
	}
	if in.TotalPrice != nil && in.TotalPrice.IsNegative() {
		return nil, model.Validation(i18n.ErrKeyValidationFailed, "total_price must not be negative")
	}

	settings, err := s.caterers.GetSettings(ctx, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("load caterer settings: %w", err)
	}
	minimum, err := resolveMinimumPeople(in.MinimumPeople, settings)
	if err != nil {
		return nil, err
	}

	customisation := in.CustomisationType
	if customisation == "" {
		customisation = model.CustomisationFixed
	}
	if !customisation.Valid() {
		return nil, model.Validation(i18n.ErrKeyValidationFailed, "customisation_type must be FIXED or CUSTOMISABLE")
	}
	if err := s.selections.Validate(ctx, customisation, in.CategorySelections); err != nil {
		return nil, err
	}
	occasionIDs, err := s.validateOccasions(ctx, in.OccasionIDs)
	if err != nil {
		return nil, err
	}

	pkg := &model.Package{
		CatererID:           actor.ID,
		CreatedBy:           model.ActorCaterer,
		Name:                name,
		Description:         in.Description,
		MinimumPeople:       minimum,
		MinimumPeoplePinned: in.MinimumPeople != nil,
		Currency:            s.resolveCurrency(in.Currency, settings),
		CustomisationType:   customisation,
		IsActive:            boolOr(in.IsActive, true),
		IsAvailable:         boolOr(in.IsAvailable, true),
		OccasionIDs:         occasionIDs,
	}
	if customisation == model.CustomisationFixed {
		pkg.CategorySelections = in.CategorySelections
	}

	start := time.Now()
	err = inTransaction(ctx, s.tx, func(ctx context.Context) error {
		items, err := s.resolveItems(ctx, actor.ID, in.Items, minimum)
		if err != nil {
			return err
		}

		breakdown, err := s.pricing.Quote(ctx, items, minimum)
		if err != nil {
			return err
		}
		pkg.TotalPrice = breakdown.Total
		pkg.IsCustomPrice = false
		if len(items) == 0 && in.TotalPrice != nil {
			pkg.TotalPrice = roundTotal(*in.TotalPrice)
			pkg.IsCustomPrice = true
		}

		if err := s.packages.Create(ctx, pkg); err != nil {
			return fmt.Errorf("create package: %w", err)
		}
		moved, err := s.link(ctx, actor, pkg.ID, itemIDsOf(items))
		if err != nil {
			return err
		}
		if err := s.repriceAll(ctx, moved, model.TriggerItemLink); err != nil {
			return err
		}

		created := *pkg
		afterCommit(ctx, func(ctx context.Context) {
			logger.FromContext(ctx).Info().
				Str("package_id", created.ID.Hex()).
				Str("total", created.TotalPrice.StringFixed(2)).
				Int("items", len(items)).
				Msg("Package created")
			s.notifier.PackagePriced(ctx, &created, true)
		})
		return nil
	})
	metrics.RecordReprice(string(model.TriggerPackageCreate), time.Since(start), repriceResult(err))
	if err != nil {
		return nil, err
	}
	return s.hydrate(ctx, pkg)
}

func (s *PackageServiceImpl) Update(ctx context.Context, actor model.Actor, id primitive.ObjectID, in UpdatePackageInput) (*model.PackageDetails, error) {
	if err := requireCaterer(actor); err != nil {
		return nil, err
	}
	if in.TotalPrice != nil && in.TotalPrice.IsNegative() {
		return nil, model.Validation(i18n.ErrKeyValidationFailed, "total_price must not be negative")
	}
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return nil, requiredField("name")
	}

	var updated *model.Package
	var repriced bool
	start := time.Now()
	err := inTransaction(ctx, s.tx, func(ctx context.Context) error {
		pkg, err := s.owned(ctx, actor.ID, id)
		if err != nil {
			return err
		}
		if in.ExpectedRevision != nil && *in.ExpectedRevision != pkg.Revision {
			return model.ErrConcurrentModification
		}
		previousTotal := pkg.TotalPrice

		if err := s.applyCore(pkg, in); err != nil {
			return err
		}

		minimumChanged, err := s.applyMinimumPeople(ctx, pkg, in)
		if err != nil {
			return err
		}

		if in.CategorySelections != nil {
			if err := s.selections.Validate(ctx, pkg.CustomisationType, *in.CategorySelections); err != nil {
				return err
			}
			pkg.CategorySelections = *in.CategorySelections
		}
		if !pkg.IsFixed() {
			pkg.CategorySelections = nil
		}

		if in.OccasionIDs != nil {
			ids, err := s.validateOccasions(ctx, *in.OccasionIDs)
			if err != nil {
				return err
			}
			pkg.OccasionIDs = ids
		}

		itemsChanged := false
		if in.Items != nil {
			if itemsChanged, err = s.replaceItems(ctx, actor, pkg, *in.Items); err != nil {
				return err
			}
		}

		linked, err := s.items.ListByPackage(ctx, pkg.ID)
		if err != nil {
			return fmt.Errorf("load package items: %w", err)
		}
		switch {
		case len(linked) == 0 && in.TotalPrice != nil:
			pkg.TotalPrice = roundTotal(*in.TotalPrice)
			pkg.IsCustomPrice = true
		case itemsChanged || minimumChanged || (len(linked) > 0 && pkg.IsCustomPrice):
			breakdown, err := s.pricing.Quote(ctx, linked, pkg.MinimumPeople)
			if err != nil {
				return err
			}
			applyBreakdown(pkg, breakdown)
			repriced = true
		}

		if err := s.packages.Update(ctx, pkg); err != nil {
			return err
		}

		changed := !previousTotal.Equal(pkg.TotalPrice)
		snapshot := *pkg
		afterCommit(ctx, func(ctx context.Context) {
			logger.FromContext(ctx).Info().
				Str("package_id", snapshot.ID.Hex()).
				Int64("revision", snapshot.Revision).
				Bool("items_changed", itemsChanged).
				Str("total", snapshot.TotalPrice.StringFixed(2)).
				Msg("Package updated")
			s.notifier.PackagePriced(ctx, &snapshot, changed)
		})
		updated = pkg
		return nil
	})
	if repriced || err != nil {
		metrics.RecordReprice(string(model.TriggerPackageUpdate), time.Since(start), repriceResult(err))
	}
	if err != nil {
		return nil, err
	}
	return s.hydrate(ctx, updated)
}

func (s *PackageServiceImpl) applyCore(pkg *model.Package, in UpdatePackageInput) error {
	if in.Name != nil {
		pkg.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		pkg.Description = *in.Description
	}
	if in.IsActive != nil {
		pkg.IsActive = *in.IsActive
	}
	if in.IsAvailable != nil {
		pkg.IsAvailable = *in.IsAvailable
	}
	if in.Currency != nil && *in.Currency != "" {
		pkg.Currency = strings.ToUpper(*in.Currency)
	}
	if in.CustomisationType != nil {
		if !in.CustomisationType.Valid() {
			return model.Validation(i18n.ErrKeyValidationFailed, "customisation_type must be FIXED or CUSTOMISABLE")
		}
		pkg.CustomisationType = *in.CustomisationType
	}
	return nil
}

// applyMinimumPeople sets the guest count of pkg and reports whether it changed.
// An explicit value pins the package. An explicit reprice_from_caterer_defaults=true unpins it
// and re-applies the floor; an absent flag re-applies the floor only to unpinned packages.
func (s *PackageServiceImpl) applyMinimumPeople(ctx context.Context, pkg *model.Package, in UpdatePackageInput) (bool, error) {
	before := pkg.MinimumPeople
	explicitReprice := in.RepriceFromCatererDefaults != nil && *in.RepriceFromCatererDefaults

	switch {
	case in.MinimumPeople != nil:
		if *in.MinimumPeople < 1 {
			return false, model.Validation(i18n.ErrKeyValidationFailed, "minimum_people must be at least 1")
		}
		pkg.MinimumPeople = *in.MinimumPeople
		pkg.MinimumPeoplePinned = true
	case explicitReprice || (in.RepriceFromCatererDefaults == nil && !pkg.MinimumPeoplePinned):
		settings, err := s.caterers.GetSettings(ctx, pkg.CatererID)
		if err != nil {
			return false, fmt.Errorf("load caterer settings: %w", err)
		}
		floor := settings.MinimumGuestsOrZero()
		if floor <= 0 {
			return false, model.ErrMinimumGuestsNotConfigured
		}
		pkg.MinimumPeople = floor
		pkg.MinimumPeoplePinned = false
	}
	return pkg.MinimumPeople != before, nil
}

// replaceItems makes the linked set of pkg equal to refs. Removed items go back to the drafts.
func (s *PackageServiceImpl) replaceItems(ctx context.Context, actor model.Actor, pkg *model.Package, refs ItemRefs) (bool, error) {
	target, err := s.resolveItems(ctx, actor.ID, refs, pkg.MinimumPeople)
	if err != nil {
		return false, err
	}
	current, err := s.items.ListByPackage(ctx, pkg.ID)
	if err != nil {
		return false, fmt.Errorf("load package items: %w", err)
	}

	targetSet := make(map[primitive.ObjectID]struct{}, len(target))
	for i := range target {
		targetSet[target[i].ID] = struct{}{}
	}
	currentSet := make(map[primitive.ObjectID]struct{}, len(current))
	for i := range current {
		currentSet[current[i].ID] = struct{}{}
	}

	var toLink, toUnlink []primitive.ObjectID
	for i := range target {
		if _, ok := currentSet[target[i].ID]; !ok {
			toLink = append(toLink, target[i].ID)
		}
	}
	for i := range current {
		if _, ok := targetSet[current[i].ID]; !ok {
			toUnlink = append(toUnlink, current[i].ID)
		}
	}

	if len(toUnlink) > 0 {
		if _, err := s.items.Unlink(ctx, pkg.ID, toUnlink); err != nil {
			return false, fmt.Errorf("unlink package items: %w", err)
		}
	}
	moved, err := s.link(ctx, actor, pkg.ID, toLink)
	if err != nil {
		return false, err
	}
	if err := s.repriceAll(ctx, moved, model.TriggerItemLink); err != nil {
		return false, err
	}

	if len(toLink)+len(toUnlink) > 0 {
		logger.FromContext(ctx).Debug().
			Str("package_id", pkg.ID.Hex()).
			Int("linked", len(toLink)).
			Int("unlinked", len(toUnlink)).
			Msg("Package items replaced")
	}
	return len(toLink)+len(toUnlink) > 0, nil
}

func (s *PackageServiceImpl) Delete(ctx context.Context, actor model.Actor, id primitive.ObjectID) error {
	if err := requireCaterer(actor); err != nil {
		return err
	}
	return inTransaction(ctx, s.tx, func(ctx context.Context) error {
		pkg, err := s.owned(ctx, actor.ID, id)
		if err != nil {
			return err
		}
		unlinked, err := s.items.Unlink(ctx, pkg.ID, nil)
		if err != nil {
			return fmt.Errorf("unlink package items: %w", err)
		}
		removed, err := s.addOns.DeleteByPackage(ctx, pkg.ID)
		if err != nil {
			return fmt.Errorf("delete add-ons: %w", err)
		}
		if err := s.packages.Delete(ctx, pkg.ID); err != nil {
			return fmt.Errorf("delete package: %w", err)
		}

		afterCommit(ctx, func(ctx context.Context) {
			logger.FromContext(ctx).Info().
				Str("package_id", pkg.ID.Hex()).
				Int64("items_unlinked", unlinked).
				Int64("add_ons_deleted", removed).
				Msg("Package deleted")
			s.notifier.PackageDeleted(ctx, pkg)
		})
		return nil
	})
}

func (s *PackageServiceImpl) Get(ctx context.Context, actor model.Actor, id primitive.ObjectID) (*model.PackageDetails, error) {
	if err := requireCaterer(actor); err != nil {
		return nil, err
	}
	pkg, err := s.owned(ctx, actor.ID, id)
	if err != nil {
		return nil, err
	}
	return s.hydrate(ctx, pkg)
}

func (s *PackageServiceImpl) List(ctx context.Context, actor model.Actor) ([]model.Package, error) {
	if err := requireCaterer(actor); err != nil {
		return nil, err
	}
	return s.packages.ListByCaterer(ctx, actor.ID)
}

// GetPublic returns the buyer view of an active package. Buyer-authored packages without a
// custom price are re-priced in the response only. Items with a price_at_time keep it.
func (s *PackageServiceImpl) GetPublic(ctx context.Context, id primitive.ObjectID) (*model.PackageDetails, error) {
	details, err := s.publicDetails(ctx, id)
	if err != nil {
		return nil, err
	}

	pkg := &details.Package
	if pkg.IsBuyerAuthored() && !pkg.IsCustomPrice {
		start := time.Now()
		items := make([]model.PackageItem, 0, len(details.Items))
		for i := range details.Items {
			items = append(items, details.Items[i].Item)
		}
		breakdown, err := s.pricing.Quote(ctx, items, pkg.MinimumPeople)
		metrics.RecordReprice(string(model.TriggerRead), time.Since(start), repriceResult(err))
		if err != nil {
			return nil, err
		}
		pkg.TotalPrice = breakdown.Total
	}
	return details, nil
}

func (s *PackageServiceImpl) publicDetails(ctx context.Context, id primitive.ObjectID) (*model.PackageDetails, error) {
	key := PackageViewKey(id)
	if raw, ok := s.cache.Get(ctx, key); ok {
		var details model.PackageDetails
		if err := json.Unmarshal(raw, &details); err == nil {
			return &details, nil
		}
		logger.FromContext(ctx).Warn().Str("key", key).Msg("Dropping undecodable cached package view")
		s.cache.Invalidate(ctx, key)
	}

	pkg, err := s.packages.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load package: %w", err)
	}
	if pkg == nil || !pkg.IsActive {
		return nil, model.ErrPackageNotFound
	}
	details, err := s.hydrate(ctx, pkg)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(details); err == nil {
		s.cache.Set(ctx, key, raw)
	}
	return details, nil
}

func (s *PackageServiceImpl) LinkItems(ctx context.Context, actor model.Actor, id primitive.ObjectID, itemIDs []primitive.ObjectID) (*model.PackageDetails, error) {
	if err := requireCaterer(actor); err != nil {
		return nil, err
	}
	var pkg *model.Package
	err := inTransaction(ctx, s.tx, func(ctx context.Context) error {
		if _, err := s.owned(ctx, actor.ID, id); err != nil {
			return err
		}
		moved, err := s.link(ctx, actor, id, itemIDs)
		if err != nil {
			return err
		}
		if err := s.repriceAll(ctx, moved, model.TriggerItemLink); err != nil {
			return err
		}
		pkg, err = s.pricing.Reprice(ctx, id, model.TriggerItemLink)
		return err
	})
	if err != nil {
		return nil, err
	}
	return s.hydrate(ctx, pkg)
}

func (s *PackageServiceImpl) CreateForBuyer(ctx context.Context, actor model.Actor, in BuyerPackageInput) (*model.PackageDetails, error) {
	if !actor.IsUser() {
		return nil, model.ErrInvalidBuyer
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, requiredField("name")
	}
	dishIDs := uniqueIDs(in.DishIDs)
	if len(dishIDs) == 0 {
		return nil, requiredField("dish_ids")
	}

	dishes, err := s.dishes.GetByIDs(ctx, dishIDs)
	if err != nil {
		return nil, fmt.Errorf("load dishes: %w", err)
	}
	if len(dishes) != len(dishIDs) {
		return nil, model.ErrDishNotFound
	}
	catererID := dishes[0].CatererID
	for i := range dishes {
		if !dishes[i].IsActive {
			return nil, model.ErrDishNotFound
		}
		if dishes[i].CatererID != catererID {
			return nil, model.ErrMixedCaterers
		}
	}

	settings, err := s.caterers.GetSettings(ctx, catererID)
	if err != nil {
		return nil, fmt.Errorf("load caterer settings: %w", err)
	}
	minimum, err := resolveMinimumPeople(in.MinimumPeople, settings)
	if err != nil {
		return nil, err
	}
	occasionIDs, err := s.validateOccasions(ctx, in.OccasionIDs)
	if err != nil {
		return nil, err
	}

	buyer := actor.ID
	pkg := &model.Package{
		CatererID:           catererID,
		UserID:              &buyer,
		CreatedBy:           model.ActorUser,
		Name:                name,
		Description:         in.Description,
		MinimumPeople:       minimum,
		MinimumPeoplePinned: in.MinimumPeople != nil,
		Currency:            s.resolveCurrency(dishes[0].Currency, settings),
		CustomisationType:   model.CustomisationCustomisable,
		IsActive:            true,
		IsAvailable:         true,
		OccasionIDs:         occasionIDs,
	}

	err = inTransaction(ctx, s.tx, func(ctx context.Context) error {
		items := draftItemsFor(catererID, dishes, minimum)
		if err := s.items.CreateMany(ctx, items); err != nil {
			return fmt.Errorf("create package items: %w", err)
		}

		resolved := make([]model.PackageItem, len(items))
		for i, item := range items {
			resolved[i] = *item
		}
		breakdown, err := s.pricing.Quote(ctx, resolved, minimum)
		if err != nil {
			return err
		}
		pkg.TotalPrice = breakdown.Total

		if err := s.packages.Create(ctx, pkg); err != nil {
			return fmt.Errorf("create package: %w", err)
		}
		matched, err := s.items.Link(ctx, catererID, pkg.ID, itemIDsOf(resolved))
		if err != nil {
			return fmt.Errorf("link package items: %w", err)
		}
		if matched != int64(len(resolved)) {
			return model.ErrItemsNotOwned
		}

		created := *pkg
		afterCommit(ctx, func(ctx context.Context) {
			logger.FromContext(ctx).Info().
				Str("package_id", created.ID.Hex()).
				Str("buyer_id", buyer.Hex()).
				Str("total", created.TotalPrice.StringFixed(2)).
				Msg("Buyer package created")
			s.notifier.PackagePriced(ctx, &created, true)
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.hydrate(ctx, pkg)
}

// resolveItems turns refs into the caterer's package items. Existing items are looked up
// first; the remaining ids must be dishes of the caterer, for which new drafts are created.
func (s *PackageServiceImpl) resolveItems(ctx context.Context, catererID primitive.ObjectID, refs ItemRefs, guests int) ([]model.PackageItem, error) {
	if refs.empty() {
		return nil, nil
	}

	itemIDs := uniqueIDs(refs.PackageItemIDs)
	existing, err := s.items.GetByIDsForCaterer(ctx, catererID, itemIDs)
	if err != nil {
		return nil, fmt.Errorf("load package items: %w", err)
	}
	found := make(map[primitive.ObjectID]struct{}, len(existing))
	for i := range existing {
		found[existing[i].ID] = struct{}{}
	}

	var dishIDs []primitive.ObjectID
	for _, id := range itemIDs {
		if _, ok := found[id]; !ok {
			dishIDs = append(dishIDs, id)
		}
	}
	dishIDs = uniqueIDs(append(dishIDs, refs.DishIDs...))

	resolved := existing
	if len(dishIDs) > 0 {
		dishes, err := s.dishes.GetByIDs(ctx, dishIDs)
		if err != nil {
			return nil, fmt.Errorf("load dishes: %w", err)
		}
		owned := make([]model.Dish, 0, len(dishes))
		for i := range dishes {
			if dishes[i].OwnedBy(catererID) {
				owned = append(owned, dishes[i])
			}
		}
		if len(owned) != len(dishIDs) {
			return nil, model.ErrItemsNotOwned
		}

		drafts := draftItemsFor(catererID, owned, guests)
		if err := s.items.CreateMany(ctx, drafts); err != nil {
			return nil, fmt.Errorf("create package items: %w", err)
		}
		for _, d := range drafts {
			resolved = append(resolved, *d)
		}
	}
	return resolved, nil
}

// link attaches items through the item registry and returns the packages they left.
func (s *PackageServiceImpl) link(ctx context.Context, actor model.Actor, packageID primitive.ObjectID, ids []primitive.ObjectID) ([]primitive.ObjectID, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return s.itemSvc.Link(ctx, actor, packageID, ids)
}

func (s *PackageServiceImpl) repriceAll(ctx context.Context, ids []primitive.ObjectID, trigger model.RepriceTrigger) error {
	for _, id := range ids {
		if _, err := s.pricing.Reprice(ctx, id, trigger); err != nil {
			return err
		}
	}
	return nil
}

// hydrate loads everything the package views show.
func (s *PackageServiceImpl) hydrate(ctx context.Context, pkg *model.Package) (*model.PackageDetails, error) {
	items, err := s.items.ListByPackage(ctx, pkg.ID)
	if err != nil {
		return nil, fmt.Errorf("load package items: %w", err)
	}
	dishes, err := s.dishes.GetByIDs(ctx, dishIDsOf(items))
	if err != nil {
		return nil, fmt.Errorf("load dishes: %w", err)
	}
	addOns, err := s.addOns.ListByPackage(ctx, pkg.ID)
	if err != nil {
		return nil, fmt.Errorf("load add-ons: %w", err)
	}
	occasions, err := s.catalog.GetOccasionsByIDs(ctx, pkg.OccasionIDs)
	if err != nil {
		return nil, fmt.Errorf("load occasions: %w", err)
	}

	categoryIDs := make([]primitive.ObjectID, 0, len(dishes)+len(pkg.CategorySelections))
	for i := range dishes {
		categoryIDs = append(categoryIDs, dishes[i].CategoryID)
	}
	for _, sel := range pkg.CategorySelections {
		categoryIDs = append(categoryIDs, sel.CategoryID)
	}
	categories, err := s.catalog.GetCategoriesByIDs(ctx, uniqueIDs(categoryIDs))
	if err != nil {
		return nil, fmt.Errorf("load categories: %w", err)
	}

	dishByID := dishIndex(dishes)
	summary := summaryOf(pkg)
	details := &model.PackageDetails{
		Package:    *pkg,
		Items:      make([]model.PackageItemDetails, 0, len(items)),
		AddOns:     addOns,
		Occasions:  occasions,
		Categories: categories,
	}
	for _, item := range items {
		details.Items = append(details.Items, model.PackageItemDetails{
			Item:    item,
			Dish:    dishByID[item.DishID],
			Package: summary,
		})
	}
	return details, nil
}

func (s *PackageServiceImpl) owned(ctx context.Context, catererID, id primitive.ObjectID) (*model.Package, error) {
	pkg, err := s.packages.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load package: %w", err)
	}
	if !pkg.OwnedBy(catererID) {
		return nil, model.ErrPackageNotFound
	}
	return pkg, nil
}

func (s *PackageServiceImpl) validateOccasions(ctx context.Context, ids []primitive.ObjectID) ([]primitive.ObjectID, error) {
	ids = uniqueIDs(ids)
	if len(ids) == 0 {
		return ids, nil
	}
	found, err := s.catalog.GetOccasionsByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load occasions: %w", err)
	}
	if len(found) != len(ids) {
		return nil, model.ErrOccasionNotFound
	}
	return ids, nil
}

func (s *PackageServiceImpl) resolveCurrency(requested string, settings *model.CatererSettings) string {
	if requested != "" {
		return strings.ToUpper(requested)
	}
	if settings != nil && settings.Currency != "" {
		return settings.Currency
	}
	return s.currency
}

// resolveMinimumPeople prefers the caller's value, then the caterer's configured floor.
func resolveMinimumPeople(requested *int, settings *model.CatererSettings) (int, error) {
	if requested != nil {
		if *requested < 1 {
			return 0, model.Validation(i18n.ErrKeyValidationFailed, "minimum_people must be at least 1")
		}
		return *requested, nil
	}
	floor := settings.MinimumGuestsOrZero()
	if floor <= 0 {
		return 0, model.ErrMinimumGuestsNotConfigured
	}
	return floor, nil
}

// draftItemsFor builds one unattached item per dish, priced at the dish's current price.
func draftItemsFor(catererID primitive.ObjectID, dishes []model.Dish, guests int) []*model.PackageItem {
	items := make([]*model.PackageItem, 0, len(dishes))
	for i := range dishes {
		price := dishes[i].Price
		items = append(items, &model.PackageItem{
			DishID:      dishes[i].ID,
			CatererID:   catererID,
			Attachment:  model.Unattached(),
			PeopleCount: guests,
			Quantity:    dishes[i].DefaultQuantity(),
			PriceAtTime: &price,
		})
	}
	return items
}
