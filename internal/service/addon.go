package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/guttosm/catering-service/internal/domain/model"
	"github.com/guttosm/catering-service/internal/repository"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AddOnInput carries the writable fields of an add-on. Price is rounded half-up to whole units.
type AddOnInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Currency    string
	IsActive    *bool
}

// AddOnService manages the add-ons of a caterer's packages.
type AddOnService interface {
	Create(ctx context.Context, actor model.Actor, packageID primitive.ObjectID, in AddOnInput) (*model.AddOn, error)
	Get(ctx context.Context, actor model.Actor, packageID, id primitive.ObjectID) (*model.AddOn, error)
	List(ctx context.Context, actor model.Actor, packageID primitive.ObjectID) ([]model.AddOn, error)
	Update(ctx context.Context, actor model.Actor, packageID, id primitive.ObjectID, in AddOnInput) (*model.AddOn, error)
	Delete(ctx context.Context, actor model.Actor, packageID, id primitive.ObjectID) error
}

// AddOnServiceImpl implements AddOnService.
type AddOnServiceImpl struct {
	addOns   repository.AddOnRepositoryInterface
	packages repository.PackageRepositoryInterface
	notifier PackageNotifier
}

// NewAddOnService creates a new add-on service.
func NewAddOnService(addOns repository.AddOnRepositoryInterface, packages repository.PackageRepositoryInterface, notifier PackageNotifier) AddOnService {
	if notifier == nil {
		notifier = NewPackageNotifier(nil, nil)
	}
	return &AddOnServiceImpl{addOns: addOns, packages: packages, notifier: notifier}
}

func (s *AddOnServiceImpl) Create(ctx context.Context, actor model.Actor, packageID primitive.ObjectID, in AddOnInput) (*model.AddOn, error) {
	pkg, err := s.ownedPackage(ctx, actor, packageID)
	if err != nil {
		return nil, err
	}
	price, err := normalizeAddOn(&in)
	if err != nil {
		return nil, err
	}
	if !pkg.IsFixed() {
		return nil, model.ErrAddOnRequiresFixed
	}

	currency := pkg.Currency
	if in.Currency != "" {
		currency = strings.ToUpper(in.Currency)
	}
	addOn := &model.AddOn{
		PackageID:   pkg.ID,
		Name:        in.Name,
		Description: in.Description,
		Price:       price,
		Currency:    currency,
		IsActive:    boolOr(in.IsActive, true),
	}
	if err := s.addOns.Create(ctx, addOn); err != nil {
		return nil, fmt.Errorf("create add-on: %w", err)
	}
	s.notifier.PackageChanged(ctx, pkg.ID)
	return addOn, nil
}

func (s *AddOnServiceImpl) Get(ctx context.Context, actor model.Actor, packageID, id primitive.ObjectID) (*model.AddOn, error) {
	if _, err := s.ownedPackage(ctx, actor, packageID); err != nil {
		return nil, err
	}
	return s.get(ctx, packageID, id)
}

func (s *AddOnServiceImpl) List(ctx context.Context, actor model.Actor, packageID primitive.ObjectID) ([]model.AddOn, error) {
	if _, err := s.ownedPackage(ctx, actor, packageID); err != nil {
		return nil, err
	}
	return s.addOns.ListByPackage(ctx, packageID)
}

// Update does not re-check the package type: an add-on survives a later switch to CUSTOMISABLE.
func (s *AddOnServiceImpl) Update(ctx context.Context, actor model.Actor, packageID, id primitive.ObjectID, in AddOnInput) (*model.AddOn, error) {
	if _, err := s.ownedPackage(ctx, actor, packageID); err != nil {
		return nil, err
	}
	addOn, err := s.get(ctx, packageID, id)
	if err != nil {
		return nil, err
	}
	price, err := normalizeAddOn(&in)
	if err != nil {
		return nil, err
	}

	addOn.Name = in.Name
	addOn.Description = in.Description
	addOn.Price = price
	if in.Currency != "" {
		addOn.Currency = strings.ToUpper(in.Currency)
	}
	addOn.IsActive = boolOr(in.IsActive, addOn.IsActive)

	if err := s.addOns.Update(ctx, addOn); err != nil {
		return nil, err
	}
	s.notifier.PackageChanged(ctx, packageID)
	return addOn, nil
}

func (s *AddOnServiceImpl) Delete(ctx context.Context, actor model.Actor, packageID, id primitive.ObjectID) error {
	if _, err := s.ownedPackage(ctx, actor, packageID); err != nil {
		return err
	}
	if _, err := s.get(ctx, packageID, id); err != nil {
		return err
	}
	if err := s.addOns.Delete(ctx, packageID, id); err != nil {
		return fmt.Errorf("delete add-on: %w", err)
	}
	s.notifier.PackageChanged(ctx, packageID)
	return nil
}

func (s *AddOnServiceImpl) get(ctx context.Context, packageID, id primitive.ObjectID) (*model.AddOn, error) {
	addOn, err := s.addOns.GetByID(ctx, packageID, id)
	if err != nil {
		return nil, fmt.Errorf("load add-on: %w", err)
	}
	if addOn == nil {
		return nil, model.ErrAddOnNotFound
	}
	return addOn, nil
}

func (s *AddOnServiceImpl) ownedPackage(ctx context.Context, actor model.Actor, packageID primitive.ObjectID) (*model.Package, error) {
	if err := requireCaterer(actor); err != nil {
		return nil, err
	}
	pkg, err := s.packages.GetByID(ctx, packageID)
	if err != nil {
		return nil, fmt.Errorf("load package: %w", err)
	}
	if !pkg.OwnedBy(actor.ID) {
		return nil, model.ErrPackageNotFound
	}
	return pkg, nil
}

// normalizeAddOn trims the name and converts the price to whole units.
func normalizeAddOn(in *AddOnInput) (int64, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return 0, requiredField("name")
	}
	if in.Price.IsNegative() {
		return 0, model.ErrAddOnInvalidPrice
	}
	return in.Price.Round(0).IntPart(), nil
}
