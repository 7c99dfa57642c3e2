package service

import (
	"context"
	"fmt"
	"time"

	"github.com/guttosm/catering-service/internal/domain/model"
	"github.com/guttosm/catering-service/internal/logger"
	"github.com/guttosm/catering-service/internal/metrics"
	"github.com/guttosm/catering-service/internal/repository"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PricingService loads what a package price depends on, computes it and persists it.
type PricingService interface {
	// Quote prices items for guests, loading the dishes they reference.
	Quote(ctx context.Context, items []model.PackageItem, guests int) (model.PriceBreakdown, error)
	// PriceLinked prices the items currently linked to pkg for pkg.MinimumPeople.
	PriceLinked(ctx context.Context, pkg *model.Package) (model.PriceBreakdown, error)
	// Reprice recomputes and stores the total of a package.
	Reprice(ctx context.Context, packageID primitive.ObjectID, trigger model.RepriceTrigger) (*model.Package, error)
}

// PricingServiceImpl implements PricingService.
type PricingServiceImpl struct {
	calculator PricingCalculator
	packages   repository.PackageRepositoryInterface
	items      repository.PackageItemRepositoryInterface
	dishes     repository.DishRepositoryInterface
	tx         repository.Transactor
	notifier   PackageNotifier
}

// NewPricingService creates a new pricing service.
func NewPricingService(
	calculator PricingCalculator,
	packages repository.PackageRepositoryInterface,
	items repository.PackageItemRepositoryInterface,
	dishes repository.DishRepositoryInterface,
	tx repository.Transactor,
	notifier PackageNotifier,
) PricingService {
	if calculator == nil {
		calculator = NewPricingCalculator()
	}
	if notifier == nil {
		notifier = NewPackageNotifier(nil, nil)
	}
	return &PricingServiceImpl{
		calculator: calculator,
		packages:   packages,
		items:      items,
		dishes:     dishes,
		tx:         tx,
		notifier:   notifier,
	}
}

func (s *PricingServiceImpl) Quote(ctx context.Context, items []model.PackageItem, guests int) (model.PriceBreakdown, error) {
	var dishes map[primitive.ObjectID]*model.Dish
	if len(items) > 0 {
		found, err := s.dishes.GetByIDs(ctx, dishIDsOf(items))
		if err != nil {
			return model.PriceBreakdown{}, fmt.Errorf("load dishes: %w", err)
		}
		dishes = dishIndex(found)
	}
	return s.calculator.Calculate(items, dishes, guests), nil
}

func (s *PricingServiceImpl) PriceLinked(ctx context.Context, pkg *model.Package) (model.PriceBreakdown, error) {
	items, err := s.items.ListByPackage(ctx, pkg.ID)
	if err != nil {
		return model.PriceBreakdown{}, fmt.Errorf("load package items: %w", err)
	}
	return s.Quote(ctx, items, pkg.MinimumPeople)
}

func (s *PricingServiceImpl) Reprice(ctx context.Context, packageID primitive.ObjectID, trigger model.RepriceTrigger) (*model.Package, error) {
	start := time.Now()
	var repriced *model.Package

	err := inTransaction(ctx, s.tx, func(ctx context.Context) error {
		pkg, err := s.packages.GetByID(ctx, packageID)
		if err != nil {
			return fmt.Errorf("load package: %w", err)
		}
		if pkg == nil {
			return model.ErrPackageNotFound
		}

		breakdown, err := s.PriceLinked(ctx, pkg)
		if err != nil {
			return err
		}

		previous := pkg.TotalPrice
		if !applyBreakdown(pkg, breakdown) {
			repriced = pkg
			afterCommit(ctx, func(ctx context.Context) {
				s.notifier.PackagePriced(ctx, pkg, false)
			})
			return nil
		}

		if err := s.packages.Update(ctx, pkg); err != nil {
			return err
		}
		repriced = pkg

		changed := !previous.Equal(pkg.TotalPrice)
		afterCommit(ctx, func(ctx context.Context) {
			logger.FromContext(ctx).Info().
				Str("package_id", pkg.ID.Hex()).
				Str("trigger", string(trigger)).
				Str("previous_total", previous.StringFixed(2)).
				Str("total", pkg.TotalPrice.StringFixed(2)).
				Int("lines", len(breakdown.Lines)).
				Msg("Package repriced")
			s.notifier.PackagePriced(ctx, pkg, changed)
		})
		return nil
	})

	metrics.RecordReprice(string(trigger), time.Since(start), repriceResult(err))
	if err != nil {
		return nil, err
	}
	return repriced, nil
}

// applyBreakdown stores a computed price on pkg and reports whether a write is needed.
// A package without linked items keeps a custom price set by its caterer.
func applyBreakdown(pkg *model.Package, b model.PriceBreakdown) bool {
	if len(b.Lines) == 0 && pkg.IsCustomPrice {
		return false
	}
	if pkg.TotalPrice.Equal(b.Total) && !pkg.IsCustomPrice {
		return false
	}
	pkg.TotalPrice = b.Total
	pkg.IsCustomPrice = false
	return true
}

func repriceResult(err error) string {
	switch {
	case err == nil:
		return "success"
	case isKind(err, model.KindConflict):
		return "conflict"
	case isKind(err, model.KindNotFound):
		return "not_found"
	default:
		return "error"
	}
}

func isKind(err error, kind model.ErrorKind) bool {
	de, ok := model.AsDomainError(err)
	return ok && de.Kind == kind
}

// roundTotal rounds a caller supplied price the way computed totals are rounded.
func roundTotal(d decimal.Decimal) decimal.Decimal {
	return d.Round(DefaultPricePlaces)
}
