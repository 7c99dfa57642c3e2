package service

import (
	"context"
	"time"

	"github.com/guttosm/catering-service/internal/domain/model"
	"github.com/guttosm/catering-service/internal/events"
	"github.com/guttosm/catering-service/internal/logger"
	"github.com/guttosm/catering-service/internal/service/cache"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const packageViewKeyPrefix = "package:view:"

// PackageViewKey is the cache key of a package's public view.
func PackageViewKey(id primitive.ObjectID) string {
	return packageViewKeyPrefix + id.Hex()
}

// PackageNotifier propagates package changes to the view cache and to event consumers.
type PackageNotifier interface {
	// PackageChanged drops the cached view of a package.
	PackageChanged(ctx context.Context, packageID primitive.ObjectID)
	// PackagePriced drops the cached view and emits package.priced when the price changed.
	PackagePriced(ctx context.Context, pkg *model.Package, changed bool)
	// PackageDeleted drops the cached view and emits package.deleted.
	PackageDeleted(ctx context.Context, pkg *model.Package)
}

// PackageNotifierImpl implements PackageNotifier. Publish failures are logged, never returned:
// the package write has already committed.
type PackageNotifierImpl struct {
	cache     cache.Cache
	publisher events.Publisher
}

// NewPackageNotifier creates a notifier. Nil dependencies fall back to no-ops.
func NewPackageNotifier(c cache.Cache, publisher events.Publisher) PackageNotifier {
	if c == nil {
		c = cache.Noop{}
	}
	if publisher == nil {
		publisher = events.Noop{}
	}
	return &PackageNotifierImpl{cache: c, publisher: publisher}
}

func (n *PackageNotifierImpl) PackageChanged(ctx context.Context, packageID primitive.ObjectID) {
	n.cache.Invalidate(ctx, PackageViewKey(packageID))
}

func (n *PackageNotifierImpl) PackagePriced(ctx context.Context, pkg *model.Package, changed bool) {
	n.PackageChanged(ctx, pkg.ID)
	if !changed {
		return
	}

	evt := events.PackagePriced{
		PackageID:      pkg.ID.Hex(),
		CatererID:      pkg.CatererID.Hex(),
		TotalPrice:     pkg.TotalPrice.StringFixed(2),
		PricePerPerson: pkg.PricePerPerson().StringFixed(2),
		MinimumPeople:  pkg.MinimumPeople,
		Currency:       pkg.Currency,
		Revision:       pkg.Revision,
		CreatedBy:      string(pkg.CreatedBy),
		IsActive:       pkg.IsActive,
		OccurredAt:     time.Now().UTC(),
	}
	if err := n.publisher.Publish(ctx, events.RoutingKeyPackagePriced, evt); err != nil {
		logger.FromContext(ctx).Warn().
			Err(err).
			Str("package_id", evt.PackageID).
			Msg("Failed to publish package.priced event")
		return
	}
	logger.FromContext(ctx).Debug().
		Str("package_id", evt.PackageID).
		Str("total_price", evt.TotalPrice).
		Msg("Published package.priced event")
}

func (n *PackageNotifierImpl) PackageDeleted(ctx context.Context, pkg *model.Package) {
	n.PackageChanged(ctx, pkg.ID)

	evt := events.PackageDeleted{
		PackageID:  pkg.ID.Hex(),
		CatererID:  pkg.CatererID.Hex(),
		OccurredAt: time.Now().UTC(),
	}
	if err := n.publisher.Publish(ctx, events.RoutingKeyPackageDeleted, evt); err != nil {
		logger.FromContext(ctx).Warn().
			Err(err).
			Str("package_id", evt.PackageID).
			Msg("Failed to publish package.deleted event")
	}
}
