// Package app provides service initialization.
package app

import (
	"github.com/guttosm/catering-service/config"
	"github.com/guttosm/catering-service/internal/events"
	"github.com/guttosm/catering-service/internal/service"
	"github.com/guttosm/catering-service/internal/service/cache"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Packages service.PackageService
	Items    service.PackageItemService
	AddOns   service.AddOnService
	Dishes   service.DishService
	Settings service.CatererSettingsService
	Catalog  service.CatalogService
	Tokens   service.TokenService
}

// InitializeServices wires the business services over the repositories.
func InitializeServices(
	cfg config.Config,
	db *DatabaseComponents,
	viewCache cache.Cache,
	publisher events.Publisher,
) *ServiceComponents {
	notifier := service.NewPackageNotifier(viewCache, publisher)
	pricing := service.NewPricingService(
		service.NewPricingCalculator(),
		db.Packages,
		db.Items,
		db.Dishes,
		db.Tx,
		notifier,
	)
	items := service.NewPackageItemService(db.Items, db.Dishes, db.Packages, db.Catalog, db.Tx, pricing)

	packages := service.NewPackageService(service.PackageServiceDeps{
		Packages:        db.Packages,
		Items:           db.Items,
		Dishes:          db.Dishes,
		AddOns:          db.AddOns,
		Catalog:         db.Catalog,
		Caterers:        db.Caterers,
		Tx:              db.Tx,
		Pricing:         pricing,
		Selections:      service.NewCategorySelectionValidator(db.Catalog),
		ItemService:     items,
		Notifier:        notifier,
		Cache:           viewCache,
		DefaultCurrency: cfg.Pricing.DefaultCurrency,
	})

	return &ServiceComponents{
		Packages: packages,
		Items:    items,
		AddOns:   service.NewAddOnService(db.AddOns, db.Packages, notifier),
		Dishes:   service.NewDishService(db.Dishes, db.Items, db.Catalog, db.Caterers, cfg.Pricing.DefaultCurrency),
		Settings: service.NewCatererSettingsService(db.Caterers),
		Catalog:  service.NewCatalogService(db.Catalog),
		Tokens:   service.NewTokenService(service.NewTokenConfigFromAuthConfig(cfg.Auth)),
	}
}
