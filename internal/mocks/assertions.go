package mocks

import (
	"github.com/guttosm/catering-service/internal/events"
	"github.com/guttosm/catering-service/internal/repository"
	"github.com/guttosm/catering-service/internal/service"
	"github.com/guttosm/catering-service/internal/service/cache"
)

var (
	_ repository.Transactor                     = (*MockTransactor)(nil)
	_ repository.DishRepositoryInterface        = (*MockDishRepositoryInterface)(nil)
	_ repository.PackageItemRepositoryInterface = (*MockPackageItemRepositoryInterface)(nil)
	_ repository.PackageRepositoryInterface     = (*MockPackageRepositoryInterface)(nil)
	_ repository.AddOnRepositoryInterface       = (*MockAddOnRepositoryInterface)(nil)
	_ repository.CatalogRepositoryInterface     = (*MockCatalogRepositoryInterface)(nil)
	_ repository.CatererRepositoryInterface     = (*MockCatererRepositoryInterface)(nil)

	_ service.DishService            = (*MockDishService)(nil)
	_ service.PackageItemService     = (*MockPackageItemService)(nil)
	_ service.PackageService         = (*MockPackageService)(nil)
	_ service.AddOnService           = (*MockAddOnService)(nil)
	_ service.CatererSettingsService = (*MockCatererSettingsService)(nil)
	_ service.CatalogService         = (*MockCatalogService)(nil)
	_ service.PackageNotifier        = (*MockPackageNotifier)(nil)

	_ events.Publisher = (*MockPublisher)(nil)
	_ cache.Cache      = (*MockCache)(nil)
)
