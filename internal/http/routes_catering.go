package http

import (
	"github.com/gin-gonic/gin"

	"github.com/guttosm/catering-service/internal/domain/model"
	"github.com/guttosm/catering-service/internal/middleware"
)

// CatererRoutes registers the routes a caterer uses to manage dishes, items and packages.
type CatererRoutes struct {
	handler *Handler
}

// NewCatererRoutes creates a new CatererRoutes instance.
func NewCatererRoutes(handler *Handler) *CatererRoutes {
	return &CatererRoutes{handler: handler}
}

// RegisterProtectedRoutes registers caterer routes on an authenticated group.
func (r *CatererRoutes) RegisterProtectedRoutes(rg *gin.RouterGroup, _ *RouterConfig) {
	h := r.handler
	requireCaterer := middleware.RequireActor(model.ActorCaterer)

	packages := rg.Group("/packages", requireCaterer)
	packages.POST("", h.CreatePackage)
	packages.GET("", h.ListPackages)

	// Static item routes share the segment with :id.
	packages.POST("/items", h.CreatePackageItem)
	packages.GET("/items", h.ListPackageItems)
	packages.GET("/items/:id", h.GetPackageItem)
	packages.PUT("/items/:id", h.UpdatePackageItem)
	packages.DELETE("/items/:id", h.DeletePackageItem)

	packages.PUT("/:id", h.UpdatePackage)
	packages.DELETE("/:id", h.DeletePackage)
	packages.GET("/:id/manage", h.GetPackageForCaterer)
	packages.POST("/:id/items/link", h.LinkPackageItems)

	packages.POST("/:id/add-ons", h.CreateAddOn)
	packages.GET("/:id/add-ons", h.ListAddOns)
	packages.GET("/:id/add-ons/:addonId", h.GetAddOn)
	packages.PUT("/:id/add-ons/:addonId", h.UpdateAddOn)
	packages.DELETE("/:id/add-ons/:addonId", h.DeleteAddOn)

	dishes := rg.Group("/dishes", requireCaterer)
	dishes.POST("", h.CreateDish)
	dishes.GET("", h.ListDishes)
	dishes.GET("/:id", h.GetDish)
	dishes.PUT("/:id", h.UpdateDish)
	dishes.DELETE("/:id", h.DeleteDish)

	settings := rg.Group("/caterers/me", requireCaterer)
	settings.GET("/settings", h.GetCatererSettings)
	settings.PUT("/settings", h.PutCatererSettings)
}

// BuyerRoutes registers the routes available to buyers.
type BuyerRoutes struct {
	handler *Handler
}

// NewBuyerRoutes creates a new BuyerRoutes instance.
func NewBuyerRoutes(handler *Handler) *BuyerRoutes {
	return &BuyerRoutes{handler: handler}
}

// RegisterProtectedRoutes registers buyer routes on an authenticated group.
func (r *BuyerRoutes) RegisterProtectedRoutes(rg *gin.RouterGroup, _ *RouterConfig) {
	user := rg.Group("/user", middleware.RequireActor(model.ActorUser))
	user.POST("/packages", r.handler.CreateBuyerPackage)
}

// CatalogRoutes registers the public catalog routes.
type CatalogRoutes struct {
	handler *Handler
}

// NewCatalogRoutes creates a new CatalogRoutes instance.
func NewCatalogRoutes(handler *Handler) *CatalogRoutes {
	return &CatalogRoutes{handler: handler}
}

// RegisterPublicRoutes registers catalog routes that need no authentication.
func (r *CatalogRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	catalog := rg.Group("/catalog")
	catalog.GET("/packages/:id", r.handler.GetPublicPackage)
	catalog.GET("/categories", r.handler.ListCategories)
	catalog.GET("/occasions", r.handler.ListOccasions)
}

var (
	_ ProtectedRouteGroup = (*CatererRoutes)(nil)
	_ ProtectedRouteGroup = (*BuyerRoutes)(nil)
	_ PublicRouteGroup    = (*CatalogRoutes)(nil)
)
