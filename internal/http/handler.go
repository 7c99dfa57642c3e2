package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/catering-service/internal/i18n"
	"github.com/guttosm/catering-service/internal/middleware"
	"github.com/guttosm/catering-service/internal/service"
)

// Services groups the business services the HTTP layer calls.
type Services struct {
	Packages service.PackageService
	Items    service.PackageItemService
	AddOns   service.AddOnService
	Dishes   service.DishService
	Settings service.CatererSettingsService
	Catalog  service.CatalogService
}

// Handler provides HTTP handlers for the catering API.
type Handler struct {
	packages service.PackageService
	items    service.PackageItemService
	addOns   service.AddOnService
	dishes   service.DishService
	settings service.CatererSettingsService
	catalog  service.CatalogService
}

// NewHandler creates a new Handler instance.
func NewHandler(s Services) *Handler {
	return &Handler{
		packages: s.Packages,
		items:    s.Items,
		addOns:   s.AddOns,
		dishes:   s.Dishes,
		settings: s.Settings,
		catalog:  s.Catalog,
	}
}

// audit records a successful mutation when the router installed a logging service.
func audit(c *gin.Context, ev middleware.AuditEvent) {
	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok && ls != nil {
			middleware.AuditLog(ls, c, ev)
		}
	}
}

// bind decodes the body into T, answering 400 when it is malformed.
func bind[T any](c *gin.Context) (*T, bool) {
	req, err := BuildRequest[T](c)
	if err != nil {
		NewResponseBuilder(c).Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return nil, false
	}
	return req, true
}
