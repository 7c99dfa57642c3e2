package http

import (
	"github.com/gin-gonic/gin"

	"github.com/guttosm/catering-service/internal/domain/dto"
	"github.com/guttosm/catering-service/internal/middleware"
)

// GetCatererSettings handles GET /api/caterers/me/settings.
//
// @Summary      Get caterer settings
// @Tags         Caterer
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=dto.CatererSettingsView}
// @Security     BearerAuth
// @Router       /api/caterers/me/settings [get]
func (h *Handler) GetCatererSettings(c *gin.Context) {
	settings, err := h.settings.Get(c.Request.Context(), currentActor(c))
	if err != nil {
		NewResponseBuilder(c).ServiceError(err)
		return
	}
	NewResponseBuilder(c).SuccessOK(dto.NewCatererSettingsView(settings))
}

// PutCatererSettings handles PUT /api/caterers/me/settings.
//
// @Summary      Set caterer settings
// @Description  Sets the guest floor used to price packages without an explicit minimum_people, and the default currency.
// @Tags         Caterer
// @Accept       json
// @Produce      json
// @Param        request body dto.CatererSettingsRequest true "Settings"
// @Success      200 {object} dto.SuccessResponse{data=dto.CatererSettingsView}
// @Failure      400 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/caterers/me/settings [put]
func (h *Handler) PutCatererSettings(c *gin.Context) {
	req, ok := bind[dto.CatererSettingsRequest](c)
	if !ok {
		return
	}

	settings, err := h.settings.Upsert(c.Request.Context(), currentActor(c), req.MinimumGuests, req.Currency)
	if err != nil {
		NewResponseBuilder(c).ServiceError(err)
		return
	}

	audit(c, middleware.AuditEvent{
		Action:       "settings.update",
		ResourceType: "caterer",
		ResourceID:   settings.CatererID.Hex(),
		Fields:       map[string]interface{}{"minimum_guests": req.MinimumGuests},
	})
	NewResponseBuilder(c).SuccessOK(dto.NewCatererSettingsView(settings))
}

// ListCategories handles GET /api/catalog/categories.
//
// @Summary      List dish categories
// @Tags         Catalog
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=[]dto.ReferenceView}
// @Router       /api/catalog/categories [get]
func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.catalog.ListCategories(c.Request.Context())
	if err != nil {
		NewResponseBuilder(c).ServiceError(err)
		return
	}
	NewResponseBuilder(c).SuccessOK(dto.NewCategoryViews(categories))
}

// ListOccasions handles GET /api/catalog/occasions.
//
// @Summary      List occasions
// @Tags         Catalog
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=[]dto.ReferenceView}
// @Router       /api/catalog/occasions [get]
func (h *Handler) ListOccasions(c *gin.Context) {
	occasions, err := h.catalog.ListOccasions(c.Request.Context())
	if err != nil {
		NewResponseBuilder(c).ServiceError(err)
		return
	}
	NewResponseBuilder(c).SuccessOK(dto.NewOccasionViews(occasions))
}
