package http

import (
	"github.com/gin-gonic/gin"

	"github.com/guttosm/catering-service/internal/domain/dto"
	"github.com/guttosm/catering-service/internal/middleware"
)

// CreateAddOn handles POST /api/packages/:id/add-ons.
//
// @Summary      Create add-on
// @Description  Adds an optional extra to a FIXED package. Prices are rounded to whole currency units.
// @Tags         Add-ons
// @Accept       json
// @Produce      json
// @Param        id path string true "Package ID"
// @Param        request body dto.AddOnRequest true "Add-on"
// @Success      201 {object} dto.SuccessResponse{data=dto.AddOnView}
// @Failure      400 {object} dto.ErrorResponse "Package is customisable or price is negative"
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/packages/{id}/add-ons [post]
func (h *Handler) CreateAddOn(c *gin.Context) {
	packageID, ok := pathID(c, "id")
	if !ok {
		return
	}
	req, ok := bind[dto.AddOnRequest](c)
	if !ok {
		return
	}

	addOn, err := h.addOns.Create(c.Request.Context(), currentActor(c), packageID, toAddOnInput(req))
	if err != nil {
		NewResponseBuilder(c).ServiceError(err)
		return
	}

	audit(c, middleware.AuditEvent{Action: "addon.create", ResourceType: "add_on", ResourceID: addOn.ID.Hex()})
	NewResponseBuilder(c).SuccessCreated(dto.NewAddOnView(addOn))
}

// ListAddOns handles GET /api/packages/:id/add-ons.
//
// @Summary      List add-ons
// @Tags         Add-ons
// @Produce      json
// @Param        id path string true "Package ID"
// @Success      200 {object} dto.SuccessResponse{data=[]dto.AddOnView}
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/packages/{id}/add-ons [get]
func (h *Handler) ListAddOns(c *gin.Context) {
	packageID, ok := pathID(c, "id")
	if !ok {
		return
	}
	addOns, err := h.addOns.List(c.Request.Context(), currentActor(c), packageID)
	if err != nil {
		NewResponseBuilder(c).ServiceError(err)
		return
	}
	NewResponseBuilder(c).SuccessOK(dto.NewAddOnViews(addOns))
}

// GetAddOn handles GET /api/packages/:id/add-ons/:addonId.
//
// @Summary      Get add-on
// @Tags         Add-ons
// @Produce      json
// @Param        id path string true "Package ID"
// @Param        addonId path string true "Add-on ID"
// @Success      200 {object} dto.SuccessResponse{data=dto.AddOnView}
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/packages/{id}/add-ons/{addonId} [get]
func (h *Handler) GetAddOn(c *gin.Context) {
	packageID, ok := pathID(c, "id")
	if !ok {
		return
	}
	id, ok := pathID(c, "addonId")
	if !ok {
		return
	}
	addOn, err := h.addOns.Get(c.Request.Context(), currentActor(c), packageID, id)
	if err != nil {
		NewResponseBuilder(c).ServiceError(err)
		return
	}
	NewResponseBuilder(c).SuccessOK(dto.NewAddOnView(addOn))
}

// UpdateAddOn handles PUT /api/packages/:id/add-ons/:addonId.
//
// @Summary      Replace add-on
// @Tags         Add-ons
// @Accept       json
// @Produce      json
// @Param        id path string true "Package ID"
// @Param        addonId path string true "Add-on ID"
// @Param        request body dto.AddOnRequest true "Add-on"
// @Success      200 {object} dto.SuccessResponse{data=dto.AddOnView}
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/packages/{id}/add-ons/{addonId} [put]
func (h *Handler) UpdateAddOn(c *gin.Context) {
	packageID, ok := pathID(c, "id")
	if !ok {
		return
	}
	id, ok := pathID(c, "addonId")
	if !ok {
		return
	}
	req, ok := bind[dto.AddOnRequest](c)
	if !ok {
		return
	}

	addOn, err := h.addOns.Update(c.Request.Context(), currentActor(c), packageID, id, toAddOnInput(req))
	if err != nil {
		NewResponseBuilder(c).ServiceError(err)
		return
	}

	audit(c, middleware.AuditEvent{Action: "addon.update", ResourceType: "add_on", ResourceID: id.Hex()})
	NewResponseBuilder(c).SuccessOK(dto.NewAddOnView(addOn))
}

// DeleteAddOn handles DELETE /api/packages/:id/add-ons/:addonId.
//
// @Summary      Delete add-on
// @Tags         Add-ons
// @Param        id path string true "Package ID"
// @Param        addonId path string true "Add-on ID"
// @Success      204
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/packages/{id}/add-ons/{addonId} [delete]
func (h *Handler) DeleteAddOn(c *gin.Context) {
	packageID, ok := pathID(c, "id")
	if !ok {
		return
	}
	id, ok := pathID(c, "addonId")
	if !ok {
		return
	}
	if err := h.addOns.Delete(c.Request.Context(), currentActor(c), packageID, id); err != nil {
		NewResponseBuilder(c).ServiceError(err)
		return
	}

	audit(c, middleware.AuditEvent{Action: "addon.delete", ResourceType: "add_on", ResourceID: id.Hex()})
	NewResponseBuilder(c).NoContent()
}
