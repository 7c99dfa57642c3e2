package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/catering-service/internal/domain/dto"
	"github.com/guttosm/catering-service/internal/middleware"
)

// CreatePackageItem handles POST /api/packages/items.
//
// @Summary      Create package item
// @Description  Creates an item for one of the caterer's dishes. Without package_id it is a draft; otherwise the package is repriced.
// @Tags         Package items
// @Accept       json
// @Produce      json
// @Param        request body dto.CreatePackageItemRequest true "Item"
// @Success      201 {object} dto.SuccessResponse{data=dto.PackageItemView}
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse "Dish or package not found"
// @Security     BearerAuth
// @Router       /api/packages/items [post]
func (h *Handler) CreatePackageItem(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, ok := bind[dto.CreatePackageItemRequest](c)
	if !ok {
		return
	}
	in, err := toCreateItemInput(req)
	if err != nil {
		builder.ServiceError(err)
		return
	}

	details, err := h.items.Create(c.Request.Context(), currentActor(c), in)
	if err != nil {
		builder.ServiceError(err)
		return
	}

	audit(c, middleware.AuditEvent{Action: "item.create", ResourceType: "package_item", ResourceID: details.Item.ID.Hex()})
	builder.SuccessCreated(dto.NewPackageItemView(details))
}

// ListPackageItems handles GET /api/packages/items.
//
// @Summary      List package items by category
// @Description  Lists the caterer's items grouped by dish category. Every category is returned, empty ones included.
// @Tags         Package items
// @Produce      json
// @Param        draft query bool false "Only items not linked to a package"
// @Success      200 {object} dto.SuccessResponse{data=[]dto.ItemGroupView}
// @Failure      400 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/packages/items [get]
func (h *Handler) ListPackageItems(c *gin.Context) {
	draftOnly, err := strconv.ParseBool(c.DefaultQuery("draft", "false"))
	if err != nil {
		NewResponseBuilder(c).ServiceError(&dto.ValidationError{Field: "draft", Message: "must be a boolean"})
		return
	}

	groups, err := h.items.ListGrouped(c.Request.Context(), currentActor(c), draftOnly)
	if err != nil {
		NewResponseBuilder(c).ServiceError(err)
		return
	}
	NewResponseBuilder(c).SuccessOK(dto.NewItemGroupViews(groups))
}

// GetPackageItem handles GET /api/packages/items/:id.
//
// @Summary      Get package item
// @Tags         Package items
// @Produce      json
// @Param        id path string true "Item ID"
// @Success      200 {object} dto.SuccessResponse{data=dto.PackageItemView}
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/packages/items/{id} [get]
func (h *Handler) GetPackageItem(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	details, err := h.items.Get(c.Request.Context(), currentActor(c), id)
	if err != nil {
		NewResponseBuilder(c).ServiceError(err)
		return
	}
	NewResponseBuilder(c).SuccessOK(dto.NewPackageItemView(details))
}

// UpdatePackageItem handles PUT /api/packages/items/:id.
//
// @Summary      Update package item
// @Description  Patches an item. A null or empty package_id detaches it; omitting the key keeps the link. The packages it leaves and joins are repriced.
// @Tags         Package items
// @Accept       json
// @Produce      json
// @Param        id path string true "Item ID"
// @Param        request body dto.UpdatePackageItemRequest true "Patch"
// @Success      200 {object} dto.SuccessResponse{data=dto.PackageItemView}
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/packages/items/{id} [put]
func (h *Handler) UpdatePackageItem(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	req, ok := bind[dto.UpdatePackageItemRequest](c)
	if !ok {
		return
	}
	in, err := toUpdateItemInput(req)
	if err != nil {
		builder.ServiceError(err)
		return
	}

	details, err := h.items.Update(c.Request.Context(), currentActor(c), id, in)
	if err != nil {
		builder.ServiceError(err)
		return
	}

	audit(c, middleware.AuditEvent{Action: "item.update", ResourceType: "package_item", ResourceID: id.Hex()})
	builder.SuccessOK(dto.NewPackageItemView(details))
}

// DeletePackageItem handles DELETE /api/packages/items/:id.
//
// @Summary      Delete package item
// @Description  Deletes an item and reprices the package it was linked to.
// @Tags         Package items
// @Param        id path string true "Item ID"
// @Success      204
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/packages/items/{id} [delete]
func (h *Handler) DeletePackageItem(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.items.Delete(c.Request.Context(), currentActor(c), id); err != nil {
		NewResponseBuilder(c).ServiceError(err)
		return
	}

	audit(c, middleware.AuditEvent{Action: "item.delete", ResourceType: "package_item", ResourceID: id.Hex()})
	NewResponseBuilder(c).NoContent()
}
