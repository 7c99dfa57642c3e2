package http

import (
	"github.com/gin-gonic/gin"

	"github.com/guttosm/catering-service/internal/domain/dto"
	"github.com/guttosm/catering-service/internal/middleware"
)

// CreatePackage handles POST /api/packages.
//
// @Summary      Create package
// @Description  Creates a package from existing package items and raw dishes, prices it for the minimum guest count and links every item. Dish ids become new items owned by the caterer.
// @Tags         Packages
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.CreatePackageRequest true "Package"
// @Success      201 {object} dto.SuccessResponse{data=dto.PackageDetailsView}
// @Failure      400 {object} dto.ErrorResponse "Invalid input"
// @Failure      403 {object} dto.ErrorResponse "Caller is not a caterer"
// @Failure      404 {object} dto.ErrorResponse "Item, dish, category or occasion not found"
// @Failure      422 {object} dto.ErrorResponse "Minimum guests not configured"
// @Security     BearerAuth
// @Router       /api/packages [post]
func (h *Handler) CreatePackage(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, ok := bind[dto.CreatePackageRequest](c)
	if !ok {
		return
	}
	in, err := toCreatePackageInput(req)
	if err != nil {
		builder.ServiceError(err)
		return
	}

	details, err := h.packages.Create(c.Request.Context(), currentActor(c), in)
	if err != nil {
		builder.ServiceError(err)
		return
	}

	audit(c, middleware.AuditEvent{
		Action:       "package.create",
		ResourceType: "package",
		ResourceID:   details.Package.ID.Hex(),
		Fields:       map[string]interface{}{"total_price": dto.Money(details.Package.TotalPrice), "items": len(details.Items)},
	})
	builder.SuccessCreated(dto.NewPackageDetailsView(details))
}

// UpdatePackage handles PUT /api/packages/:id.
//
// @Summary      Update package
// @Description  Patches a package. Absent keys are left untouched; item lists are diffed against the linked items and removed items become drafts. Send revision to reject stale writes.
// @Tags         Packages
// @Accept       json
// @Produce      json
// @Param        id path string true "Package ID"
// @Param        request body dto.UpdatePackageRequest true "Patch"
// @Success      200 {object} dto.SuccessResponse{data=dto.PackageDetailsView}
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse "Package modified concurrently"
// @Failure      422 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/packages/{id} [put]
func (h *Handler) UpdatePackage(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	req, ok := bind[dto.UpdatePackageRequest](c)
	if !ok {
		return
	}
	in, err := toUpdatePackageInput(req)
	if err != nil {
		builder.ServiceError(err)
		return
	}

	details, err := h.packages.Update(c.Request.Context(), currentActor(c), id, in)
	if err != nil {
		builder.ServiceError(err)
		return
	}

	audit(c, middleware.AuditEvent{
		Action:       "package.update",
		ResourceType: "package",
		ResourceID:   id.Hex(),
		Fields:       map[string]interface{}{"total_price": dto.Money(details.Package.TotalPrice), "revision": details.Package.Revision},
	})
	builder.SuccessOK(dto.NewPackageDetailsView(details))
}

// DeletePackage handles DELETE /api/packages/:id.
//
// @Summary      Delete package
// @Description  Deletes a package. Its items return to the caterer's drafts and its add-ons are removed.
// @Tags         Packages
// @Param        id path string true "Package ID"
// @Success      204
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/packages/{id} [delete]
func (h *Handler) DeletePackage(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.packages.Delete(c.Request.Context(), currentActor(c), id); err != nil {
		NewResponseBuilder(c).ServiceError(err)
		return
	}

	audit(c, middleware.AuditEvent{Action: "package.delete", ResourceType: "package", ResourceID: id.Hex()})
	NewResponseBuilder(c).NoContent()
}

// ListPackages handles GET /api/packages.
//
// @Summary      List caterer packages
// @Tags         Packages
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=[]dto.PackageView}
// @Security     BearerAuth
// @Router       /api/packages [get]
func (h *Handler) ListPackages(c *gin.Context) {
	packages, err := h.packages.List(c.Request.Context(), currentActor(c))
	if err != nil {
		NewResponseBuilder(c).ServiceError(err)
		return
	}
	NewResponseBuilder(c).SuccessOK(dto.NewPackageViews(packages))
}

// GetPackageForCaterer handles GET /api/packages/:id/manage.
//
// @Summary      Get package (caterer view)
// @Description  Returns an owned package with items, add-ons, occasions and categories, including inactive packages.
// @Tags         Packages
// @Produce      json
// @Param        id path string true "Package ID"
// @Success      200 {object} dto.SuccessResponse{data=dto.PackageDetailsView}
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/packages/{id}/manage [get]
func (h *Handler) GetPackageForCaterer(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	details, err := h.packages.Get(c.Request.Context(), currentActor(c), id)
	if err != nil {
		NewResponseBuilder(c).ServiceError(err)
		return
	}
	NewResponseBuilder(c).SuccessOK(dto.NewPackageDetailsView(details))
}

// LinkPackageItems handles POST /api/packages/:id/items/link.
//
// @Summary      Link items to package
// @Description  Attaches existing caterer items to the package and reprices it. Items linked elsewhere are moved and their previous package is repriced. Linking already linked items is a no-op.
// @Tags         Packages
// @Accept       json
// @Produce      json
// @Param        id path string true "Package ID"
// @Param        request body dto.LinkItemsRequest true "Item IDs"
// @Success      200 {object} dto.SuccessResponse{data=dto.PackageDetailsView}
// @Failure      404 {object} dto.ErrorResponse "Some package items not found or do not belong to this caterer"
// @Security     BearerAuth
// @Router       /api/packages/{id}/items/link [post]
func (h *Handler) LinkPackageItems(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	req, ok := bind[dto.LinkItemsRequest](c)
	if !ok {
		return
	}
	itemIDs, err := parseIDs(req.ItemIDs, "item_ids")
	if err != nil {
		builder.ServiceError(err)
		return
	}

	details, err := h.packages.LinkItems(c.Request.Context(), currentActor(c), id, itemIDs)
	if err != nil {
		builder.ServiceError(err)
		return
	}

	audit(c, middleware.AuditEvent{
		Action:       "item.link",
		ResourceType: "package",
		ResourceID:   id.Hex(),
		Fields:       map[string]interface{}{"item_ids": req.ItemIDs},
	})
	builder.SuccessOK(dto.NewPackageDetailsView(details))
}

// CreateBuyerPackage handles POST /api/user/packages.
//
// @Summary      Compose package as buyer
// @Description  Builds a customisable package from dishes of a single caterer for the buyer.
// @Tags         Buyer
// @Accept       json
// @Produce      json
// @Param        request body dto.BuyerPackageRequest true "Dishes"
// @Success      201 {object} dto.SuccessResponse{data=dto.PackageDetailsView}
// @Failure      400 {object} dto.ErrorResponse "Dishes from more than one caterer"
// @Failure      403 {object} dto.ErrorResponse "Caller is not a buyer"
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/user/packages [post]
func (h *Handler) CreateBuyerPackage(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, ok := bind[dto.BuyerPackageRequest](c)
	if !ok {
		return
	}
	in, err := toBuyerPackageInput(req)
	if err != nil {
		builder.ServiceError(err)
		return
	}

	details, err := h.packages.CreateForBuyer(c.Request.Context(), currentActor(c), in)
	if err != nil {
		builder.ServiceError(err)
		return
	}

	audit(c, middleware.AuditEvent{Action: "package.compose", ResourceType: "package", ResourceID: details.Package.ID.Hex()})
	builder.SuccessCreated(dto.NewPackageDetailsView(details))
}

// GetPublicPackage handles GET /api/catalog/packages/:id.
//
// @Summary      Get package (buyer view)
// @Description  Returns an active package with its dishes, add-ons and price per person. Served from the view cache.
// @Tags         Catalog
// @Produce      json
// @Param        id path string true "Package ID"
// @Success      200 {object} dto.SuccessResponse{data=dto.PackageDetailsView}
// @Failure      404 {object} dto.ErrorResponse
// @Router       /api/catalog/packages/{id} [get]
func (h *Handler) GetPublicPackage(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	details, err := h.packages.GetPublic(c.Request.Context(), id)
	if err != nil {
		NewResponseBuilder(c).ServiceError(err)
		return
	}
	NewResponseBuilder(c).SuccessOK(dto.NewPackageDetailsView(details))
}
