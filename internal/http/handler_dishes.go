package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/catering-service/internal/domain/dto"
	"github.com/guttosm/catering-service/internal/middleware"
)

// CreateDish handles POST /api/dishes.
//
// @Summary      Create dish
// @Description  Adds a dish to the caterer's catalog. Currency defaults to the caterer's settings.
// @Tags         Dishes
// @Accept       json
// @Produce      json
// @Param        request body dto.DishRequest true "Dish"
// @Success      201 {object} dto.SuccessResponse{data=dto.DishView}
// @Failure      400 {object} dto.ErrorResponse "Sub-category does not belong to category"
// @Failure      404 {object} dto.ErrorResponse "Category not found"
// @Security     BearerAuth
// @Router       /api/dishes [post]
func (h *Handler) CreateDish(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, ok := bind[dto.DishRequest](c)
	if !ok {
		return
	}
	in, err := toDishInput(req)
	if err != nil {
		builder.ServiceError(err)
		return
	}

	dish, err := h.dishes.Create(c.Request.Context(), currentActor(c), in)
	if err != nil {
		builder.ServiceError(err)
		return
	}

	audit(c, middleware.AuditEvent{Action: "dish.create", ResourceType: "dish", ResourceID: dish.ID.Hex()})
	builder.SuccessCreated(dto.NewDishView(dish))
}

// ListDishes handles GET /api/dishes.
//
// @Summary      List dishes
// @Tags         Dishes
// @Produce      json
// @Param        category_id query string false "Filter by category"
// @Param        active query bool false "Only active dishes"
// @Success      200 {object} dto.SuccessResponse{data=[]dto.DishView}
// @Security     BearerAuth
// @Router       /api/dishes [get]
func (h *Handler) ListDishes(c *gin.Context) {
	builder := NewResponseBuilder(c)

	categoryParam := c.Query("category_id")
	categoryID, err := parseOptionalID(&categoryParam, "category_id")
	if err != nil {
		builder.ServiceError(err)
		return
	}
	activeOnly, _ := strconv.ParseBool(c.DefaultQuery("active", "false"))

	dishes, err := h.dishes.List(c.Request.Context(), currentActor(c), categoryID, activeOnly)
	if err != nil {
		builder.ServiceError(err)
		return
	}
	builder.SuccessOK(dto.NewDishViews(dishes))
}

// GetDish handles GET /api/dishes/:id.
//
// @Summary      Get dish
// @Tags         Dishes
// @Produce      json
// @Param        id path string true "Dish ID"
// @Success      200 {object} dto.SuccessResponse{data=dto.DishView}
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/dishes/{id} [get]
func (h *Handler) GetDish(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	dish, err := h.dishes.Get(c.Request.Context(), currentActor(c), id)
	if err != nil {
		NewResponseBuilder(c).ServiceError(err)
		return
	}
	NewResponseBuilder(c).SuccessOK(dto.NewDishView(dish))
}

// UpdateDish handles PUT /api/dishes/:id.
//
// @Summary      Replace dish
// @Description  Replaces a dish. Existing item price snapshots are not changed.
// @Tags         Dishes
// @Accept       json
// @Produce      json
// @Param        id path string true "Dish ID"
// @Param        request body dto.DishRequest true "Dish"
// @Success      200 {object} dto.SuccessResponse{data=dto.DishView}
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/dishes/{id} [put]
func (h *Handler) UpdateDish(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	req, ok := bind[dto.DishRequest](c)
	if !ok {
		return
	}
	in, err := toDishInput(req)
	if err != nil {
		builder.ServiceError(err)
		return
	}

	dish, err := h.dishes.Update(c.Request.Context(), currentActor(c), id, in)
	if err != nil {
		builder.ServiceError(err)
		return
	}

	audit(c, middleware.AuditEvent{Action: "dish.update", ResourceType: "dish", ResourceID: id.Hex()})
	builder.SuccessOK(dto.NewDishView(dish))
}

// DeleteDish handles DELETE /api/dishes/:id.
//
// @Summary      Delete dish
// @Tags         Dishes
// @Param        id path string true "Dish ID"
// @Success      204
// @Failure      404 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse "Dish is used by package items"
// @Security     BearerAuth
// @Router       /api/dishes/{id} [delete]
func (h *Handler) DeleteDish(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.dishes.Delete(c.Request.Context(), currentActor(c), id); err != nil {
		NewResponseBuilder(c).ServiceError(err)
		return
	}

	audit(c, middleware.AuditEvent{Action: "dish.delete", ResourceType: "dish", ResourceID: id.Hex()})
	NewResponseBuilder(c).NoContent()
}
