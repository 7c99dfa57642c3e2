package http

import (
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/catering-service/internal/domain/dto"
	"github.com/guttosm/catering-service/internal/domain/model"
	"github.com/guttosm/catering-service/internal/i18n"
	"github.com/guttosm/catering-service/internal/logger"
	"github.com/guttosm/catering-service/internal/middleware"
	"github.com/guttosm/catering-service/internal/service"
)

// Response DTO pools for reducing allocations.
var (
	successResponsePool = sync.Pool{
		New: func() interface{} {
			return &dto.SuccessResponse{}
		},
	}

	errorResponsePool = sync.Pool{
		New: func() interface{} {
			return &dto.ErrorResponse{}
		},
	}
)

// getSuccessResponse retrieves a SuccessResponse from the pool.
func getSuccessResponse() *dto.SuccessResponse {
	if resp, ok := successResponsePool.Get().(*dto.SuccessResponse); ok {
		return resp
	}
	return &dto.SuccessResponse{}
}

// putSuccessResponse returns a SuccessResponse to the pool.
func putSuccessResponse(resp *dto.SuccessResponse) {
	resp.Data = nil
	resp.RequestID = ""
	resp.Timestamp = time.Time{}
	successResponsePool.Put(resp)
}

// getErrorResponse retrieves an ErrorResponse from the pool.
func getErrorResponse() *dto.ErrorResponse {
	if resp, ok := errorResponsePool.Get().(*dto.ErrorResponse); ok {
		return resp
	}
	return &dto.ErrorResponse{}
}

// putErrorResponse returns an ErrorResponse to the pool.
func putErrorResponse(resp *dto.ErrorResponse) {
	resp.Error = ""
	resp.Message = ""
	resp.RequestID = ""
	resp.Timestamp = time.Time{}
	resp.Details = nil
	resp.TraceID = ""
	errorResponsePool.Put(resp)
}

// BuildRequest binds the JSON body of the request into a new T.
func BuildRequest[T any](c *gin.Context) (*T, error) {
	var req T
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, err
	}
	return &req, nil
}

// ResponseBuilder writes the response envelope.
// Uses sync.Pool for DTO reuse to reduce allocations.
type ResponseBuilder struct {
	c *gin.Context
}

// NewResponseBuilder creates a new response builder for the given context.
func NewResponseBuilder(c *gin.Context) *ResponseBuilder {
	return &ResponseBuilder{c: c}
}

// Success sends a successful response with the given data.
func (b *ResponseBuilder) Success(statusCode int, data interface{}) {
	resp := getSuccessResponse()
	resp.Data = data
	resp.RequestID = middleware.GetRequestID(b.c)
	resp.Timestamp = time.Now()

	// Gin serializes synchronously, so the response can go back to the pool right after.
	b.c.JSON(statusCode, resp)
	putSuccessResponse(resp)
}

// SuccessOK sends a 200 OK response with the given data.
func (b *ResponseBuilder) SuccessOK(data interface{}) {
	b.Success(http.StatusOK, data)
}

// SuccessCreated sends a 201 Created response with the given data.
func (b *ResponseBuilder) SuccessCreated(data interface{}) {
	b.Success(http.StatusCreated, data)
}

// NoContent sends a 204 response.
func (b *ResponseBuilder) NoContent() {
	b.c.Status(http.StatusNoContent)
}

// Error sends an error response with the given status code and message key.
func (b *ResponseBuilder) Error(statusCode int, messageKey string, err error) {
	message := i18n.GetTranslator().Translate(messageKey, i18n.GetLocale(b.c))
	b.write(statusCode, dto.ErrCodeFromStatus(statusCode), message, err)
}

// ErrorWithMessage sends an error response with a custom message.
func (b *ResponseBuilder) ErrorWithMessage(statusCode int, message string, err error) {
	b.write(statusCode, dto.ErrCodeFromStatus(statusCode), message, err)
}

// ServiceError maps an error returned by a service to a response.
// Domain errors keep their message; anything else is a 500.
func (b *ResponseBuilder) ServiceError(err error) {
	var verr *dto.ValidationError
	if errors.As(err, &verr) {
		b.write(http.StatusBadRequest, dto.ErrCodeInvalidRequest, verr.Error(), nil)
		return
	}

	de, ok := model.AsDomainError(err)
	if !ok {
		b.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	status, code := statusForKind(de.Kind)
	message := i18n.GetTranslator().TranslateOr(de.Key, i18n.GetLocale(b.c), de.Message)
	logger.FromContext(b.c.Request.Context()).Debug().
		Str("kind", string(de.Kind)).
		Str("key", de.Key).
		Msg(de.Message)
	b.write(status, code, message, nil)
}

func (b *ResponseBuilder) write(statusCode int, code, message string, err error) {
	resp := getErrorResponse()
	resp.Error = code
	resp.Message = message
	resp.RequestID = middleware.GetRequestID(b.c)
	resp.Timestamp = time.Now()

	// Add error to context for error handler middleware to log
	if err != nil {
		_ = b.c.Error(err)
	}

	b.c.AbortWithStatusJSON(statusCode, resp)
	putErrorResponse(resp)
}

func statusForKind(kind model.ErrorKind) (int, string) {
	switch kind {
	case model.KindNotFound:
		return http.StatusNotFound, dto.ErrCodeNotFound
	case model.KindValidation:
		return http.StatusBadRequest, dto.ErrCodeValidation
	case model.KindConfiguration:
		return http.StatusUnprocessableEntity, dto.ErrCodeConfiguration
	case model.KindConflict:
		return http.StatusConflict, dto.ErrCodeConflict
	case model.KindInvalidActor:
		return http.StatusForbidden, dto.ErrCodeForbidden
	default:
		return http.StatusInternalServerError, dto.ErrCodeInternal
	}
}

// pathID parses a hex ObjectID path parameter, answering 400 when it is malformed.
func pathID(c *gin.Context, name string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param(name))
	if err != nil {
		NewResponseBuilder(c).Error(http.StatusBadRequest, i18n.ErrKeyInvalidID, nil)
		return primitive.NilObjectID, false
	}
	return id, true
}

// currentActor returns the actor resolved by the auth middleware.
func currentActor(c *gin.Context) model.Actor {
	actor, _ := middleware.GetActor(c)
	return actor
}

func parseID(raw, field string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(strings.TrimSpace(raw))
	if err != nil {
		return primitive.NilObjectID, dto.InvalidID(field)
	}
	return id, nil
}

func parseOptionalID(raw *string, field string) (*primitive.ObjectID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	id, err := parseID(*raw, field)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func parseIDs(raw []string, field string) ([]primitive.ObjectID, error) {
	ids := make([]primitive.ObjectID, 0, len(raw))
	for _, r := range raw {
		id, err := parseID(r, field)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func parseSelections(raw []dto.CategorySelectionRequest) ([]model.CategorySelection, error) {
	out := make([]model.CategorySelection, 0, len(raw))
	for _, r := range raw {
		id, err := parseID(r.CategoryID, "category_selections.category_id")
		if err != nil {
			return nil, err
		}
		out = append(out, model.CategorySelection{CategoryID: id, NumDishesToSelect: r.NumDishesToSelect})
	}
	return out, nil
}

func parseCustomisation(raw string) model.CustomisationType {
	if raw == "" {
		return model.CustomisationFixed
	}
	return model.CustomisationType(strings.ToUpper(raw))
}

func toCreatePackageInput(req *dto.CreatePackageRequest) (service.CreatePackageInput, error) {
	in := service.CreatePackageInput{
		Name:              req.Name,
		Description:       req.Description,
		TotalPrice:        req.TotalPrice,
		MinimumPeople:     req.MinimumPeople,
		CustomisationType: parseCustomisation(req.CustomisationType),
		Currency:          req.Currency,
		IsActive:          req.IsActive,
		IsAvailable:       req.IsAvailable,
	}
	var err error
	if in.Items.PackageItemIDs, err = parseIDs(req.PackageItemIDs, "package_item_ids"); err != nil {
		return in, err
	}
	if in.Items.DishIDs, err = parseIDs(req.DishIDs, "dish_ids"); err != nil {
		return in, err
	}
	if in.CategorySelections, err = parseSelections(req.CategorySelections); err != nil {
		return in, err
	}
	if in.OccasionIDs, err = parseIDs(req.Occasions(), "occasion_ids"); err != nil {
		return in, err
	}
	return in, nil
}

func toUpdatePackageInput(req *dto.UpdatePackageRequest) (service.UpdatePackageInput, error) {
	in := service.UpdatePackageInput{
		Name:                       req.Name,
		Description:                req.Description,
		TotalPrice:                 req.TotalPrice,
		IsActive:                   req.IsActive,
		IsAvailable:                req.IsAvailable,
		Currency:                   req.Currency,
		MinimumPeople:              req.MinimumPeople,
		RepriceFromCatererDefaults: req.RepriceFromCatererDefaults,
		ExpectedRevision:           req.Revision,
	}
	if req.CustomisationType != nil {
		t := model.CustomisationType(strings.ToUpper(*req.CustomisationType))
		in.CustomisationType = &t
	}
	if req.PackageItemIDs != nil || req.DishIDs != nil {
		var refs service.ItemRefs
		var err error
		if req.PackageItemIDs != nil {
			if refs.PackageItemIDs, err = parseIDs(*req.PackageItemIDs, "package_item_ids"); err != nil {
				return in, err
			}
		}
		if req.DishIDs != nil {
			if refs.DishIDs, err = parseIDs(*req.DishIDs, "dish_ids"); err != nil {
				return in, err
			}
		}
		in.Items = &refs
	}
	if req.CategorySelections != nil {
		selections, err := parseSelections(*req.CategorySelections)
		if err != nil {
			return in, err
		}
		in.CategorySelections = &selections
	}
	if occasions := req.Occasions(); occasions != nil {
		ids, err := parseIDs(*occasions, "occasion_ids")
		if err != nil {
			return in, err
		}
		in.OccasionIDs = &ids
	}
	return in, nil
}

func toBuyerPackageInput(req *dto.BuyerPackageRequest) (service.BuyerPackageInput, error) {
	in := service.BuyerPackageInput{
		Name:          req.Name,
		Description:   req.Description,
		MinimumPeople: req.MinimumPeople,
	}
	var err error
	if in.DishIDs, err = parseIDs(req.DishIDs, "dish_ids"); err != nil {
		return in, err
	}
	if in.OccasionIDs, err = parseIDs(req.Occasions(), "occasion_ids"); err != nil {
		return in, err
	}
	return in, nil
}

func toCreateItemInput(req *dto.CreatePackageItemRequest) (service.CreatePackageItemInput, error) {
	in := service.CreatePackageItemInput{
		PeopleCount: req.PeopleCount,
		Quantity:    req.Quantity,
		IsOptional:  req.IsOptional,
		IsAddon:     req.IsAddon,
		PriceAtTime: req.PriceAtTime,
	}
	var err error
	if in.DishID, err = parseID(req.DishID, "dish_id"); err != nil {
		return in, err
	}
	if in.PackageID, err = parseOptionalID(req.PackageID, "package_id"); err != nil {
		return in, err
	}
	return in, nil
}

// toUpdateItemInput treats an empty package_id as a request to detach the item.
func toUpdateItemInput(req *dto.UpdatePackageItemRequest) (service.UpdatePackageItemInput, error) {
	in := service.UpdatePackageItemInput{
		PeopleCount: req.PeopleCount,
		Quantity:    req.Quantity,
		IsOptional:  req.IsOptional,
		IsAddon:     req.IsAddon,
		PriceAtTime: req.PriceAtTime,
	}
	if req.DishID != nil {
		id, err := parseID(*req.DishID, "dish_id")
		if err != nil {
			return in, err
		}
		in.DishID = &id
	}
	if req.PackageID.Set {
		attachment := model.Unattached()
		if !req.PackageID.Cleared() {
			id, err := parseID(*req.PackageID.Value, "package_id")
			if err != nil {
				return in, err
			}
			attachment = model.AttachedTo(id)
		}
		in.Attachment = &attachment
	}
	return in, nil
}

func toDishInput(req *dto.DishRequest) (service.DishInput, error) {
	in := service.DishInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Currency:    req.Currency,
		Pieces:      req.Pieces,
		Portion:     req.Portion,
		IsActive:    req.IsActive,
	}
	var err error
	if in.CategoryID, err = parseID(req.CategoryID, "category_id"); err != nil {
		return in, err
	}
	if in.SubCategoryID, err = parseOptionalID(req.SubCategoryID, "sub_category_id"); err != nil {
		return in, err
	}
	return in, nil
}

func toAddOnInput(req *dto.AddOnRequest) service.AddOnInput {
	return service.AddOnInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Currency:    req.Currency,
		IsActive:    req.IsActive,
	}
}
