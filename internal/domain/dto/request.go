// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
// Identifiers travel as hex strings and are parsed by the HTTP layer.
package dto

import (
	"bytes"
	"encoding/json"

	"github.com/shopspring/decimal"
)

// CategorySelectionRequest limits how many dishes a buyer picks from a category.
// A null num_dishes_to_select means every dish of the category.
type CategorySelectionRequest struct {
	CategoryID        string `json:"category_id" binding:"required" example:"65a1f0c2e4b0a1b2c3d4e5f6"`
	NumDishesToSelect *int   `json:"num_dishes_to_select" example:"2"`
} // @name CategorySelectionRequest

// CreatePackageRequest represents the JSON body for creating a package.
//
// package_item_ids may mix existing item ids and dish ids; ids that are not items
// of the caterer are resolved as dishes. dish_ids always name dishes.
//
// @Description Request to create a caterer package
type CreatePackageRequest struct {
	Name               string                     `json:"name" binding:"required" example:"Wedding buffet"`
	Description        string                     `json:"description" example:"Three course buffet"`
	TotalPrice         *decimal.Decimal           `json:"total_price" swaggertype:"number" example:"250.00"`
	MinimumPeople      *int                       `json:"minimum_people" example:"30"`
	CustomisationType  string                     `json:"customisation_type" example:"FIXED" enums:"FIXED,CUSTOMISABLE"`
	Currency           string                     `json:"currency" example:"EUR"`
	IsActive           *bool                      `json:"is_active"`
	IsAvailable        *bool                      `json:"is_available"`
	PackageItemIDs     []string                   `json:"package_item_ids"`
	DishIDs            []string                   `json:"dish_ids"`
	CategorySelections []CategorySelectionRequest `json:"category_selections"`
	OccasionIDs        []string                   `json:"occasion_ids"`
	// Occassion is an alternative spelling of occasion_ids still sent by older clients.
	Occassion []string `json:"occassion" swaggerignore:"true"`
} // @name CreatePackageRequest

// Occasions merges occasion_ids with the legacy occassion key.
func (r *CreatePackageRequest) Occasions() []string {
	return mergeOccasions(r.OccasionIDs, r.Occassion)
}

// UpdatePackageRequest represents the JSON body for updating a package.
// Pointer slices distinguish an absent key (nil) from an empty list.
//
// @Description Request to update a caterer package
type UpdatePackageRequest struct {
	Name                       *string                     `json:"name"`
	Description                *string                     `json:"description"`
	TotalPrice                 *decimal.Decimal            `json:"total_price" swaggertype:"number"`
	IsActive                   *bool                       `json:"is_active"`
	IsAvailable                *bool                       `json:"is_available"`
	Currency                   *string                     `json:"currency"`
	CustomisationType          *string                     `json:"customisation_type" enums:"FIXED,CUSTOMISABLE"`
	MinimumPeople              *int                        `json:"minimum_people"`
	RepriceFromCatererDefaults *bool                       `json:"reprice_from_caterer_defaults"`
	PackageItemIDs             *[]string                   `json:"package_item_ids"`
	DishIDs                    *[]string                   `json:"dish_ids"`
	CategorySelections         *[]CategorySelectionRequest `json:"category_selections"`
	OccasionIDs                *[]string                   `json:"occasion_ids"`
	Occassion                  *[]string                   `json:"occassion" swaggerignore:"true"`
	Revision                   *int64                      `json:"revision" example:"3"`
} // @name UpdatePackageRequest

// Occasions returns the replacement occasion list, or nil when neither key was sent.
func (r *UpdatePackageRequest) Occasions() *[]string {
	if r.OccasionIDs == nil && r.Occassion == nil {
		return nil
	}
	var ids, legacy []string
	if r.OccasionIDs != nil {
		ids = *r.OccasionIDs
	}
	if r.Occassion != nil {
		legacy = *r.Occassion
	}
	merged := mergeOccasions(ids, legacy)
	return &merged
}

func mergeOccasions(ids, legacy []string) []string {
	out := make([]string, 0, len(ids)+len(legacy))
	out = append(out, ids...)
	return append(out, legacy...)
}

// BuyerPackageRequest represents the JSON body a buyer sends to compose a package from dishes.
type BuyerPackageRequest struct {
	Name          string   `json:"name" binding:"required" example:"Birthday lunch"`
	Description   string   `json:"description"`
	DishIDs       []string `json:"dish_ids" binding:"required,min=1"`
	MinimumPeople *int     `json:"minimum_people" example:"12"`
	OccasionIDs   []string `json:"occasion_ids"`
	Occassion     []string `json:"occassion" swaggerignore:"true"`
} // @name BuyerPackageRequest

// Occasions merges occasion_ids with the legacy occassion key.
func (r *BuyerPackageRequest) Occasions() []string {
	return mergeOccasions(r.OccasionIDs, r.Occassion)
}

// LinkItemsRequest attaches existing items to a package.
type LinkItemsRequest struct {
	ItemIDs []string `json:"item_ids" binding:"required,min=1"`
} // @name LinkItemsRequest

// CreatePackageItemRequest represents the JSON body for creating a package item.
// Without package_id the item is created as a draft.
type CreatePackageItemRequest struct {
	DishID      string           `json:"dish_id" binding:"required" example:"65a1f0c2e4b0a1b2c3d4e5f6"`
	PackageID   *string          `json:"package_id"`
	PeopleCount int              `json:"people_count" binding:"gte=0" example:"10"`
	Quantity    int              `json:"quantity" binding:"gte=0" example:"1"`
	IsOptional  bool             `json:"is_optional"`
	IsAddon     bool             `json:"is_addon"`
	PriceAtTime *decimal.Decimal `json:"price_at_time" swaggertype:"number" example:"7.50"`
} // @name CreatePackageItemRequest

// OptionalString is a JSON string field that tells an absent key apart from an explicit null.
type OptionalString struct {
	Set   bool
	Value *string
}

// UnmarshalJSON records that the key was present. null leaves Value nil.
func (o *OptionalString) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		o.Value = nil
		return nil
	}
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	o.Value = &v
	return nil
}

// Cleared reports whether the key was sent as null or as an empty string.
func (o OptionalString) Cleared() bool {
	return o.Set && (o.Value == nil || *o.Value == "")
}

// SetString builds a present OptionalString.
func SetString(v string) OptionalString {
	return OptionalString{Set: true, Value: &v}
}

// UpdatePackageItemRequest patches a package item.
// A null or empty package_id detaches the item back to a draft; an absent one leaves it alone.
type UpdatePackageItemRequest struct {
	DishID      *string          `json:"dish_id"`
	PackageID   OptionalString   `json:"package_id" swaggertype:"string" extensions:"x-nullable"`
	PeopleCount *int             `json:"people_count" binding:"omitempty,gte=0"`
	Quantity    *int             `json:"quantity" binding:"omitempty,gte=0"`
	IsOptional  *bool            `json:"is_optional"`
	IsAddon     *bool            `json:"is_addon"`
	PriceAtTime *decimal.Decimal `json:"price_at_time" swaggertype:"number"`
} // @name UpdatePackageItemRequest

// DishRequest is used to create and to replace a dish.
type DishRequest struct {
	CategoryID    string          `json:"category_id" binding:"required"`
	SubCategoryID *string         `json:"sub_category_id"`
	Name          string          `json:"name" binding:"required" example:"Lamb tagine"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price" swaggertype:"number" example:"12.50"`
	Currency      string          `json:"currency" example:"EUR"`
	Pieces        int             `json:"pieces" binding:"gte=0" example:"0"`
	Portion       string          `json:"portion" example:"250 g"`
	IsActive      *bool           `json:"is_active"`
} // @name DishRequest

// AddOnRequest is used to create and to replace an add-on.
// Prices are rounded to whole currency units.
type AddOnRequest struct {
	Name        string          `json:"name" binding:"required" example:"Chocolate fountain"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" swaggertype:"number" example:"30"`
	Currency    string          `json:"currency" example:"EUR"`
	IsActive    *bool           `json:"is_active"`
} // @name AddOnRequest

// CatererSettingsRequest sets the caterer's guest floor and currency.
type CatererSettingsRequest struct {
	MinimumGuests int    `json:"minimum_guests" binding:"gte=0" example:"20"`
	Currency      string `json:"currency" example:"GBP"`
} // @name CatererSettingsRequest

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// InvalidID builds the error returned for a malformed identifier.
func InvalidID(field string) *ValidationError {
	return &ValidationError{Field: field, Message: "must be a valid id"}
}
