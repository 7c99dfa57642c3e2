package model

import (
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CustomisationType controls whether buyers may change the package contents.
type CustomisationType string

const (
	CustomisationFixed        CustomisationType = "FIXED"
	CustomisationCustomisable CustomisationType = "CUSTOMISABLE"
)

// Valid reports whether t is a known customisation type.
func (t CustomisationType) Valid() bool {
	return t == CustomisationFixed || t == CustomisationCustomisable
}

// CategorySelection limits how many dishes a buyer picks from a category of a FIXED package.
// A nil NumDishesToSelect means all dishes of the category are included.
type CategorySelection struct {
	CategoryID        primitive.ObjectID `bson:"category_id" json:"category_id"`
	NumDishesToSelect *int               `bson:"num_dishes_to_select" json:"num_dishes_to_select"`
}

// Package is a sellable bundle of package items priced per guest.
type Package struct {
	ID                  primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	CatererID           primitive.ObjectID   `bson:"caterer_id" json:"caterer_id"`
	UserID              *primitive.ObjectID  `bson:"user_id,omitempty" json:"user_id,omitempty"`
	CreatedBy           ActorType            `bson:"created_by" json:"created_by"`
	Name                string               `bson:"name" json:"name"`
	Description         string               `bson:"description,omitempty" json:"description,omitempty"`
	MinimumPeople       int                  `bson:"minimum_people" json:"minimum_people"`
	MinimumPeoplePinned bool                 `bson:"minimum_people_pinned" json:"minimum_people_pinned"`
	TotalPrice          decimal.Decimal      `bson:"total_price" json:"total_price"`
	Currency            string               `bson:"currency" json:"currency"`
	CustomisationType   CustomisationType    `bson:"customisation_type" json:"customisation_type"`
	IsActive            bool                 `bson:"is_active" json:"is_active"`
	IsAvailable         bool                 `bson:"is_available" json:"is_available"`
	IsCustomPrice       bool                 `bson:"is_custom_price" json:"is_custom_price"`
	Rating              float64              `bson:"rating" json:"rating"`
	CategorySelections  []CategorySelection  `bson:"category_selections" json:"category_selections"`
	OccasionIDs         []primitive.ObjectID `bson:"occasion_ids" json:"occasion_ids"`
	Revision            int64                `bson:"revision" json:"revision"`
	CreatedAt           time.Time            `bson:"created_at" json:"created_at"`
	UpdatedAt           time.Time            `bson:"updated_at" json:"updated_at"`
}

// OwnedBy reports whether the package belongs to the given caterer.
func (p *Package) OwnedBy(catererID primitive.ObjectID) bool {
	return p != nil && p.CatererID == catererID
}

// IsFixed reports whether the package has FIXED contents.
func (p *Package) IsFixed() bool {
	return p.CustomisationType == CustomisationFixed
}

// IsBuyerAuthored reports whether a buyer composed the package.
func (p *Package) IsBuyerAuthored() bool {
	return p.CreatedBy == ActorUser
}

// PricePerPerson divides the total by the minimum guest count, rounded to cents.
// It is zero when no minimum is set.
func (p *Package) PricePerPerson() decimal.Decimal {
	return PerPerson(p.TotalPrice, p.MinimumPeople)
}

// PerPerson divides total by guests rounded half-up to 2 places, or zero when guests <= 0.
func PerPerson(total decimal.Decimal, guests int) decimal.Decimal {
	if guests <= 0 {
		return decimal.Zero
	}
	return total.Div(decimal.NewFromInt(int64(guests))).Round(2)
}

// PackageDetails is a package hydrated with everything a view needs.
// It is also the cached form of the public package view.
type PackageDetails struct {
	Package    Package              `json:"package"`
	Items      []PackageItemDetails `json:"items"`
	AddOns     []AddOn              `json:"add_ons"`
	Occasions  []Occasion           `json:"occasions"`
	Categories []Category           `json:"categories"`
}
