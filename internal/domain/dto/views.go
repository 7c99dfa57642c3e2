package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/guttosm/catering-service/internal/domain/model"
)

// Money formats a decimal amount with two fraction digits.
func Money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// DishView is the JSON form of a dish.
type DishView struct {
	ID            string    `json:"id"`
	CatererID     string    `json:"caterer_id"`
	CategoryID    string    `json:"category_id"`
	SubCategoryID string    `json:"sub_category_id,omitempty"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	Price         string    `json:"price" example:"12.50"`
	Currency      string    `json:"currency"`
	Pieces        int       `json:"pieces"`
	Portion       string    `json:"portion,omitempty"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
} // @name DishView

// NewDishView converts a dish.
func NewDishView(d *model.Dish) DishView {
	v := DishView{
		ID:          d.ID.Hex(),
		CatererID:   d.CatererID.Hex(),
		CategoryID:  d.CategoryID.Hex(),
		Name:        d.Name,
		Description: d.Description,
		Price:       Money(d.Price),
		Currency:    d.Currency,
		Pieces:      d.Pieces,
		Portion:     d.Portion,
		IsActive:    d.IsActive,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
	if d.SubCategoryID != nil {
		v.SubCategoryID = d.SubCategoryID.Hex()
	}
	return v
}

// NewDishViews converts a slice of dishes.
func NewDishViews(dishes []model.Dish) []DishView {
	out := make([]DishView, 0, len(dishes))
	for i := range dishes {
		out = append(out, NewDishView(&dishes[i]))
	}
	return out
}

// PackageSummaryView names the package an item is linked to.
type PackageSummaryView struct {
	ID   string `json:"id"`
	Name string `json:"name"`
} // @name PackageSummaryView

// PackageItemView is the JSON form of a package item with its dish.
// PackageID is null for drafts.
type PackageItemView struct {
	ID          string              `json:"id"`
	DishID      string              `json:"dish_id"`
	PackageID   *string             `json:"package_id"`
	PeopleCount int                 `json:"people_count"`
	Quantity    int                 `json:"quantity"`
	IsOptional  bool                `json:"is_optional"`
	IsAddon     bool                `json:"is_addon"`
	PriceAtTime *string             `json:"price_at_time"`
	Dish        *DishView           `json:"dish,omitempty"`
	Package     *PackageSummaryView `json:"package,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
} // @name PackageItemView

// NewPackageItemView converts an item with its hydrated relations.
func NewPackageItemView(d *model.PackageItemDetails) PackageItemView {
	item := d.Item
	v := PackageItemView{
		ID:          item.ID.Hex(),
		DishID:      item.DishID.Hex(),
		PeopleCount: item.PeopleCount,
		Quantity:    item.Quantity,
		IsOptional:  item.IsOptional,
		IsAddon:     item.IsAddon,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
	if id, ok := item.Attachment.PackageID(); ok {
		hex := id.Hex()
		v.PackageID = &hex
	}
	if item.PriceAtTime != nil {
		p := Money(*item.PriceAtTime)
		v.PriceAtTime = &p
	}
	if d.Dish != nil {
		dish := NewDishView(d.Dish)
		v.Dish = &dish
	}
	if d.Package != nil {
		v.Package = &PackageSummaryView{ID: d.Package.ID.Hex(), Name: d.Package.Name}
	}
	return v
}

func newPackageItemViews(items []model.PackageItemDetails) []PackageItemView {
	out := make([]PackageItemView, 0, len(items))
	for i := range items {
		out = append(out, NewPackageItemView(&items[i]))
	}
	return out
}

// ReferenceView is the JSON form of categories and occasions.
type ReferenceView struct {
	ID   string `json:"id"`
	Name string `json:"name"`
} // @name ReferenceView

// NewCategoryViews converts categories.
func NewCategoryViews(categories []model.Category) []ReferenceView {
	out := make([]ReferenceView, 0, len(categories))
	for _, c := range categories {
		out = append(out, ReferenceView{ID: c.ID.Hex(), Name: c.Name})
	}
	return out
}

// NewOccasionViews converts occasions.
func NewOccasionViews(occasions []model.Occasion) []ReferenceView {
	out := make([]ReferenceView, 0, len(occasions))
	for _, o := range occasions {
		out = append(out, ReferenceView{ID: o.ID.Hex(), Name: o.Name})
	}
	return out
}

// ItemGroupView lists the items of one dish category.
type ItemGroupView struct {
	Category ReferenceView     `json:"category"`
	Items    []PackageItemView `json:"items"`
} // @name ItemGroupView

// NewItemGroupViews converts grouped items. Empty groups are kept.
func NewItemGroupViews(groups []model.ItemGroup) []ItemGroupView {
	out := make([]ItemGroupView, 0, len(groups))
	for i := range groups {
		g := &groups[i]
		out = append(out, ItemGroupView{
			Category: ReferenceView{ID: g.Category.ID.Hex(), Name: g.Category.Name},
			Items:    newPackageItemViews(g.Items),
		})
	}
	return out
}

// AddOnView is the JSON form of an add-on. Price is in whole currency units.
type AddOnView struct {
	ID          string    `json:"id"`
	PackageID   string    `json:"package_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       int64     `json:"price" example:"30"`
	Currency    string    `json:"currency"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
} // @name AddOnView

// NewAddOnView converts an add-on.
func NewAddOnView(a *model.AddOn) AddOnView {
	return AddOnView{
		ID:          a.ID.Hex(),
		PackageID:   a.PackageID.Hex(),
		Name:        a.Name,
		Description: a.Description,
		Price:       a.Price,
		Currency:    a.Currency,
		IsActive:    a.IsActive,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

// NewAddOnViews converts a slice of add-ons.
func NewAddOnViews(addOns []model.AddOn) []AddOnView {
	out := make([]AddOnView, 0, len(addOns))
	for i := range addOns {
		out = append(out, NewAddOnView(&addOns[i]))
	}
	return out
}

// CategorySelectionView is the JSON form of a category selection rule.
type CategorySelectionView struct {
	CategoryID        string `json:"category_id"`
	NumDishesToSelect *int   `json:"num_dishes_to_select"`
} // @name CategorySelectionView

// PackageView is the JSON form of a package without its relations.
type PackageView struct {
	ID                  string                  `json:"id"`
	CatererID           string                  `json:"caterer_id"`
	UserID              string                  `json:"user_id,omitempty"`
	CreatedBy           string                  `json:"created_by"`
	Name                string                  `json:"name"`
	Description         string                  `json:"description,omitempty"`
	MinimumPeople       int                     `json:"minimum_people"`
	MinimumPeoplePinned bool                    `json:"minimum_people_pinned"`
	TotalPrice          string                  `json:"total_price" example:"1800.00"`
	PricePerPerson      string                  `json:"price_per_person" example:"60.00"`
	Currency            string                  `json:"currency"`
	CustomisationType   string                  `json:"customisation_type"`
	IsActive            bool                    `json:"is_active"`
	IsAvailable         bool                    `json:"is_available"`
	IsCustomPrice       bool                    `json:"is_custom_price"`
	Rating              float64                 `json:"rating"`
	CategorySelections  []CategorySelectionView `json:"category_selections"`
	OccasionIDs         []string                `json:"occasion_ids"`
	Revision            int64                   `json:"revision"`
	CreatedAt           time.Time               `json:"created_at"`
	UpdatedAt           time.Time               `json:"updated_at"`
} // @name PackageView

// NewPackageView converts a package.
func NewPackageView(p *model.Package) PackageView {
	v := PackageView{
		ID:                  p.ID.Hex(),
		CatererID:           p.CatererID.Hex(),
		CreatedBy:           string(p.CreatedBy),
		Name:                p.Name,
		Description:         p.Description,
		MinimumPeople:       p.MinimumPeople,
		MinimumPeoplePinned: p.MinimumPeoplePinned,
		TotalPrice:          Money(p.TotalPrice),
		PricePerPerson:      Money(p.PricePerPerson()),
		Currency:            p.Currency,
		CustomisationType:   string(p.CustomisationType),
		IsActive:            p.IsActive,
		IsAvailable:         p.IsAvailable,
		IsCustomPrice:       p.IsCustomPrice,
		Rating:              p.Rating,
		CategorySelections:  make([]CategorySelectionView, 0, len(p.CategorySelections)),
		OccasionIDs:         make([]string, 0, len(p.OccasionIDs)),
		Revision:            p.Revision,
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
	}
	if p.UserID != nil {
		v.UserID = p.UserID.Hex()
	}
	for _, s := range p.CategorySelections {
		v.CategorySelections = append(v.CategorySelections, CategorySelectionView{
			CategoryID:        s.CategoryID.Hex(),
			NumDishesToSelect: s.NumDishesToSelect,
		})
	}
	for _, id := range p.OccasionIDs {
		v.OccasionIDs = append(v.OccasionIDs, id.Hex())
	}
	return v
}

// NewPackageViews converts a slice of packages.
func NewPackageViews(packages []model.Package) []PackageView {
	out := make([]PackageView, 0, len(packages))
	for i := range packages {
		out = append(out, NewPackageView(&packages[i]))
	}
	return out
}

// PackageDetailsView is a package with its items, add-ons and reference data.
type PackageDetailsView struct {
	PackageView
	Items      []PackageItemView `json:"items"`
	AddOns     []AddOnView       `json:"add_ons"`
	Occasions  []ReferenceView   `json:"occasions"`
	Categories []ReferenceView   `json:"categories"`
} // @name PackageDetailsView

// NewPackageDetailsView converts a hydrated package.
func NewPackageDetailsView(d *model.PackageDetails) PackageDetailsView {
	return PackageDetailsView{
		PackageView: NewPackageView(&d.Package),
		Items:       newPackageItemViews(d.Items),
		AddOns:      NewAddOnViews(d.AddOns),
		Occasions:   NewOccasionViews(d.Occasions),
		Categories:  NewCategoryViews(d.Categories),
	}
}

// CatererSettingsView is the JSON form of caterer settings.
type CatererSettingsView struct {
	CatererID     string    `json:"caterer_id"`
	MinimumGuests *int      `json:"minimum_guests"`
	Currency      string    `json:"currency,omitempty"`
	UpdatedAt     time.Time `json:"updated_at"`
} // @name CatererSettingsView

// NewCatererSettingsView converts caterer settings.
func NewCatererSettingsView(s *model.CatererSettings) CatererSettingsView {
	return CatererSettingsView{
		CatererID:     s.CatererID.Hex(),
		MinimumGuests: s.MinimumGuests,
		Currency:      s.Currency,
		UpdatedAt:     s.UpdatedAt,
	}
}
