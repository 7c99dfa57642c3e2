package model

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Attachment records whether a package item is a draft or linked to a package.
// The zero value is Unattached. It is stored as a nullable package_id.
type Attachment struct {
	packageID primitive.ObjectID
	attached  bool
}

// Unattached returns the draft state.
func Unattached() Attachment {
	return Attachment{}
}

// AttachedTo returns the state of an item linked to packageID.
func AttachedTo(packageID primitive.ObjectID) Attachment {
	if packageID.IsZero() {
		return Attachment{}
	}
	return Attachment{packageID: packageID, attached: true}
}

// PackageID returns the linked package and true, or false for a draft.
func (a Attachment) PackageID() (primitive.ObjectID, bool) {
	return a.packageID, a.attached
}

// IsDraft reports whether the item is not linked to any package.
func (a Attachment) IsDraft() bool {
	return !a.attached
}

// IsAttachedTo reports whether the item is linked to packageID.
func (a Attachment) IsAttachedTo(packageID primitive.ObjectID) bool {
	return a.attached && a.packageID == packageID
}

func (a Attachment) String() string {
	if !a.attached {
		return "unattached"
	}
	return "attached:" + a.packageID.Hex()
}

// MarshalBSONValue stores a draft as null and a linked item as its package ObjectID.
func (a Attachment) MarshalBSONValue() (bsontype.Type, []byte, error) {
	if !a.attached {
		return bson.TypeNull, nil, nil
	}
	return bson.MarshalValue(a.packageID)
}

// UnmarshalBSONValue accepts null, undefined or an ObjectID.
func (a *Attachment) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	switch t {
	case bson.TypeNull, bson.TypeUndefined:
		*a = Unattached()
		return nil
	case bson.TypeObjectID:
		id, ok := bson.RawValue{Type: t, Value: data}.ObjectIDOK()
		if !ok {
			return fmt.Errorf("attachment: malformed object id")
		}
		*a = AttachedTo(id)
		return nil
	default:
		return fmt.Errorf("attachment: cannot decode bson type %s", t)
	}
}

// MarshalJSON encodes a draft as null and a linked item as the package id hex string.
func (a Attachment) MarshalJSON() ([]byte, error) {
	if !a.attached {
		return []byte("null"), nil
	}
	return json.Marshal(a.packageID.Hex())
}

// UnmarshalJSON accepts null, an empty string or a package id hex string.
func (a *Attachment) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*a = Unattached()
		return nil
	}
	var hex string
	if err := json.Unmarshal(data, &hex); err != nil {
		return err
	}
	if hex == "" {
		*a = Unattached()
		return nil
	}
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return fmt.Errorf("attachment: %w", err)
	}
	*a = AttachedTo(id)
	return nil
}

// PackageItem is a dish placed in a package, or a draft waiting to be linked.
type PackageItem struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	DishID      primitive.ObjectID `bson:"dish_id" json:"dish_id"`
	CatererID   primitive.ObjectID `bson:"caterer_id" json:"caterer_id"`
	Attachment  Attachment         `bson:"package_id" json:"package_id"`
	PeopleCount int                `bson:"people_count" json:"people_count"`
	Quantity    int                `bson:"quantity" json:"quantity"`
	IsOptional  bool               `bson:"is_optional" json:"is_optional"`
	IsAddon     bool               `bson:"is_addon" json:"is_addon"`
	PriceAtTime *decimal.Decimal   `bson:"price_at_time" json:"price_at_time"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}

// EffectiveQuantity treats a missing or non-positive quantity as 1.
func (i *PackageItem) EffectiveQuantity() int {
	if i.Quantity <= 0 {
		return 1
	}
	return i.Quantity
}

// EffectiveUnitPrice returns the snapshot price when set, else the live dish price.
func (i *PackageItem) EffectiveUnitPrice(dish *Dish) decimal.Decimal {
	if i.PriceAtTime != nil {
		return *i.PriceAtTime
	}
	if dish == nil {
		return decimal.Zero
	}
	return dish.Price
}

// PackageSummary is the short form of a package attached to a listed item.
type PackageSummary struct {
	ID   primitive.ObjectID `json:"id"`
	Name string             `json:"name"`
}

// PackageItemDetails is an item hydrated with its dish and, when linked, its package summary.
type PackageItemDetails struct {
	Item    PackageItem     `json:"item"`
	Dish    *Dish           `json:"dish,omitempty"`
	Package *PackageSummary `json:"package,omitempty"`
}

// ItemGroup is a category bucket in the grouped item listing.
type ItemGroup struct {
	Category Category             `json:"category"`
	Items    []PackageItemDetails `json:"items"`
}
