package model

import (
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PriceLine is the contribution of one package item to a total.
type PriceLine struct {
	ItemID    primitive.ObjectID
	DishID    primitive.ObjectID
	UnitPrice decimal.Decimal
	Quantity  int
	Subtotal  decimal.Decimal
}

// PriceBreakdown is the result of pricing a set of items for a guest count.
type PriceBreakdown struct {
	Total          decimal.Decimal
	PricePerPerson decimal.Decimal
	GuestCount     int
	Lines          []PriceLine
}

// RepriceTrigger names what caused a package to be repriced.
type RepriceTrigger string

const (
	TriggerPackageCreate RepriceTrigger = "package_create"
	TriggerPackageUpdate RepriceTrigger = "package_update"
	TriggerItemCreate    RepriceTrigger = "item_create"
	TriggerItemUpdate    RepriceTrigger = "item_update"
	TriggerItemDelete    RepriceTrigger = "item_delete"
	TriggerItemLink      RepriceTrigger = "item_link"
	TriggerRead          RepriceTrigger = "read"
)
