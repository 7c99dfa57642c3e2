package service

import (
	"github.com/guttosm/catering-service/internal/domain/model"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultPricePlaces is the number of decimal places totals are rounded to.
const DefaultPricePlaces int32 = 2

// PricingCalculator computes package totals from items and their dishes.
// It does no I/O.
type PricingCalculator interface {
	Calculate(items []model.PackageItem, dishes map[primitive.ObjectID]*model.Dish, guests int) model.PriceBreakdown
}

// CalculatorOption configures a PricingCalculatorService.
type CalculatorOption func(*PricingCalculatorService)

// PricingCalculatorService implements PricingCalculator.
//
//	total = Σ effective_unit_price(item) × guests × effective_quantity(item)
//
// The effective unit price is the item's price snapshot when set, otherwise the live dish price.
// A quantity <= 0 counts as 1. The total is rounded half-up.
type PricingCalculatorService struct {
	places int32
}

// NewPricingCalculator creates a calculator with the given options.
func NewPricingCalculator(opts ...CalculatorOption) *PricingCalculatorService {
	c := &PricingCalculatorService{places: DefaultPricePlaces}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithPricePlaces sets the rounding precision of totals.
func WithPricePlaces(places int32) CalculatorOption {
	return func(c *PricingCalculatorService) {
		if places >= 0 {
			c.places = places
		}
	}
}

// Calculate prices items for guests. Items whose dish is missing and that carry no
// snapshot contribute zero.
func (c *PricingCalculatorService) Calculate(items []model.PackageItem, dishes map[primitive.ObjectID]*model.Dish, guests int) model.PriceBreakdown {
	breakdown := model.PriceBreakdown{
		Total:          decimal.Zero,
		PricePerPerson: decimal.Zero,
		GuestCount:     guests,
		Lines:          make([]model.PriceLine, 0, len(items)),
	}
	if guests < 0 {
		guests = 0
	}
	g := decimal.NewFromInt(int64(guests))

	total := decimal.Zero
	for i := range items {
		item := &items[i]
		unit := item.EffectiveUnitPrice(dishes[item.DishID])
		qty := item.EffectiveQuantity()
		subtotal := unit.Mul(g).Mul(decimal.NewFromInt(int64(qty)))
		total = total.Add(subtotal)

		breakdown.Lines = append(breakdown.Lines, model.PriceLine{
			ItemID:    item.ID,
			DishID:    item.DishID,
			UnitPrice: unit,
			Quantity:  qty,
			Subtotal:  subtotal,
		})
	}

	breakdown.Total = total.Round(c.places)
	breakdown.PricePerPerson = model.PerPerson(breakdown.Total, guests)
	return breakdown
}
