package service_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/catering-service/internal/domain/model"
	"github.com/guttosm/catering-service/internal/service"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func TestPricingCalculator_Calculate(t *testing.T) {
	lamb := &model.Dish{ID: primitive.NewObjectID(), Price: dec("45.00")}
	salad := &model.Dish{ID: primitive.NewObjectID(), Price: dec("12.00")}
	dishes := map[primitive.ObjectID]*model.Dish{lamb.ID: lamb, salad.ID: salad}

	tests := []struct {
		name          string
		items         []model.PackageItem
		guests        int
		expectedTotal string
		expectedPP    string
	}{
		{
			name: "two dishes for twenty guests",
			items: []model.PackageItem{
				{DishID: lamb.ID, Quantity: 2, PriceAtTime: decPtr("45.00")},
				{DishID: salad.ID, Quantity: 1, PriceAtTime: decPtr("12.00")},
			},
			guests:        20,
			expectedTotal: "2040",
			expectedPP:    "102",
		},
		{
			name:          "single dish",
			items:         []model.PackageItem{{DishID: lamb.ID, Quantity: 2, PriceAtTime: decPtr("45.00")}},
			guests:        20,
			expectedTotal: "1800",
			expectedPP:    "90",
		},
		{
			name:          "zero items",
			items:         nil,
			guests:        20,
			expectedTotal: "0",
			expectedPP:    "0",
		},
		{
			name:          "snapshot overrides live price",
			items:         []model.PackageItem{{DishID: lamb.ID, Quantity: 1, PriceAtTime: decPtr("40.00")}},
			guests:        10,
			expectedTotal: "400",
			expectedPP:    "40",
		},
		{
			name:          "live price without snapshot",
			items:         []model.PackageItem{{DishID: salad.ID, Quantity: 3}},
			guests:        10,
			expectedTotal: "360",
			expectedPP:    "36",
		},
		{
			name:          "zero quantity counts as one",
			items:         []model.PackageItem{{DishID: salad.ID, Quantity: 0}},
			guests:        5,
			expectedTotal: "60",
			expectedPP:    "12",
		},
		{
			name:          "rounds half up to cents",
			items:         []model.PackageItem{{DishID: salad.ID, Quantity: 1, PriceAtTime: decPtr("0.005")}},
			guests:        1,
			expectedTotal: "0.01",
			expectedPP:    "0.01",
		},
		{
			name:          "unknown dish without snapshot is free",
			items:         []model.PackageItem{{DishID: primitive.NewObjectID(), Quantity: 1}},
			guests:        10,
			expectedTotal: "0",
			expectedPP:    "0",
		},
		{
			name:          "no guests",
			items:         []model.PackageItem{{DishID: lamb.ID, Quantity: 1}},
			guests:        0,
			expectedTotal: "0",
			expectedPP:    "0",
		},
	}

	calc := service.NewPricingCalculator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calc.Calculate(tt.items, dishes, tt.guests)
			assert.True(t, dec(tt.expectedTotal).Equal(got.Total), "total %s", got.Total)
			assert.True(t, dec(tt.expectedPP).Equal(got.PricePerPerson), "per person %s", got.PricePerPerson)
			assert.Len(t, got.Lines, len(tt.items))
		})
	}
}

func TestPricingCalculator_WithPricePlaces(t *testing.T) {
	dish := &model.Dish{ID: primitive.NewObjectID(), Price: dec("10.555")}
	calc := service.NewPricingCalculator(service.WithPricePlaces(0))

	got := calc.Calculate([]model.PackageItem{{DishID: dish.ID, Quantity: 1}},
		map[primitive.ObjectID]*model.Dish{dish.ID: dish}, 1)
	assert.True(t, dec("11").Equal(got.Total))
}
