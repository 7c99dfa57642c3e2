//go:build !integration

package service_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/catering-service/internal/domain/model"
	"github.com/guttosm/catering-service/internal/service"
)

func TestPackageItemService_CreateAttachedReprices(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	h.store.setMinimumGuests(h.caterer.ID, 10)
	dish := h.store.addDish(h.caterer.ID, h.category.ID, "Curry", "8.00", 1)

	pkg, err := h.packages.Create(ctx, h.caterer, service.CreatePackageInput{Name: "Curry night"})
	require.NoError(t, err)

	snapshot := decimal.RequireFromString("7.50")
	created, err := h.items.Create(ctx, h.caterer, service.CreatePackageItemInput{
		DishID:      dish.ID,
		PackageID:   &pkg.Package.ID,
		Quantity:    2,
		PriceAtTime: &snapshot,
	})
	require.NoError(t, err)
	assert.Equal(t, 10, created.Item.PeopleCount, "people count defaults to the package minimum")
	require.NotNil(t, created.Package)
	assert.Equal(t, pkg.Package.ID, created.Package.ID)

	stored, _ := h.store.pkg(pkg.Package.ID)
	assert.Equal(t, "150.00", stored.TotalPrice.StringFixed(2))
}

func TestPackageItemService_CreateValidation(t *testing.T) {
	h := newHarness(t)
	dish := h.store.addDish(h.caterer.ID, h.category.ID, "Curry", "8.00", 1)
	negative := decimal.NewFromInt(-1)

	tests := []struct {
		name        string
		input       service.CreatePackageItemInput
		expectedErr error
	}{
		{name: "negative quantity", input: service.CreatePackageItemInput{DishID: dish.ID, Quantity: -1}, expectedErr: model.ErrValidation},
		{name: "negative people", input: service.CreatePackageItemInput{DishID: dish.ID, PeopleCount: -3}, expectedErr: model.ErrValidation},
		{name: "negative price", input: service.CreatePackageItemInput{DishID: dish.ID, PriceAtTime: &negative}, expectedErr: model.ErrValidation},
		{name: "unknown dish", input: service.CreatePackageItemInput{DishID: primitive.NewObjectID()}, expectedErr: model.ErrDishNotFound},
		{
			name:        "unknown package",
			input:       service.CreatePackageItemInput{DishID: dish.ID, PackageID: ptrID(primitive.NewObjectID())},
			expectedErr: model.ErrPackageNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := h.items.Create(context.Background(), h.caterer, tt.input)
			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
	_, items := h.store.counts()
	assert.Zero(t, items)
}

func TestPackageItemService_MoveBetweenPackages(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	h.store.setMinimumGuests(h.caterer.ID, 10)
	dish := h.store.addDish(h.caterer.ID, h.category.ID, "Pasta", "6.00", 1)

	from, err := h.packages.Create(ctx, h.caterer, service.CreatePackageInput{
		Name:  "From",
		Items: service.ItemRefs{DishIDs: []primitive.ObjectID{dish.ID}},
	})
	require.NoError(t, err)
	to, err := h.packages.Create(ctx, h.caterer, service.CreatePackageInput{Name: "To", MinimumPeople: intPtr(5)})
	require.NoError(t, err)
	itemID := from.Items[0].Item.ID

	target := model.AttachedTo(to.Package.ID)
	moved, err := h.items.Update(ctx, h.caterer, itemID, service.UpdatePackageItemInput{Attachment: &target})
	require.NoError(t, err)
	assert.Equal(t, to.Package.ID, moved.Package.ID)

	fromStored, _ := h.store.pkg(from.Package.ID)
	toStored, _ := h.store.pkg(to.Package.ID)
	assert.True(t, fromStored.TotalPrice.IsZero())
	assert.Equal(t, "30.00", toStored.TotalPrice.StringFixed(2))

	detached := model.Unattached()
	_, err = h.items.Update(ctx, h.caterer, itemID, service.UpdatePackageItemInput{Attachment: &detached})
	require.NoError(t, err)
	toStored, _ = h.store.pkg(to.Package.ID)
	assert.True(t, toStored.TotalPrice.IsZero())
	assert.True(t, h.store.item(itemID).Attachment.IsDraft())
}

func TestPackageItemService_LinkingMovesAndRepricesSource(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	h.store.setMinimumGuests(h.caterer.ID, 10)
	dish := h.store.addDish(h.caterer.ID, h.category.ID, "Pasta", "6.00", 1)

	from, err := h.packages.Create(ctx, h.caterer, service.CreatePackageInput{
		Name:  "From",
		Items: service.ItemRefs{DishIDs: []primitive.ObjectID{dish.ID}},
	})
	require.NoError(t, err)
	itemID := from.Items[0].Item.ID

	to, err := h.packages.Create(ctx, h.caterer, service.CreatePackageInput{
		Name:  "To",
		Items: service.ItemRefs{PackageItemIDs: []primitive.ObjectID{itemID}},
	})
	require.NoError(t, err)
	assert.Equal(t, "60.00", to.Package.TotalPrice.StringFixed(2))

	fromStored, _ := h.store.pkg(from.Package.ID)
	assert.True(t, fromStored.TotalPrice.IsZero(), "source package loses the item's share")
}

func TestPackageItemService_DishChangeRefreshesSnapshot(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	h.store.setMinimumGuests(h.caterer.ID, 10)
	soup := h.store.addDish(h.caterer.ID, h.category.ID, "Soup", "4.00", 1)
	steak := h.store.addDish(h.caterer.ID, h.category.ID, "Steak", "25.00", 1)

	pkg, err := h.packages.Create(ctx, h.caterer, service.CreatePackageInput{
		Name:  "Dinner",
		Items: service.ItemRefs{DishIDs: []primitive.ObjectID{soup.ID}},
	})
	require.NoError(t, err)
	itemID := pkg.Items[0].Item.ID

	updated, err := h.items.Update(ctx, h.caterer, itemID, service.UpdatePackageItemInput{DishID: &steak.ID})
	require.NoError(t, err)
	assert.Equal(t, "25.00", updated.Item.PriceAtTime.StringFixed(2))
	assert.Equal(t, steak.ID, updated.Dish.ID)

	stored, _ := h.store.pkg(pkg.Package.ID)
	assert.Equal(t, "250.00", stored.TotalPrice.StringFixed(2))
}

func TestPackageItemService_DeleteReprices(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	h.store.setMinimumGuests(h.caterer.ID, 10)
	a := h.store.addDish(h.caterer.ID, h.category.ID, "A", "1.00", 1)
	b := h.store.addDish(h.caterer.ID, h.category.ID, "B", "2.00", 1)

	pkg, err := h.packages.Create(ctx, h.caterer, service.CreatePackageInput{
		Name:  "Two",
		Items: service.ItemRefs{DishIDs: []primitive.ObjectID{a.ID, b.ID}},
	})
	require.NoError(t, err)
	assert.Equal(t, "30.00", pkg.Package.TotalPrice.StringFixed(2))

	require.NoError(t, h.items.Delete(ctx, h.caterer, itemForDish(t, pkg, b.ID).ID))

	stored, _ := h.store.pkg(pkg.Package.ID)
	assert.Equal(t, "10.00", stored.TotalPrice.StringFixed(2))
}

func TestPackageItemService_ListGrouped(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	h.store.setMinimumGuests(h.caterer.ID, 10)
	desserts := h.store.addCategory("Desserts")
	h.store.addCategory("Drinks")
	main := h.store.addDish(h.caterer.ID, h.category.ID, "Roast", "10.00", 1)
	cake := h.store.addDish(h.caterer.ID, desserts.ID, "Cake", "3.00", 1)

	pkg, err := h.packages.Create(ctx, h.caterer, service.CreatePackageInput{
		Name:  "Sunday",
		Items: service.ItemRefs{DishIDs: []primitive.ObjectID{main.ID}},
	})
	require.NoError(t, err)
	_, err = h.items.Create(ctx, h.caterer, service.CreatePackageItemInput{DishID: cake.ID})
	require.NoError(t, err)

	groups, err := h.items.ListGrouped(ctx, h.caterer, false)
	require.NoError(t, err)
	require.Len(t, groups, 3, "every category is listed")

	byName := map[string]model.ItemGroup{}
	for _, g := range groups {
		byName[g.Category.Name] = g
	}
	require.Len(t, byName["Mains"].Items, 1)
	require.NotNil(t, byName["Mains"].Items[0].Package)
	assert.Equal(t, pkg.Package.ID, byName["Mains"].Items[0].Package.ID)
	require.Len(t, byName["Desserts"].Items, 1)
	assert.Nil(t, byName["Desserts"].Items[0].Package)
	assert.Empty(t, byName["Drinks"].Items)

	drafts, err := h.items.ListGrouped(ctx, h.caterer, true)
	require.NoError(t, err)
	total := 0
	for _, g := range drafts {
		total += len(g.Items)
	}
	assert.Equal(t, 1, total)
}

func ptrID(id primitive.ObjectID) *primitive.ObjectID { return &id }
