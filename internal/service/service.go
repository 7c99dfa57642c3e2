// Package service implements the business logic of the catering service:
// dishes, package items, package composition and pricing, add-ons and caterer settings.
package service

import (
	"github.com/guttosm/catering-service/internal/domain/model"
	"github.com/guttosm/catering-service/internal/i18n"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultCurrency is used when neither the caller nor the caterer settings name one.
const DefaultCurrency = "EUR"

func requireCaterer(actor model.Actor) error {
	if !actor.IsCaterer() {
		return model.ErrInvalidCaterer
	}
	return nil
}

func requiredField(field string) error {
	return model.Validation(i18n.ErrKeyValidationFailed, "%s is required", field)
}

// uniqueIDs drops duplicates while keeping first-seen order.
func uniqueIDs(ids []primitive.ObjectID) []primitive.ObjectID {
	seen := make(map[primitive.ObjectID]struct{}, len(ids))
	out := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func dishIndex(dishes []model.Dish) map[primitive.ObjectID]*model.Dish {
	idx := make(map[primitive.ObjectID]*model.Dish, len(dishes))
	for i := range dishes {
		idx[dishes[i].ID] = &dishes[i]
	}
	return idx
}

func dishIDsOf(items []model.PackageItem) []primitive.ObjectID {
	ids := make([]primitive.ObjectID, 0, len(items))
	for i := range items {
		ids = append(ids, items[i].DishID)
	}
	return uniqueIDs(ids)
}

func itemIDsOf(items []model.PackageItem) []primitive.ObjectID {
	ids := make([]primitive.ObjectID, 0, len(items))
	for i := range items {
		ids = append(ids, items[i].ID)
	}
	return ids
}

func boolOr(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}
	return *v
}
