package service

import (
	"context"
	"fmt"

	"github.com/guttosm/catering-service/internal/domain/model"
	"github.com/guttosm/catering-service/internal/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CategorySelectionValidator checks the category selection rules of a package.
type CategorySelectionValidator interface {
	Validate(ctx context.Context, customisation model.CustomisationType, selections []model.CategorySelection) error
}

// CategorySelectionValidatorImpl implements CategorySelectionValidator.
type CategorySelectionValidatorImpl struct {
	catalog repository.CatalogRepositoryInterface
}

// NewCategorySelectionValidator creates a new category selection validator.
func NewCategorySelectionValidator(catalog repository.CatalogRepositoryInterface) CategorySelectionValidator {
	return &CategorySelectionValidatorImpl{catalog: catalog}
}

// Validate enforces, in order: selections only on FIXED packages, at least one dish per
// selection, one rule per category, and that every category exists.
func (v *CategorySelectionValidatorImpl) Validate(ctx context.Context, customisation model.CustomisationType, selections []model.CategorySelection) error {
	if len(selections) == 0 {
		return nil
	}
	if customisation != model.CustomisationFixed {
		return model.ErrSelectionsOnCustomisable
	}

	seen := make(map[primitive.ObjectID]struct{}, len(selections))
	ids := make([]primitive.ObjectID, 0, len(selections))
	for _, sel := range selections {
		if sel.NumDishesToSelect != nil && *sel.NumDishesToSelect < 1 {
			return model.ErrSelectionInvalidCount
		}
		if _, dup := seen[sel.CategoryID]; dup {
			return model.ErrSelectionDuplicate
		}
		seen[sel.CategoryID] = struct{}{}
		ids = append(ids, sel.CategoryID)
	}

	found, err := v.catalog.GetCategoriesByIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("load categories: %w", err)
	}
	if len(found) != len(ids) {
		return model.ErrCategoryNotFound
	}
	return nil
}
