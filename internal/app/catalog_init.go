package app

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/catering-service/internal/domain/model"
)

// catalogSeeder is the part of the catalog repository used to seed reference data.
type catalogSeeder interface {
	ListCategories(ctx context.Context) ([]model.Category, error)
	ListOccasions(ctx context.Context) ([]model.Occasion, error)
	CreateCategory(ctx context.Context, c *model.Category) error
	CreateSubCategory(ctx context.Context, s *model.SubCategory) error
	CreateOccasion(ctx context.Context, o *model.Occasion) error
}

var defaultCategories = map[string][]string{
	"Starters": {"Cold", "Hot"},
	"Mains":    {"Meat", "Fish", "Vegetarian"},
	"Sides":    nil,
	"Desserts": {"Cakes", "Fruit"},
	"Drinks":   {"Soft drinks", "Hot drinks"},
}

var defaultOccasions = []string{"Wedding", "Birthday", "Corporate", "Funeral", "Christening", "Garden party"}

// initializeDefaultCatalog creates the default categories and occasions when none exist.
func initializeDefaultCatalog(ctx context.Context, repo catalogSeeder) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	categories, err := repo.ListCategories(ctx)
	if err != nil {
		return err
	}
	if len(categories) == 0 {
		for name, subs := range defaultCategories {
			category := &model.Category{Name: name}
			if err := repo.CreateCategory(ctx, category); err != nil {
				log.Warn().Err(err).Str("category", name).Msg("Failed to create category")
				continue
			}
			for _, sub := range subs {
				if err := repo.CreateSubCategory(ctx, &model.SubCategory{CategoryID: category.ID, Name: sub}); err != nil {
					log.Warn().Err(err).Str("sub_category", sub).Msg("Failed to create sub-category")
				}
			}
		}
		log.Info().Int("count", len(defaultCategories)).Msg("Created default categories")
	}

	occasions, err := repo.ListOccasions(ctx)
	if err != nil {
		return err
	}
	if len(occasions) == 0 {
		for _, name := range defaultOccasions {
			if err := repo.CreateOccasion(ctx, &model.Occasion{Name: name}); err != nil {
				log.Warn().Err(err).Str("occasion", name).Msg("Failed to create occasion")
			}
		}
		log.Info().Int("count", len(defaultOccasions)).Msg("Created default occasions")
	}

	return nil
}
