package service

import (
	"context"
	"fmt"
	"strings"

	"pantry/internal/recipes"
	"pantry/internal/repository"
)

// RecipeService suggests recipes based on the caller's pantry contents.
type RecipeService interface {
	SuggestRecipes(ctx context.Context, userID uint) ([]recipes.Recipe, error)
}

// RecipeFinder is the consumed contract of the external lookup service.
type RecipeFinder interface {
	FindByIngredients(ctx context.Context, ingredients string) ([]recipes.Recipe, error)
}

type recipeService struct {
	itemRepo repository.ItemRepository
	finder   RecipeFinder
}

// NewRecipeService builds a RecipeService over the item repository and a
// recipe finder.
func NewRecipeService(itemRepo repository.ItemRepository, finder RecipeFinder) RecipeService {
	return &recipeService{itemRepo: itemRepo, finder: finder}
}

// SuggestRecipes joins the caller's item names into the lookup key and
// delegates. An empty pantry short-circuits to an empty list without
// touching the external service.
func (s *recipeService) SuggestRecipes(ctx context.Context, userID uint) ([]recipes.Recipe, error) {
	items, err := s.itemRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	if len(items) == 0 {
		return []recipes.Recipe{}, nil
	}

	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, strings.ToLower(item.Name))
	}

	found, err := s.finder.FindByIngredients(ctx, strings.Join(names, ","))
	if err != nil {
		return nil, fmt.Errorf("find recipes: %w", err)
	}
	return found, nil
}
