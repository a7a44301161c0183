package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"pantry/internal/model"
	"pantry/internal/recipes"
)

// stubFinder records the ingredient key it was asked for.
type stubFinder struct {
	lastIngredients string
	result          []recipes.Recipe
	err             error
	calls           int
}

func (s *stubFinder) FindByIngredients(ctx context.Context, ingredients string) ([]recipes.Recipe, error) {
	s.calls++
	s.lastIngredients = ingredients
	return s.result, s.err
}

func TestRecipeService_JoinsLowercasedItemNames(t *testing.T) {
	mockRepo := new(MockItemRepository)
	mockRepo.On("ListByUser", mock.Anything, uint(1)).Return([]model.Item{
		{UserID: 1, Name: "Eggs", ExpirationDate: time.Now()},
		{UserID: 1, Name: "Spinach", ExpirationDate: time.Now()},
		{UserID: 1, Name: "Chicken Breast", ExpirationDate: time.Now()},
	}, nil)

	finder := &stubFinder{result: []recipes.Recipe{{ID: 1, Title: "Omelette"}}}
	svc := NewRecipeService(mockRepo, finder)

	found, err := svc.SuggestRecipes(context.Background(), 1)

	assert.NoError(t, err)
	assert.Len(t, found, 1)
	assert.Equal(t, "eggs,spinach,chicken breast", finder.lastIngredients)
}

func TestRecipeService_EmptyPantrySkipsLookup(t *testing.T) {
	mockRepo := new(MockItemRepository)
	mockRepo.On("ListByUser", mock.Anything, uint(1)).Return([]model.Item{}, nil)

	finder := &stubFinder{}
	svc := NewRecipeService(mockRepo, finder)

	found, err := svc.SuggestRecipes(context.Background(), 1)

	assert.NoError(t, err)
	assert.Empty(t, found)
	assert.Zero(t, finder.calls, "empty pantry must not call the lookup service")
}
