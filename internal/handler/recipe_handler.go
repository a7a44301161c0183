package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"pantry/internal/auth"
	"pantry/internal/service"
)

// RecipeHandler handles recipe suggestion endpoints.
type RecipeHandler struct {
	svc service.RecipeService
}

// NewRecipeHandler creates a new recipe handler.
func NewRecipeHandler(svc service.RecipeService) *RecipeHandler {
	return &RecipeHandler{svc: svc}
}

// Suggest godoc
// @Summary Suggest recipes for the caller's pantry contents
// @Tags recipes
// @Produce json
// @Success 200 {array} recipes.Recipe
// @Failure 401 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /recipes [get]
func (h *RecipeHandler) Suggest(c echo.Context) error {
	userID, ok := auth.UserID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}

	found, err := h.svc.SuggestRecipes(c.Request().Context(), userID)
	if err != nil {
		// The lookup service is an external collaborator; its failures are
		// not the caller's fault and not ours either.
		return echo.NewHTTPError(http.StatusBadGateway, "recipe lookup unavailable")
	}
	return c.JSON(http.StatusOK, found)
}
