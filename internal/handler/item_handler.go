package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"pantry/internal/auth"
	"pantry/internal/errors"
	"pantry/internal/service"
)

// ItemHandler handles pantry item endpoints. All routes sit behind the
// session guard, so the user id is always present in the context.
type ItemHandler struct {
	svc service.InventoryService
}

// NewItemHandler creates a handler layer.
func NewItemHandler(svc service.InventoryService) *ItemHandler {
	return &ItemHandler{svc: svc}
}

// ItemRequest carries item fields for add and edit.
type ItemRequest struct {
	Name           string `json:"name" validate:"required"`
	ExpirationDate string `json:"expiration_date" validate:"required"`
	Notes          string `json:"notes"`
}

// List godoc
// @Summary List the caller's items, soonest expiration first
// @Tags items
// @Produce json
// @Success 200 {array} model.Item
// @Failure 401 {object} errors.ErrorResponse
// @Router /items [get]
func (h *ItemHandler) List(c echo.Context) error {
	userID, ok := auth.UserID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}

	items, err := h.svc.ListItems(c.Request().Context(), userID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, items)
}

// Add godoc
// @Summary Add an item to the caller's pantry
// @Tags items
// @Accept json
// @Produce json
// @Param request body ItemRequest true "Item fields"
// @Success 201 {object} model.Item
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /items [post]
func (h *ItemHandler) Add(c echo.Context) error {
	userID, ok := auth.UserID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}

	var req ItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	item, err := h.svc.AddItem(c.Request().Context(), userID, req.Name, req.ExpirationDate, req.Notes)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, item)
}

// Edit godoc
// @Summary Edit one of the caller's items
// @Tags items
// @Accept json
// @Produce json
// @Param id path int true "Item ID"
// @Param request body ItemRequest true "Item fields"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /items/{id} [put]
func (h *ItemHandler) Edit(c echo.Context) error {
	userID, ok := auth.UserID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}

	itemID, err := strconv.Atoi(c.Param("id"))
	if err != nil || itemID < 1 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid item id")
	}

	var req ItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.svc.EditItem(c.Request().Context(), userID, uint(itemID), req.Name, req.ExpirationDate, req.Notes); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "item updated"})
}

// Delete godoc
// @Summary Delete one of the caller's items
// @Tags items
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /items/{id} [delete]
func (h *ItemHandler) Delete(c echo.Context) error {
	userID, ok := auth.UserID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}

	itemID, err := strconv.Atoi(c.Param("id"))
	if err != nil || itemID < 1 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid item id")
	}

	if err := h.svc.DeleteItem(c.Request().Context(), userID, uint(itemID)); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "item deleted"})
}
