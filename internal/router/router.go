package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"pantry/internal/auth"
	"pantry/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	sessions auth.SessionStoreInterface,
	authHandler *handler.AuthHandler,
	itemHandler *handler.ItemHandler,
	recipeHandler *handler.RecipeHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	// Secured routes: the guard resolves the session cookie before any
	// handler logic runs.
	secured := api.Group("", auth.RequireSession(sessions))

	secured.POST("/auth/logout", authHandler.Logout)
	secured.GET("/me", authHandler.Me)

	// Item routes
	secured.GET("/items", itemHandler.List)
	secured.POST("/items", itemHandler.Add)
	secured.PUT("/items/:id", itemHandler.Edit)
	secured.DELETE("/items/:id", itemHandler.Delete)

	// Recipe routes
	secured.GET("/recipes", recipeHandler.Suggest)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
