package main

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"pantry/internal/auth"
	"pantry/internal/cache"
	"pantry/internal/config"
	"pantry/internal/db"
	"pantry/internal/handler"
	"pantry/internal/model"
	"pantry/internal/recipes"
	"pantry/internal/repository"
	"pantry/internal/router"
	"pantry/internal/service"
)

// @title Pantry API
// @version 1.0
// @description Household inventory tracker with cookie sessions and recipe suggestions.
// @host localhost:8080
// @BasePath /api
// @schemes http
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(&model.User{}, &model.Item{}); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	sessionStore := auth.NewSessionStore(cacheClient)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	itemRepo := repository.NewItemRepository(gormDB)

	// External recipe lookup with its on-disk response cache
	recipeClient := recipes.NewClient(cfg.RecipeAPIURL, cfg.RecipeAPIKey, cfg.RecipeCacheDir)

	// Initialize services
	authService := service.NewAuthService(userRepo, sessionStore, cfg.SessionTTL)
	inventoryService := service.NewInventoryService(itemRepo)
	recipeService := service.NewRecipeService(itemRepo, recipeClient)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	itemHandler := handler.NewItemHandler(inventoryService)
	recipeHandler := handler.NewRecipeHandler(recipeService)

	// Register routes
	router.Register(e, sessionStore, authHandler, itemHandler, recipeHandler)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
