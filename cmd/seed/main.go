package main

import (
	"context"
	"errors"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"pantry/internal/config"
	"pantry/internal/db"
	"pantry/internal/model"
	"pantry/internal/repository"
)

const (
	demoUsername = "demo"
	demoPassword = "demo-password"
)

// seedItems is the starter pantry, expirations relative to the run date.
var seedItems = []struct {
	name    string
	daysOut int
	notes   string
}{
	{"milk", 5, "half gallon"},
	{"eggs", 14, ""},
	{"cheddar", 30, "block, unopened"},
	{"spinach", 3, "use soon"},
	{"chicken breast", 2, "freezer candidate"},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.Item{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)
	itemRepo := repository.NewItemRepository(gormDB)

	user, err := ensureDemoUser(ctx, userRepo)
	if err != nil {
		log.Fatalf("Failed to seed demo user: %v", err)
	}

	existing, err := itemRepo.ListByUser(ctx, user.ID)
	if err != nil {
		log.Fatalf("Failed to list demo items: %v", err)
	}
	if len(existing) > 0 {
		log.Printf("Demo pantry already has %d items, nothing to do", len(existing))
		return
	}

	now := time.Now()
	for _, s := range seedItems {
		item := &model.Item{
			UserID:         user.ID,
			Name:           s.name,
			ExpirationDate: now.AddDate(0, 0, s.daysOut),
			Notes:          s.notes,
		}
		if err := itemRepo.Create(ctx, item); err != nil {
			log.Fatalf("Failed to create item %q: %v", s.name, err)
		}
	}

	log.Printf("Seed completed: user %q with %d items", demoUsername, len(seedItems))
}

// ensureDemoUser returns the demo user, creating it on first run.
func ensureDemoUser(ctx context.Context, repo repository.UserRepository) (*model.User, error) {
	user, err := repo.FindByUsername(ctx, demoUsername)
	if err == nil {
		log.Printf("Demo user %q already exists", demoUsername)
		return user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user = &model.User{
		Username:     demoUsername,
		PasswordHash: string(hashed),
	}
	if err := repo.Create(ctx, user); err != nil {
		return nil, err
	}
	log.Printf("Created demo user %q", demoUsername)
	return user, nil
}
