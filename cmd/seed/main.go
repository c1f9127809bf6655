// Command seed loads a demo user and a handful of diary entries so the
// frontend has something to render on a fresh database.
package main

import (
	"context"
	"log"
	"time"

	"vespera/internal/auth"
	"vespera/internal/config"
	"vespera/internal/db"
	"vespera/internal/model"
	"vespera/internal/repository"
)

type seedEntry struct {
	Date        string
	Emoji       string
	Title       string
	Description string
}

var demoEntries = []seedEntry{
	{Date: "2024-01-10", Emoji: "🙂", Title: "Primeiro dia", Description: "Começando o diário."},
	{Date: "2024-02-15", Emoji: "📚", Title: "Dia de estudo", Description: ""},
	{Date: "2024-03-05", Emoji: "🌙", Title: "Noite tranquila", Description: "Dormi cedo."},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	// Run migrations to ensure schema is up to date
	if err := gormDB.AutoMigrate(&model.User{}, &model.DiaryEntry{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)
	diaryRepo := repository.NewDiaryRepository(gormDB)

	created, err := seedDemoUser(ctx, userRepo)
	if err != nil {
		log.Fatalf("Failed to seed demo user: %v", err)
	}
	if created {
		log.Println("Demo user created (demo@vespera.app / vespera)")
	} else {
		log.Println("Demo user already present, skipping")
	}

	seeded, err := seedDiaryEntries(ctx, diaryRepo)
	if err != nil {
		log.Fatalf("Failed to seed diary entries: %v", err)
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - Diary entries created: %d", seeded)
}

// seedDemoUser creates the demo account unless it already exists.
func seedDemoUser(ctx context.Context, repo repository.UserRepository) (bool, error) {
	existing, err := repo.FindByEmail(ctx, "demo@vespera.app")
	if err != nil {
		return false, err
	}
	if existing != nil {
		return false, nil
	}

	hash, err := auth.HashPassword("vespera")
	if err != nil {
		return false, err
	}
	user := &model.User{
		Name:         "Demo",
		Email:        "demo@vespera.app",
		PasswordHash: hash,
	}
	if err := repo.Create(ctx, user); err != nil {
		return false, err
	}
	return true, nil
}

// seedDiaryEntries inserts the demo entries when the diary is still empty.
func seedDiaryEntries(ctx context.Context, repo repository.DiaryRepository) (int, error) {
	existing, err := repo.ListByDateDesc(ctx)
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		return 0, nil
	}

	seeded := 0
	for _, item := range demoEntries {
		date, err := time.Parse(model.DateLayout, item.Date)
		if err != nil {
			log.Printf("Skipping entry with invalid date: %s", item.Date)
			continue
		}
		entry := &model.DiaryEntry{
			Date:        date,
			Emoji:       item.Emoji,
			Title:       item.Title,
			Description: item.Description,
			CreatedAt:   time.Now(),
		}
		if err := repo.Create(ctx, entry); err != nil {
			return seeded, err
		}
		seeded++
	}
	return seeded, nil
}
