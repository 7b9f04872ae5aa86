package main

import (
	"context"
	"log"
	"os"
	"strings"

	"ats-backend/internal/shared/config"
	"ats-backend/internal/shared/storage/db"
)

func main() {
	cfg := config.Load()

	databaseURL := strings.TrimSpace(cfg.DatabaseURL)
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	ctx := context.Background()
	opts := db.OptionsFromEnv(db.DefaultMigrateOptions())
	database, err := db.Connect(ctx, databaseURL, opts)
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}
	defer database.Close()

	if err := db.RunMigrations(ctx, database); err != nil {
		log.Fatalf("run migrations: %v", err)
	}

	log.Printf("migrations applied")
	os.Exit(0)
}
