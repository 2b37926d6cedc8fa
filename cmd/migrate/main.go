package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"tenfold/internal/config"
	"tenfold/internal/database"
)

func main() {
	down := flag.Bool("down", false, "Roll back the most recent migration instead of migrating up")
	flag.Parse()

	// Load .env file
	_ = godotenv.Load()

	cfg := config.Load()

	// SAFETY: rollbacks drop tables; never run them against production
	if cfg.Environment == "prod" && *down {
		log.Fatalf("BLOCKED: cannot roll back migrations in production environment")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	if cfg.DatabaseURL == "" {
		log.Fatalf("DATABASE_URL is required")
	}

	if *down {
		if err := database.MigrateDown(cfg.DatabaseURL, logger); err != nil {
			log.Fatalf("Migration rollback failed: %v", err)
		}
		return
	}

	if err := database.MigrateUp(cfg.DatabaseURL, logger); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
}
