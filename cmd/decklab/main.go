package main

import (
	"os"

	"github.com/decklab-dev/decklab/db"
	"github.com/decklab-dev/decklab/internal/auth"
	"github.com/decklab-dev/decklab/internal/logger"
	"github.com/decklab-dev/decklab/internal/router"
	"github.com/decklab-dev/decklab/internal/store"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logger.Info("No .env file found, reading environment variables")
	}

	if err := auth.InitJWTSecret(); err != nil {
		logger.Fatalf("Failed to initialize JWT secret: %v", err)
	}

	dsn := os.Getenv("DATABASE_URL")

	if dsn == "" {
		logger.Fatalf("DATABASE_URL is required")
	}

	gdb, err := db.Connect(dsn)

	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.Migrate(gdb); err != nil {
		logger.Fatalf("Failed to migrate database: %v", err)
	}

	r := router.NewRouter(store.New(gdb))

	port := os.Getenv("PORT")

	if port == "" {
		port = "3000"
		logger.Info("PORT not set, defaulting to 3000")
	}

	if err := r.Run(":" + port); err != nil {
		logger.Fatalf("Failed to start server: %v", err)
	}
}
