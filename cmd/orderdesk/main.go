package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/orderdesk-dev/orderdesk/db"
	"github.com/orderdesk-dev/orderdesk/internal/auth"
	"github.com/orderdesk-dev/orderdesk/internal/logger"
	"github.com/orderdesk-dev/orderdesk/internal/router"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	if err := logger.Init(); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Log.Sync()

	if err := auth.InitJWTSecret(); err != nil {
		logger.Log.Fatal("Failed to initialize JWT secret", zap.Error(err))
	}

	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		logger.Log.Fatal("DATABASE_DSN environment variable is not set")
	}

	if err := db.ConnectDatabase(dsn); err != nil {
		logger.Log.Fatal("Failed to connect to database", zap.Error(err))
	}

	if err := db.MigrateDatabase(); err != nil {
		logger.Log.Fatal("Failed to migrate database", zap.Error(err))
	}

	if err := db.SeedDefaults(); err != nil {
		logger.Log.Fatal("Failed to seed defaults", zap.Error(err))
	}

	r := router.NewRouter()

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
		logger.Log.Info("PORT not set, defaulting to 3000")
	}

	logger.Log.Info("Starting server", zap.String("port", port))

	if err := r.Run(":" + port); err != nil {
		logger.Log.Fatal("Failed to start server", zap.Error(err))
	}
}
