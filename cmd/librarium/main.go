package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/librarium-dev/librarium/db"
	"github.com/librarium-dev/librarium/internal/config"
	"github.com/librarium-dev/librarium/internal/mailer"
	"github.com/librarium-dev/librarium/internal/router"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment as-is")
	}

	cfg := config.Load()

	database, err := db.ConnectDatabase(cfg.DSN())

	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.MigrateDatabase(database); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	r := router.NewRouter(database, mailer.NewSMTP(cfg), cfg.AllowedOrigins)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
