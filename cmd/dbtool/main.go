package main

import (
	"city-route-service/internal/adapters/repositories"
	"city-route-service/internal/config"
	"city-route-service/internal/platform/db"
	"log"
	"strings"
)

// main creates the trip log schema for the configured database.
func main() {
	config.Load()
	cfg := config.FromEnv()

	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	dialect, err := repositories.ParseDialect(cfg.DBDriver)
	if err != nil {
		log.Fatal(err)
	}

	conn, err := db.Open(string(dialect), cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	log.Printf("Initializing trip log schema driver=%s...", dialect)
	if err := repositories.InitSchema(conn, dialect); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")
}
