// Command migrate applies the GORM schema to the configured database.
// Automatic migration is skipped in production, so deploys run this
// explicitly before starting the server.
package main

import (
	"log"

	"devconnect/internal/config"
	"devconnect/internal/database"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("Schema migration complete")
}
