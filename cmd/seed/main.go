// Command main runs the database seeder for DevConnect.
package main

import (
	"flag"
	"log"

	"devconnect/internal/config"
	"devconnect/internal/database"
	"devconnect/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 10, "Number of users to create")
	numPosts := flag.Int("posts", 25, "Number of posts to create")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	presetPath := flag.String("preset", "", "Apply a declarative YAML preset instead of random data")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if _, err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	path := *presetPath
	if path == "" {
		path = cfg.SeedPreset
	}

	if path != "" {
		log.Printf("Applying preset %s (ignoring other flags)", path)
		preset, err := seed.LoadPreset(path)
		if err != nil {
			log.Fatalf("Preset load failed: %v", err)
		}
		if *shouldClean {
			if err := seed.Clean(database.DB); err != nil {
				log.Fatalf("Cleanup failed: %v", err)
			}
		}
		if err := preset.Apply(database.DB); err != nil {
			log.Fatalf("Preset seeding failed: %v", err)
		}
		log.Println("Preset applied.")
		return
	}

	if err := seed.Run(database.DB, seed.Options{
		NumUsers:    *numUsers,
		NumPosts:    *numPosts,
		ShouldClean: *shouldClean,
	}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("All done! Your database is now populated with test data.")
}
