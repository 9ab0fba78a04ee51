package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/flameunter/fanclub/internal/club"
	"github.com/flameunter/fanclub/internal/database"
	"github.com/joho/godotenv"
)

// Seeds the initial roster, schedule and bulletin into a local SQLite file or
// a remote Turso database. Safe to re-run: seeding is skipped when players
// already exist.
func main() {
	log.Info("Starting database seeder...")

	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, reading from environment variables")
	}

	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		dbName = "fanclub.db"
	}

	db, teardown, err := database.InitDB(dbName, os.Getenv("TURSO_PRIMARY_URL"), os.Getenv("TURSO_AUTH_TOKEN"))
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err)
	}
	defer teardown()

	store := club.New(db, club.ModeratorCredentials{})
	if err := store.Seed(); err != nil {
		log.Fatalf("Failed to seed store: %s", err)
	}

	players, err := store.ListPlayers()
	if err != nil {
		log.Fatalf("Failed to list players after seeding: %s", err)
	}
	log.Info("Seeding complete", "players", len(players))
}
