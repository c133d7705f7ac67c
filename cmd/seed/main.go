package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/habitflow/habitflow-api/config"
	"github.com/habitflow/habitflow-api/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	email := "demo@habitflow.local"
	password := "password123"
	username := "demoUser"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var id string
	err = db.QueryRow(`
		INSERT INTO users (email, username, password_hash, is_verified)
		VALUES ($1, $2, $3, true)
		ON CONFLICT (email) DO UPDATE SET username = EXCLUDED.username
		RETURNING id
	`, email, username, hash).Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%s email=%s username=%s password=%s\n", id, email, username, password)

	for _, name := range []string{"Morning run", "Read 20 pages"} {
		if _, err := db.Exec(`
			INSERT INTO habits (user_id, name)
			SELECT $1, $2
			WHERE NOT EXISTS (SELECT 1 FROM habits WHERE user_id = $1 AND name = $2)
		`, id, name); err != nil {
			log.Fatalf("failed to seed habit %q: %v", name, err)
		}
	}
	fmt.Println("seeded demo habits")
}
