package main

import (
	"database/sql"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/ockidea/ockidea-server/config"
	"github.com/ockidea/ockidea-server/pkg/helpers"
)

// Inserts the demo accounts directly, bypassing the HTTP surface.
// Useful for a fresh local database.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	seeds := []struct {
		email, password, nickname, birthDate, gender, bio string
	}{
		{"test@example.com", "password123", "테스트유저", "20030913", "F", "테스트용 사용자입니다"},
		{"user1@example.com", "password123", "사용자1", "19950825", "M", ""},
		{"user2@example.com", "password123", "사용자2", "20000101", "F", ""},
		{"user3@example.com", "password123", "사용자3", "19881224", "N", ""},
	}

	for _, s := range seeds {
		hash, err := helpers.HashPassword(s.password)
		if err != nil {
			log.Fatalf("failed to hash password: %v", err)
		}
		var id string
		err = db.QueryRow(`
			INSERT INTO users (email, password_hash, nickname, birth_date, gender, bio)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (email) DO NOTHING
			RETURNING id
		`, s.email, hash, s.nickname, s.birthDate, s.gender, s.bio).Scan(&id)
		if err == sql.ErrNoRows {
			log.Printf("skipped %s (already exists)", s.email)
			continue
		}
		if err != nil {
			log.Fatalf("failed to seed %s: %v", s.email, err)
		}
		log.Printf("seeded %s as %s", s.email, id)
	}
}
