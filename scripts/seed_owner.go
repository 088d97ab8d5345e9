package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"devfolio/pkg/auth"
)

// Bootstraps the portfolio owner account. Safe to re-run: an existing
// account just gets its password reset.
func main() {
	fmt.Println("adding owner into database...")

	if err := godotenv.Load(); err != nil {
		log.Println("warning: .env file not found, use system environment variables.")
	}

	dsn := os.Getenv("DB_DSN")
	ownerEmail := os.Getenv("OWNER_EMAIL")
	ownerPassword := os.Getenv("OWNER_PASSWORD")

	hash, err := auth.HashPassword(ownerPassword)
	if err != nil {
		log.Fatalf("cannot hash password: %v", err)
	}

	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		log.Fatalf("cannot connect DB: %v", err)
	}
	defer pool.Close()

	ownerID := uuid.New()
	query := `
		INSERT INTO users (id, email, password_hash)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO UPDATE SET password_hash = $3
	`
	if _, err := pool.Exec(context.Background(), query, ownerID, ownerEmail, hash); err != nil {
		log.Fatalf("cannot add user: %v", err)
	}

	// Seed the profile row too so the public page resolves an owner before
	// the first dashboard save.
	profileQuery := `
		INSERT INTO profiles (owner_id)
		SELECT id FROM users WHERE email = $1
		ON CONFLICT (owner_id) DO NOTHING
	`
	if _, err := pool.Exec(context.Background(), profileQuery, ownerEmail); err != nil {
		log.Fatalf("cannot seed profile: %v", err)
	}

	fmt.Printf("added or updated owner '%s' successfully!\n", ownerEmail)
}
