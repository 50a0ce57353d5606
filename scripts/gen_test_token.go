package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/sycord/server/internal/auth"
	"github.com/sycord/server/sycord/users"
)

// generates a JWT for a throwaway test user so API endpoints can be
// exercised with curl without going through the Discord OAuth flow
func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	dbConnString := os.Getenv("DATABASE_CONNECTION_STRING")
	if dbConnString == "" {
		log.Fatal("DATABASE_CONNECTION_STRING not set")
	}

	dbPool, err := pgxpool.New(context.Background(), dbConnString)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	userRepo := users.NewRepository(dbPool)

	user, err := userRepo.FindOrCreateByProvider(
		context.Background(),
		"test",
		"test-user-123",
		"test-user",
		"test@sycord.dev",
		"",
	)
	if err != nil {
		log.Fatalf("Failed to create test user: %v", err)
	}

	fmt.Printf("Using test user %s (ID: %s)\n", user.Username, user.ID)

	token, err := auth.GenerateJWT(user.ID, user.Username)
	if err != nil {
		log.Fatalf("Failed to generate JWT: %v", err)
	}

	fmt.Printf("\nTest JWT Token:\n%s\n\n", token)
	fmt.Printf("Export this token for testing:\nexport TEST_TOKEN=\"%s\"\n", token)
}
