package main

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"taskhub/config"
	"taskhub/internal/domain/apperr"
	"taskhub/internal/domain/entity"
	pginfra "taskhub/internal/infrastructure/postgres"
	"taskhub/pkg/helpers"
)

// Seeds one demo account through the same factory and repository the server
// uses, so the seeded row satisfies every aggregate invariant.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	ctx := context.Background()

	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnLife)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	repo := pginfra.NewUserRepository(pool)
	factory := entity.NewUserFactory()

	email := "demo@taskhub.dev"
	password := "password123"

	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	u, err := factory.Create(email, "Demo", "User", hash)
	if err != nil {
		log.Fatalf("failed to build user: %v", err)
	}

	err = repo.Save(ctx, u)
	var exists *apperr.AlreadyExistsError
	if errors.As(err, &exists) {
		fmt.Printf("demo user already seeded: email=%s\n", email)
		return
	}
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%s email=%s password=%s\n", u.ID, email, password)
}
