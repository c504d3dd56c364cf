package main

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/ProfJake/lab10/config"
	"github.com/ProfJake/lab10/internal/domain/entity"
	"github.com/ProfJake/lab10/internal/domain/repository"
	pginfra "github.com/ProfJake/lab10/internal/infrastructure/postgres"
	"github.com/ProfJake/lab10/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	ctx := context.Background()
	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnLife)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	users := pginfra.NewUserRepository(pool)
	activities := pginfra.NewActivityRepository(pool)

	password := "password123"
	demo := &entity.User{
		ID:       "demoUser",
		Name:     "Demo User",
		Email:    "demo@example.com",
		Age:      30,
		Password: helpers.Fingerprint(password),
	}
	if err := users.CreateIfAbsent(ctx, demo); err != nil {
		if !errors.Is(err, repository.ErrAlreadyExists) {
			log.Fatalf("failed to seed user: %v", err)
		}
		fmt.Printf("user %s already seeded\n", demo.ID)
	} else {
		fmt.Printf("seeded user: id=%s email=%s password=%s\n", demo.ID, demo.Email, password)
	}

	seedActivities := []entity.Activity{
		{Type: "running", Weight: 180, Distance: 3.1, Time: 30, UserID: demo.ID},
		{Type: "cycling", Weight: 180, Distance: 12, Time: 45, UserID: demo.ID},
		{Type: "swimming", Weight: 180, Distance: 1, Time: 40, UserID: demo.ID},
	}
	for _, a := range seedActivities {
		id, err := activities.Insert(ctx, &a)
		if err != nil {
			log.Fatalf("failed to seed activity: %v", err)
		}
		fmt.Printf("seeded activity: id=%s type=%s\n", id, a.Type)
	}
}
