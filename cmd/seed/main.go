package main

import (
	"context"
	"errors"
	"log"

	"rw-be-svc/internal/config"
	"rw-be-svc/internal/database"
	"rw-be-svc/internal/models"
	"rw-be-svc/internal/repository"
	"rw-be-svc/internal/service"
	"rw-be-svc/pkg/logger"
)

const seedPassword = "12345678"

var seedUsers = []service.NewUserInput{
	{Username: "buah", Name: "Buah", Email: "buah@example.com", Role: models.RoleAdmin},
	{Username: "farhan", Name: "Farhan", Email: "farhan@example.com", Role: models.RoleRT, RTNumber: "1"},
	{Username: "mmm", Name: "Mmm", Email: "mmm@example.com", Role: models.RoleWarga},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger := logger.NewLogger(cfg.Logger.Level, cfg.Logger.Format)

	db, err := database.NewDatabase(&cfg.Database)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to connect to database")
	}
	defer db.Close()

	if err := db.AutoMigrate(); err != nil {
		appLogger.WithError(err).Fatal("Failed to run database migrations")
	}

	userService := service.NewUserService(repository.NewUserRepository(db.DB), appLogger)

	ctx := context.Background()
	for _, input := range seedUsers {
		input.Password = seedPassword
		_, err := userService.CreateUser(ctx, input)
		switch {
		case err == nil:
			appLogger.WithField("username", input.Username).WithField("role", input.Role).Info("Seeded user")
		case errors.Is(err, service.ErrUsernameTaken):
			appLogger.WithField("username", input.Username).Info("User already exists, skipping")
		default:
			appLogger.WithError(err).WithField("username", input.Username).Fatal("Failed to seed user")
		}
	}

	appLogger.Info("Seeding completed")
}
