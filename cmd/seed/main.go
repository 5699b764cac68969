package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Nawaf-Almansour/prep-manger/internal/apiclient"
	authrepo "github.com/Nawaf-Almansour/prep-manger/internal/auth/repository"
	categoryrepo "github.com/Nawaf-Almansour/prep-manger/internal/category/repository"
	"github.com/Nawaf-Almansour/prep-manger/internal/config"
	inventoryrepo "github.com/Nawaf-Almansour/prep-manger/internal/inventory/repository"
	productrepo "github.com/Nawaf-Almansour/prep-manger/internal/product/repository"
	"github.com/Nawaf-Almansour/prep-manger/internal/seed"
	"github.com/Nawaf-Almansour/prep-manger/pkg/logger"
)

func main() {
	cfg := config.Load()

	// API failures are already printed by the reporter, keep the log quiet.
	logger.Init("prep-seed", false)
	logger.SetLevel(getEnv("LOG_LEVEL", "error"))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	api := apiclient.New(apiclient.Options{BaseURL: cfg.API.BaseURL, Timeout: cfg.API.Timeout})
	seeder := seed.NewSeeder(api, seed.Repositories{
		Auth:       authrepo.NewRESTAuthRepository(api),
		Categories: categoryrepo.NewRESTCategoryRepository(api),
		Inventory:  inventoryrepo.NewRESTInventoryRepository(api),
		Products:   productrepo.NewRESTProductRepository(api),
	}, seed.NewReporter(os.Stdout), seed.Options{
		Email:    getEnv("SEED_EMAIL", "john.manager@test.com"),
		Password: getEnv("SEED_PASSWORD", "password123"),
		Delays:   seed.DefaultDelays(),
	})

	if _, err := seeder.Run(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
