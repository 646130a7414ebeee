package main

import (
	"context"

	"shopsphere/storefront/internal/config"
	"shopsphere/storefront/internal/container"

	log "github.com/sirupsen/logrus"
)

func main() {
	log.Info("Starting storefront client...")

	// Load configuration using viper
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	log.Info("Configuration loaded successfully")

	// Initialize container with all dependencies
	app, err := container.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}
	defer app.Close()

	// Run the browsing session
	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("Application exited with error: %v", err)
	}

	log.Info("Application finished successfully")
}
