package main

import (
	"fmt"
	"log"
	"os"

	"github.com/labelforge/backend/config"
	httpDelivery "github.com/labelforge/backend/internal/delivery/http"
	"github.com/labelforge/backend/internal/infrastructure/cache"
	"github.com/labelforge/backend/internal/infrastructure/fdc"
	"github.com/labelforge/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting LabelForge Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Report cache TTL: %s", cfg.Cache.TTL)

	// Infrastructure dependencies
	reportCache := cache.NewMemoryCache()

	var fdcClient *fdc.Client
	if cfg.FDC.APIKey != "" {
		fdcClient = fdc.NewClient(cfg.FDC.APIKey, cfg.FDC.BaseURL)
		if cfg.Server.Environment == "development" {
			fdcClient.SetDebug(true)
			log.Printf("FDC client debug mode enabled")
		}
		log.Printf("FDC API configured: %s", cfg.FDC.BaseURL)
	} else {
		log.Printf("FDC API key not configured - nutrient lookup endpoint disabled")
	}

	// Regulatory core
	servingService := usecase.NewServingSizeService()
	validationService := usecase.NewValidationService(servingService)
	roundingService := usecase.NewRoundingService()

	// Create HTTP handler with dependencies
	var handler *httpDelivery.Handler
	if fdcClient != nil {
		handler = httpDelivery.NewHandler(validationService, roundingService, servingService, fdcClient, reportCache, cfg.Cache.TTL)
	} else {
		handler = httpDelivery.NewHandler(validationService, roundingService, servingService, nil, reportCache, cfg.Cache.TTL)
	}

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
