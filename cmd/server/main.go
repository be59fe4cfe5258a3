package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"geocentroid/internal/api"
	"geocentroid/internal/api/handlers"
	"geocentroid/internal/config"
	"geocentroid/internal/repository/memory"
	"geocentroid/internal/services"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize repositories
	collectionRepo := memory.NewCollectionRepository()

	// Initialize services
	centerService := services.NewCenterService(collectionRepo, cfg)

	// Initialize handlers
	centerHandler := handlers.NewCenterHandler(centerService)
	collectionHandler := handlers.NewCollectionHandler(centerService)

	// Setup router
	router := api.NewRouter(centerHandler, collectionHandler)

	// Create Gin engine
	engine := gin.Default()
	router.Setup(engine)

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server
	log.Printf("Starting center-of-mass server on %s", cfg.Server.Port)
	if err := srv.ListenAndServe(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
