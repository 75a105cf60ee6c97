package main

import (
	"fmt"
	"log"

	"docvault/internal/config"
	"docvault/internal/handler"
	"docvault/internal/repository/postgres"
	"docvault/internal/router"
	"docvault/internal/service"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize the state store
	store := postgres.NewStore(db)

	// Initialize services
	enterpriseSvc := service.NewEnterpriseService(store)
	documentSvc := service.NewDocumentService(store)
	accessSvc := service.NewAccessService(store)

	// Initialize handlers
	enterpriseH := handler.NewEnterpriseHandler(enterpriseSvc)
	documentH := handler.NewDocumentHandler(documentSvc)
	accessH := handler.NewAccessHandler(accessSvc)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(cfg.JWT, enterpriseH, documentH, accessH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
