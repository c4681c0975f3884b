package container

import (
	"bookstore-catalogue/internal/config"
	"bookstore-catalogue/pkg/jwt"
	"bookstore-catalogue/pkg/logger"
	"fmt"

	catalogHandler "bookstore-catalogue/internal/domains/catalog/handler"
	catalogRepo "bookstore-catalogue/internal/domains/catalog/repository"
	catalogService "bookstore-catalogue/internal/domains/catalog/service"
)

type Container struct {
	Config     *config.Config
	JWTManager *jwt.Manager

	// Repositories
	Catalogue catalogRepo.Catalogue

	// Services
	CatalogService *catalogService.CatalogService

	// Handlers
	ClientHandler *catalogHandler.ClientHandler
	StockHandler  *catalogHandler.StockHandler
}

// NewContainer wires every dependency of the API process. The catalogue is
// process-local: one instance shared by both capability surfaces.
func NewContainer() (*Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(cfg.App.Environment)

	jwtManager := jwt.NewManager(cfg.Auth.JWTSecret, cfg.Auth.TokenExpiration)

	catalogue := catalogRepo.NewInMemoryCatalogue()
	catalogSvc := catalogService.NewService(catalogue)

	return &Container{
		Config:         cfg,
		JWTManager:     jwtManager,
		Catalogue:      catalogue,
		CatalogService: catalogSvc,
		ClientHandler:  catalogHandler.NewClientHandler(catalogSvc),
		StockHandler:   catalogHandler.NewStockHandler(catalogSvc),
	}, nil
}

// Cleanup releases external resources on shutdown. The catalogue itself is
// in-memory only and needs no teardown.
func (c *Container) Cleanup() {}
