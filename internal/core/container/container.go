package container

import (
	"fmt"

	"github.com/jsphkabil/FRIB-Inventory-Tracker/internal/core/config"
	"github.com/jsphkabil/FRIB-Inventory-Tracker/internal/inventory/deployments"
	inventorylog "github.com/jsphkabil/FRIB-Inventory-Tracker/internal/inventory/inventory_log"
	"github.com/jsphkabil/FRIB-Inventory-Tracker/internal/inventory/items"
	"github.com/jsphkabil/FRIB-Inventory-Tracker/internal/locations"
	"github.com/jsphkabil/FRIB-Inventory-Tracker/internal/middleware"
	"github.com/jsphkabil/FRIB-Inventory-Tracker/internal/rate_limiter"
	"github.com/jsphkabil/FRIB-Inventory-Tracker/internal/seed"

	"go.uber.org/zap"
)

type Container struct {
	Config            *config.Config
	Logger            *zap.Logger
	Store             *items.Store
	Locations         *locations.Registry
	Resolver          *deployments.Resolver
	Sessions          *deployments.SessionRegistry
	InventoryLog      *inventorylog.InventoryLog
	RateLimiter       *rate_limiter.RateLimiter
	Health            *middleware.Health
	ItemHandler       *items.ItemHandler
	LocationHandler   *locations.LocationHandler
	DeploymentHandler *deployments.DeploymentHandler
}

func NewAppContainer(cfg *config.Config, logger *zap.Logger) (*Container, error) {
	data, err := seed.Load(cfg.SeedFile)
	if err != nil {
		return nil, fmt.Errorf("load seed data: %w", err)
	}

	store := items.NewStore(data.Items, nil)
	locationRegistry := locations.NewRegistry(data.Locations)
	resolver := deployments.NewResolver(deployments.NewCatalog(data.DeploymentCatalog), store)
	sessions := deployments.NewSessionRegistry(resolver, logger)
	inventoryLog := inventorylog.NewInventoryLog(logger)

	return &Container{
		Config:            cfg,
		Logger:            logger,
		Store:             store,
		Locations:         locationRegistry,
		Resolver:          resolver,
		Sessions:          sessions,
		InventoryLog:      inventoryLog,
		RateLimiter:       rate_limiter.NewRateLimiter(cfg.RateLimitRequests, cfg.RateLimitWindow),
		Health:            middleware.NewHealth(cfg.AppVersion, store),
		ItemHandler:       items.NewItemHandler(store, locationRegistry, inventoryLog),
		LocationHandler:   locations.NewLocationHandler(locationRegistry, store),
		DeploymentHandler: deployments.NewDeploymentHandler(resolver, sessions, inventoryLog),
	}, nil
}
