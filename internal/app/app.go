// Package app assembles the discovery pipeline from configuration.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/anonto42/travel-discover/backend/internal/discovery"
	"github.com/anonto42/travel-discover/backend/internal/repositories"
	"github.com/anonto42/travel-discover/backend/internal/services"
	"github.com/anonto42/travel-discover/backend/pkg/config"
	"go.uber.org/zap"
)

// App holds the wired components shared by the HTTP server and the CLI
type App struct {
	DB          *config.DB
	Catalog     *discovery.Catalog
	Discovery   *discovery.Service
	SavedPlaces *services.SavedPlaceService
	History     *services.HistoryService
	Explorer    *services.Explorer
	Logger      *zap.Logger
}

// New wires repositories and services over db
func New(cfg *config.Config, db *config.DB, logger *zap.Logger) (*App, error) {
	historyRepo, err := newHistoryRepository(cfg, db)
	if err != nil {
		return nil, err
	}

	catalog := discovery.NewCatalog()
	var source discovery.Source = catalog
	if cfg.DiscoveryEndpoint != "" {
		source = discovery.NewRemoteSource(cfg.DiscoveryEndpoint, cfg.DiscoveryAPIKey, logger)
		logger.Info("using remote discovery source", zap.String("endpoint", cfg.DiscoveryEndpoint))
	}

	saved := services.NewSavedPlaceService(repositories.NewGormSavedPlaceRepository(db.SQL), logger)
	history := services.NewHistoryService(historyRepo, logger)
	disc := discovery.NewService(source, history, cfg.DiscoveryTimeout, logger)

	return &App{
		DB:          db,
		Catalog:     catalog,
		Discovery:   disc,
		SavedPlaces: saved,
		History:     history,
		Explorer:    services.NewExplorer(disc, services.NewReconciler(saved, logger), saved),
		Logger:      logger,
	}, nil
}

func newHistoryRepository(cfg *config.Config, db *config.DB) (repositories.SearchHistoryRepository, error) {
	if cfg.HistoryBackend != "mongo" {
		return repositories.NewGormSearchHistoryRepository(db.SQL), nil
	}
	if db.Mongo == nil {
		return nil, fmt.Errorf("history backend is mongo but no MongoDB connection is open")
	}
	repo := repositories.NewMongoSearchHistoryRepository(db.Mongo.Database(cfg.MongoDatabase))
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := repo.EnsureIndexes(ctx); err != nil {
		return nil, fmt.Errorf("failed to create search history indexes: %w", err)
	}
	return repo, nil
}
