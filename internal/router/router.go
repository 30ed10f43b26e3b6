package router

import (
	"net/http"

	"github.com/anonto42/travel-discover/backend/internal/app"
	"github.com/anonto42/travel-discover/backend/internal/handlers"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// SetupRoutes registers the public discovery endpoint and the authenticated
// /api/v1 routes. auth must put the user id under middleware.UserIDKey.
func SetupRoutes(e *echo.Echo, a *app.App, auth echo.MiddlewareFunc, logger *zap.Logger) {
	// Health check - always accessible
	healthHandler := handlers.NewHealthHandler(a.DB, len(a.Catalog.Keys()))
	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"message": "travel-discover"})
	})

	discoveryHandler := handlers.NewDiscoveryHandler(a.Discovery, a.Explorer, logger)
	discoveryHandler.RegisterPublicRoutes(e)
	logger.Debug("public discovery route configured", zap.String("path", handlers.DiscoverLocationPath))

	// --- Protected routes ---
	api := e.Group("/api/v1")
	api.Use(auth)

	discoveryHandler.RegisterDiscoveryRoutes(api)
	handlers.NewSavedPlaceHandler(a.SavedPlaces).RegisterSavedPlaceRoutes(api)
	handlers.NewHistoryHandler(a.History).RegisterHistoryRoutes(api)

	logger.Info("all routes configured")
}
