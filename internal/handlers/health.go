package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Pinger reports whether the backing stores are reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	stores      Pinger
	catalogSize int
}

func NewHealthHandler(stores Pinger, catalogSize int) *HealthHandler {
	return &HealthHandler{stores: stores, catalogSize: catalogSize}
}

func (h *HealthHandler) HealthCheck(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()

	body := echo.Map{
		"status":       "healthy",
		"service":      "travel-discover",
		"catalog_size": h.catalogSize,
	}
	if err := h.stores.Ping(ctx); err != nil {
		body["status"] = "degraded"
		body["error"] = err.Error()
		return c.JSON(http.StatusServiceUnavailable, body)
	}
	return c.JSON(http.StatusOK, body)
}
