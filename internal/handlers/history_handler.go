package handlers

import (
	"net/http"

	"github.com/anonto42/travel-discover/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// HistoryHandler handles search history HTTP requests
type HistoryHandler struct {
	service *services.HistoryService
}

func NewHistoryHandler(service *services.HistoryService) *HistoryHandler {
	return &HistoryHandler{service: service}
}

func (h *HistoryHandler) RegisterHistoryRoutes(g *echo.Group) {
	g.GET("/history", h.ListHistory)
	g.DELETE("/history", h.ClearHistory)
}

func (h *HistoryHandler) ListHistory(c echo.Context) error {
	entries, err := h.service.List(c.Request().Context(), getUserIDFromContext(c))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": entries})
}

func (h *HistoryHandler) ClearHistory(c echo.Context) error {
	removed, err := h.service.Clear(c.Request().Context(), getUserIDFromContext(c))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"removed": removed}})
}
