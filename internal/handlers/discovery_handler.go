package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/anonto42/travel-discover/backend/internal/discovery"
	"github.com/anonto42/travel-discover/backend/internal/errs"
	"github.com/anonto42/travel-discover/backend/internal/models"
	"github.com/anonto42/travel-discover/backend/internal/services"
	"github.com/anonto42/travel-discover/backend/validators"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// DiscoverLocationPath is the public, unauthenticated discovery endpoint
const DiscoverLocationPath = "/functions/v1/discover-location"

// DiscoveryHandler serves location discovery
type DiscoveryHandler struct {
	service  *discovery.Service
	explorer *services.Explorer
	logger   *zap.Logger
}

// NewDiscoveryHandler creates a new DiscoveryHandler
func NewDiscoveryHandler(service *discovery.Service, explorer *services.Explorer, logger *zap.Logger) *DiscoveryHandler {
	return &DiscoveryHandler{service: service, explorer: explorer, logger: logger}
}

// RegisterPublicRoutes registers the public endpoint on every method so
// that unsupported ones get the documented 405 body.
func (h *DiscoveryHandler) RegisterPublicRoutes(e *echo.Echo) {
	e.Any(DiscoverLocationPath, h.DiscoverLocation)
}

// RegisterDiscoveryRoutes registers the authenticated discovery routes
func (h *DiscoveryHandler) RegisterDiscoveryRoutes(g *echo.Group) {
	g.POST("/discover", h.Discover)
}

func setPublicCORS(c echo.Context) {
	hdr := c.Response().Header()
	hdr.Set(echo.HeaderAccessControlAllowOrigin, "*")
	hdr.Set(echo.HeaderAccessControlAllowMethods, "GET, POST, PUT, DELETE, OPTIONS")
	hdr.Set(echo.HeaderAccessControlAllowHeaders, "Content-Type, Authorization, X-Client-Info, Apikey")
}

// DiscoverLocation answers {"location": "..."} with the raw discovery result
func (h *DiscoveryHandler) DiscoverLocation(c echo.Context) error {
	setPublicCORS(c)

	req := c.Request()
	if req.Method == http.MethodOptions {
		return c.NoContent(http.StatusOK)
	}
	if req.Method != http.MethodPost {
		return c.JSON(http.StatusMethodNotAllowed, echo.Map{"error": "Method not allowed. Use POST."})
	}

	raw, err := io.ReadAll(req.Body)
	if err != nil {
		return h.publicFailure(c, err)
	}
	var body interface{}
	if err := json.Unmarshal(raw, &body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid JSON in request body"})
	}

	obj, _ := body.(map[string]interface{})
	location, present := obj["location"]
	if !present || isFalsy(location) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Location parameter is required"})
	}
	locStr, ok := location.(string)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Location must be a string"})
	}

	d, err := h.service.Discover(req.Context(), "", locStr)
	if err != nil {
		if errs.KindOf(err) == errs.KindValidation {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": errs.Message(err)})
		}
		return h.publicFailure(c, err)
	}
	return c.JSON(http.StatusOK, d.Result)
}

func (h *DiscoveryHandler) publicFailure(c echo.Context, err error) error {
	h.logger.Error("discover-location failed", zap.Error(err))
	return c.JSON(http.StatusInternalServerError, echo.Map{
		"error":   "Failed to process request",
		"message": errs.Message(err),
	})
}

// isFalsy reports the JSON values a loosely typed client treats as "no value"
func isFalsy(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return true
	case bool:
		return !t
	case float64:
		return t == 0
	case string:
		return t == ""
	}
	return false
}

// Discover runs a search for the authenticated user and reports which
// results they already saved.
func (h *DiscoveryHandler) Discover(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == "" {
		return httpError(errs.ErrNotAuthenticated)
	}

	var req models.DiscoverRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return httpError(errs.Validation(validators.Describe(err)))
	}

	view, err := h.explorer.Search(c.Request().Context(), currentUserID, req.Location)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": view})
}
