package handlers

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/anonto42/travel-discover/backend/internal/errs"
	"github.com/anonto42/travel-discover/backend/internal/export"
	"github.com/anonto42/travel-discover/backend/internal/models"
	"github.com/anonto42/travel-discover/backend/internal/services"
	"github.com/labstack/echo/v4"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// SavedPlaceHandler handles saved place HTTP requests
type SavedPlaceHandler struct {
	service *services.SavedPlaceService
}

// NewSavedPlaceHandler creates a new SavedPlaceHandler
func NewSavedPlaceHandler(service *services.SavedPlaceService) *SavedPlaceHandler {
	return &SavedPlaceHandler{service: service}
}

// RegisterSavedPlaceRoutes registers saved place routes
func (h *SavedPlaceHandler) RegisterSavedPlaceRoutes(g *echo.Group) {
	g.GET("/saved-places", h.ListSavedPlaces)
	g.POST("/saved-places", h.SavePlace)
	g.GET("/saved-places/export", h.ExportSavedPlaces)
	g.DELETE("/saved-places/:id", h.UnsavePlace)
}

// ListSavedPlaces lists the user's saved places, optionally for one location
func (h *SavedPlaceHandler) ListSavedPlaces(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	ctx := c.Request().Context()

	var (
		saved []models.SavedPlace
		err   error
	)
	if location := c.QueryParam("location"); location != "" {
		saved, err = h.service.ListByLocation(ctx, currentUserID, location)
	} else {
		saved, err = h.service.ListAll(ctx, currentUserID)
	}
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": saved})
}

// SavePlace saves a result item. Saving it again is reported, not rejected.
func (h *SavedPlaceHandler) SavePlace(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)

	var req models.SavePlaceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	place, err := h.service.Save(c.Request().Context(), currentUserID, req)
	if errors.Is(err, errs.ErrAlreadyExists) {
		return c.JSON(http.StatusOK, echo.Map{
			"success": true,
			"data":    echo.Map{"already_saved": true, "message": errs.Message(err)},
		})
	}
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"success": true, "data": place})
}

// UnsavePlace removes a saved place; an unknown id is not an error
func (h *SavedPlaceHandler) UnsavePlace(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)

	err := h.service.Unsave(c.Request().Context(), currentUserID, c.Param("id"))
	if errors.Is(err, errs.ErrNotFound) {
		return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"removed": false}})
	}
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"removed": true}})
}

// ExportSavedPlaces downloads every saved place as an xlsx workbook
func (h *SavedPlaceHandler) ExportSavedPlaces(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == "" {
		return httpError(errs.ErrNotAuthenticated)
	}

	saved, err := h.service.ListAll(c.Request().Context(), currentUserID)
	if err != nil {
		return httpError(err)
	}

	var buf bytes.Buffer
	if err := export.WriteSavedPlaces(&buf, saved); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to build export").SetInternal(err)
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="saved-places.xlsx"`)
	return c.Blob(http.StatusOK, xlsxContentType, buf.Bytes())
}
