package handlers

import (
	"github.com/anonto42/travel-discover/backend/internal/middleware"
	"github.com/labstack/echo/v4"
)

// getUserIDFromContext returns the id set by the auth middleware, or "" when
// the request carries no session.
func getUserIDFromContext(c echo.Context) string {
	userID, _ := c.Get(middleware.UserIDKey).(string)
	return userID
}
