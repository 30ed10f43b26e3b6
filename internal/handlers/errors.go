package handlers

import (
	"net/http"

	"github.com/anonto42/travel-discover/backend/internal/errs"
	"github.com/labstack/echo/v4"
)

func statusFor(kind errs.Kind) int {
	switch kind {
	case errs.KindValidation:
		return http.StatusBadRequest
	case errs.KindNotAuthenticated:
		return http.StatusUnauthorized
	case errs.KindNotFound:
		return http.StatusNotFound
	case errs.KindAlreadyExists:
		return http.StatusConflict
	case errs.KindTimeout:
		return http.StatusGatewayTimeout
	case errs.KindTransientStore:
		return http.StatusServiceUnavailable
	case errs.KindUnavailable:
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

// httpError converts a classified error into an echo.HTTPError whose body
// tells the client how long to show the message.
func httpError(err error) error {
	kind := errs.KindOf(err)
	msg := errs.Message(err)
	if kind == errs.KindUnknown {
		msg = "Something went wrong"
	}
	return echo.NewHTTPError(statusFor(kind), echo.Map{
		"error":            msg,
		"kind":             kind.String(),
		"dismiss_after_ms": errs.DismissAfter(err).Milliseconds(),
	}).SetInternal(err)
}
