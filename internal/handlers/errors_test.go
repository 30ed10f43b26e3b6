package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/anonto42/travel-discover/backend/internal/errs"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPErrorMapping(t *testing.T) {
	cases := []struct {
		err     error
		status  int
		kind    string
		dismiss int64
	}{
		{errs.Validation("Location is too long"), http.StatusBadRequest, "validation", 5000},
		{errs.Timeout("Request timed out. Please try again."), http.StatusGatewayTimeout, "timeout", 5000},
		{errs.ErrNotAuthenticated, http.StatusUnauthorized, "not_authenticated", 3000},
		{errs.NotFound("gone"), http.StatusNotFound, "not_found", 3000},
		{errs.TransientStore("failed to save place", errors.New("io")), http.StatusServiceUnavailable, "transient_store", 3000},
		{errs.Unavailable("Failed to fetch location data (502)", nil), http.StatusBadGateway, "unavailable", 5000},
		{errors.New("boom"), http.StatusInternalServerError, "unknown", 5000},
	}
	for _, tc := range cases {
		var he *echo.HTTPError
		require.True(t, errors.As(httpError(tc.err), &he))
		assert.Equal(t, tc.status, he.Code, tc.kind)

		body, ok := he.Message.(echo.Map)
		require.True(t, ok)
		assert.Equal(t, tc.kind, body["kind"])
		assert.Equal(t, tc.dismiss, body["dismiss_after_ms"])
		assert.ErrorIs(t, he.Internal, tc.err)
	}
}

func TestHTTPErrorHidesUnclassifiedText(t *testing.T) {
	var he *echo.HTTPError
	require.True(t, errors.As(httpError(errors.New("pq: connection reset")), &he))
	assert.Equal(t, "Something went wrong", he.Message.(echo.Map)["error"])
}
