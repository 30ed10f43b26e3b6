package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"firebase.google.com/go/v4/auth"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func runProtected(mw echo.MiddlewareFunc, authHeader string) (*httptest.ResponseRecorder, string, error) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/history", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen string
	err := mw(func(c echo.Context) error {
		seen, _ = c.Get(UserIDKey).(string)
		return c.NoContent(http.StatusOK)
	})(c)
	return rec, seen, err
}

func assertUnauthorized(t *testing.T, err error) {
	t.Helper()
	var he *echo.HTTPError
	require.True(t, errors.As(err, &he), "want echo.HTTPError, got %v", err)
	assert.Equal(t, http.StatusUnauthorized, he.Code)
}

func TestJWTAuthMiddleware(t *testing.T) {
	mw := JWTAuthMiddleware(testSecret)

	token, err := SignToken(testSecret, "user-42", "a@example.com", time.Hour)
	require.NoError(t, err)

	rec, userID, err := runProtected(mw, "Bearer "+token)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-42", userID)
}

func TestJWTAuthMiddlewareRejects(t *testing.T) {
	mw := JWTAuthMiddleware(testSecret)

	wrongKey, err := SignToken("other-secret", "user-42", "", time.Hour)
	require.NoError(t, err)
	expired, err := SignToken(testSecret, "user-42", "", -time.Minute)
	require.NoError(t, err)
	noUser, err := SignToken(testSecret, "", "", time.Hour)
	require.NoError(t, err)

	for name, header := range map[string]string{
		"missing":   "",
		"scheme":    "Basic abc",
		"garbage":   "Bearer not-a-jwt",
		"wrong key": "Bearer " + wrongKey,
		"expired":   "Bearer " + expired,
		"no user":   "Bearer " + noUser,
	} {
		t.Run(name, func(t *testing.T) {
			_, userID, err := runProtected(mw, header)
			assertUnauthorized(t, err)
			assert.Empty(t, userID)
		})
	}
}

type fakeVerifier struct{ valid map[string]string }

func (f fakeVerifier) VerifyIDToken(_ context.Context, idToken string) (*auth.Token, error) {
	if uid, ok := f.valid[idToken]; ok {
		return &auth.Token{UID: uid}, nil
	}
	return nil, errors.New("token expired")
}

func TestFirebaseAuthMiddleware(t *testing.T) {
	mw := FirebaseAuthMiddleware(fakeVerifier{valid: map[string]string{"good": "fb-uid"}})

	_, userID, err := runProtected(mw, "Bearer good")
	require.NoError(t, err)
	assert.Equal(t, "fb-uid", userID)

	_, _, err = runProtected(mw, "Bearer bad")
	assertUnauthorized(t, err)

	_, _, err = runProtected(mw, "")
	assertUnauthorized(t, err)
}
