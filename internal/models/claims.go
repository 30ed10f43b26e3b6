package models

import (
	"github.com/golang-jwt/jwt/v4"
)

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims.
// Tokens are normally issued by the auth service; the CLI can mint one for
// local testing.
type JwtCustomClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email,omitempty"`
	jwt.RegisteredClaims
}
