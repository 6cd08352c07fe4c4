package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTypeAccess marks tokens that authenticate API calls.
const TokenTypeAccess = "access"

// Claims defines the custom claims for the JWT tokens.
// The subject (RegisteredClaims.Subject) is the username.
type Claims struct {
	Type string `json:"type"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies signed tokens.
type TokenService interface {
	// GenerateToken signs a token for the given subject and returns it with its expiry.
	GenerateToken(subject string) (token string, expiresAt time.Time, err error)

	// ValidateToken verifies signature, expiry and type, and returns the claims.
	ValidateToken(tokenString string) (*Claims, error)
}
