package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims carried by access tokens.
type Claims struct {
	Roles []string `json:"roles"`
	Type  string   `json:"type"`
	jwt.RegisteredClaims
}

// TokenService validates access tokens issued by the identity service.
// This service never issues tokens for end users.
type TokenService interface {
	// ValidateToken parses and verifies an access token.
	ValidateToken(tokenString string) (*Claims, error)

	// GenerateToken signs a token for a service principal with the shared key.
	// Production tokens come from the identity service; tests mint fixtures with it.
	GenerateToken(subject string, roles []string) (string, error)
}
