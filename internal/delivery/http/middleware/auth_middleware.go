// Package middleware holds the HTTP API specific middleware.
package middleware

import (
	"slices"
	"strings"

	"addresssync/internal/delivery/http/response"
	"addresssync/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const (
	ctxKeySubject = "subject"
	ctxKeyRoles   = "roles"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer access token and stores its subject and roles.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "Authorization header is missing")
		}

		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || tokenString == "" {
			return response.Unauthorized(c, "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "Invalid or expired token")
		}

		c.Set(ctxKeySubject, claims.Subject)
		c.Set(ctxKeyRoles, claims.Roles)

		return next(c)
	}
}

// RequireRole lets the request through when the caller holds any of the roles.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(allowed ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			roles, ok := c.Get(ctxKeyRoles).([]string)
			if !ok {
				return response.Forbidden(c, "Permission denied: role information missing")
			}

			if !slices.ContainsFunc(roles, func(role string) bool { return slices.Contains(allowed, role) }) {
				return response.Forbidden(c, "Permission denied: require one of "+strings.Join(allowed, ", "))
			}

			return next(c)
		}
	}
}

// Subject returns the authenticated principal, or "" on unauthenticated routes.
func Subject(c echo.Context) string {
	subject, _ := c.Get(ctxKeySubject).(string)

	return subject
}
