package middleware

import (
	"log/slog"
	"strings"

	"docs/internal/delivery/api/response"
	deliverycontext "docs/internal/delivery/context"
	domainerrors "docs/internal/domain/errors"
	"docs/internal/domain/service"
	"docs/internal/usecase"

	"github.com/labstack/echo/v4"
)

const (
	headerAuthorization = "Authorization"
	bearerPrefix        = "Bearer "
)

// AuthMiddleware provides middleware for bearer token authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, logger: logger}
}

// Authenticate rejects requests without a valid access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if c.Request().Header.Get(headerAuthorization) == "" {
			return response.HandleAppError(c, domainerrors.ErrUnauthorized.WrapMessage("authorization header is missing"))
		}

		if err := m.identify(c); err != nil {
			return response.HandleAppError(c, err)
		}

		return next(c)
	}
}

// Identify resolves the caller when a token is present and lets anonymous requests through.
// A malformed or invalid token is still rejected.
func (m *AuthMiddleware) Identify(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if c.Request().Header.Get(headerAuthorization) != "" {
			if err := m.identify(c); err != nil {
				return response.HandleAppError(c, err)
			}
		}

		return next(c)
	}
}

// identify validates the bearer token and stores the principal on the context.
func (m *AuthMiddleware) identify(c echo.Context) error {
	authHeader := c.Request().Header.Get(headerAuthorization)

	tokenString, ok := strings.CutPrefix(authHeader, bearerPrefix)
	if !ok || strings.TrimSpace(tokenString) == "" {
		return domainerrors.ErrUnauthorized.WrapMessage("invalid token format, must be Bearer token")
	}

	claims, err := m.tokenSvc.ValidateToken(tokenString)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
			Debug("Token rejected", slog.Any("error", err))

		return domainerrors.ErrUnauthorized.WrapMessage("invalid or expired token")
	}

	deliverycontext.SetCaller(c, claims.Subject)

	return nil
}

// GetPrincipal returns the caller resolved by Authenticate or Identify.
// Anonymous callers get the zero Principal.
func GetPrincipal(c echo.Context) usecase.Principal {
	return usecase.Principal{Username: deliverycontext.GetCaller(c)}
}
