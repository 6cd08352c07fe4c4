package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"docs/internal/domain/service"
	mockSvc "docs/internal/mocks/service"
	"docs/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthMiddleware(t *testing.T) (*AuthMiddleware, *mockSvc.MockTokenService) {
	t.Helper()

	tokenSvc := mockSvc.NewMockTokenService(t)

	return NewAuthMiddleware(tokenSvc, slog.New(slog.NewTextHandler(io.Discard, nil))), tokenSvc
}

// principalRecorder is a terminal handler that captures the resolved principal.
func principalRecorder(got *usecase.Principal, called *bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		*called = true
		*got = GetPrincipal(c)

		return c.NoContent(http.StatusNoContent)
	}
}

func serve(mw echo.MiddlewareFunc, next echo.HandlerFunc, authHeader string) (*httptest.ResponseRecorder, error) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()

	return rec, mw(next)(e.NewContext(req, rec))
}

func TestAuthenticate_ValidToken(t *testing.T) {
	m, tokenSvc := newTestAuthMiddleware(t)
	tokenSvc.On("ValidateToken", "good").Return(&service.Claims{
		Type:             service.TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{Subject: "alice"},
	}, nil)

	var (
		principal usecase.Principal
		called    bool
	)
	rec, err := serve(m.Authenticate, principalRecorder(&principal, &called), "Bearer good")

	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "alice", principal.Username)
}

func TestAuthenticate_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		header string
		setup  func(tokenSvc *mockSvc.MockTokenService)
	}{
		{name: "missing header", header: ""},
		{name: "not bearer", header: "Basic YWxpY2U6cHc="},
		{name: "empty bearer", header: "Bearer "},
		{
			name:   "invalid token",
			header: "Bearer bad",
			setup: func(tokenSvc *mockSvc.MockTokenService) {
				tokenSvc.On("ValidateToken", "bad").Return(nil, errors.New("token is expired"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, tokenSvc := newTestAuthMiddleware(t)
			if tt.setup != nil {
				tt.setup(tokenSvc)
			}

			var (
				principal usecase.Principal
				called    bool
			)
			rec, err := serve(m.Authenticate, principalRecorder(&principal, &called), tt.header)

			require.NoError(t, err)
			assert.False(t, called)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Body.String(), `"code":"UNAUTHORIZED"`)
		})
	}
}

func TestIdentify_Anonymous(t *testing.T) {
	m, _ := newTestAuthMiddleware(t)

	var (
		principal usecase.Principal
		called    bool
	)
	rec, err := serve(m.Identify, principalRecorder(&principal, &called), "")

	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.True(t, principal.IsAnonymous())
}

func TestIdentify_ValidToken(t *testing.T) {
	m, tokenSvc := newTestAuthMiddleware(t)
	tokenSvc.On("ValidateToken", "good").Return(&service.Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "bob"},
	}, nil)

	var (
		principal usecase.Principal
		called    bool
	)
	_, err := serve(m.Identify, principalRecorder(&principal, &called), "Bearer good")

	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, "bob", principal.Username)
}

func TestIdentify_InvalidTokenIsRejected(t *testing.T) {
	m, tokenSvc := newTestAuthMiddleware(t)
	tokenSvc.On("ValidateToken", "bad").Return(nil, errors.New("signature is invalid"))

	var (
		principal usecase.Principal
		called    bool
	)
	rec, err := serve(m.Identify, principalRecorder(&principal, &called), "Bearer bad")

	require.NoError(t, err)
	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
