package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "docs/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runRequestID(t *testing.T, header string, next echo.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, header)
	}
	rec := httptest.NewRecorder()

	m := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
	require.NoError(t, m.Process(next)(e.NewContext(req, rec)))

	return rec
}

func TestRequestIDMiddleware_PropagatesClientID(t *testing.T) {
	var ctxID string
	rec := runRequestID(t, "abc-123", func(c echo.Context) error {
		ctxID = deliverycontext.GetRequestIDFromContext(c.Request().Context())
		assert.NotNil(t, deliverycontext.GetLogger(c.Request().Context()))

		return nil
	})

	assert.Equal(t, "abc-123", ctxID)
	assert.Equal(t, "abc-123", rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestRequestIDMiddleware_GeneratesID(t *testing.T) {
	tests := map[string]string{
		"missing":      "",
		"too long":     strings.Repeat("a", 65),
		"invalid char": "abc\x01def",
		"spaces":       "abc def",
	}

	for name, header := range tests {
		t.Run(name, func(t *testing.T) {
			rec := runRequestID(t, header, func(echo.Context) error { return nil })

			got := rec.Header().Get(deliverycontext.HeaderXRequestID)
			_, err := uuid.Parse(got)
			assert.NoError(t, err)
		})
	}
}

func TestLoggerMiddleware_LogsServerErrorsWithoutDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	m := &LoggerMiddleware{logger: logger}
	e := echo.New()

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/ok", nil), rec)
	require.NoError(t, m.Handle(func(c echo.Context) error { return c.NoContent(http.StatusOK) })(c))
	assert.Empty(t, buf.String())

	rec = httptest.NewRecorder()
	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/fail", nil), rec)
	require.NoError(t, m.Handle(func(c echo.Context) error { return c.NoContent(http.StatusInternalServerError) })(c))
	assert.Contains(t, buf.String(), "HTTP Request")
	assert.Contains(t, buf.String(), "/fail")
}

func TestLoggerMiddleware_UsesRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/user", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-42")
	c := e.NewContext(req, httptest.NewRecorder())

	chain := NewRequestIDMiddleware(logger).Process(
		(&LoggerMiddleware{logger: logger, debug: true}).Handle(func(c echo.Context) error {
			return c.NoContent(http.StatusUnauthorized)
		}),
	)
	require.NoError(t, chain(c))

	assert.Contains(t, buf.String(), "request_id=req-42")
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "status=401")
}

func TestStatusLevel(t *testing.T) {
	assert.Equal(t, slog.LevelInfo, statusLevel(http.StatusOK))
	assert.Equal(t, slog.LevelWarn, statusLevel(http.StatusNotFound))
	assert.Equal(t, slog.LevelError, statusLevel(http.StatusBadGateway))
}
