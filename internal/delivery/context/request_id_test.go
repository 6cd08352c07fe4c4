package context

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestGetRequestID(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	assert.Empty(t, GetRequestID(c))

	c.Response().Header().Set(HeaderXRequestID, "from-header")
	assert.Equal(t, "from-header", GetRequestID(c))

	SetRequestID(c, "req-1")
	assert.Equal(t, "req-1", GetRequestID(c))
}

func TestNormalizeRequestID(t *testing.T) {
	assert.Equal(t, "abc-123_x.y", NormalizeRequestID("abc-123_x.y"))

	for _, bad := range []string{"", "abc def", strings.Repeat("a", 65), "abc\x01"} {
		_, err := uuid.Parse(NormalizeRequestID(bad))
		assert.NoError(t, err, bad)
	}
}

func TestRequestIDFromContext(t *testing.T) {
	assert.Empty(t, GetRequestIDFromContext(context.Background()))
	assert.Equal(t, "req-1", GetRequestIDFromContext(WithRequestID(context.Background(), "req-1")))
}

func TestGetLoggerOrDefault(t *testing.T) {
	fallback := slog.Default()
	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))

	scoped := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	assert.Same(t, scoped, GetLoggerOrDefault(WithLogger(context.Background(), scoped), fallback))
}

func TestWithLoggerAttrs(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, ctx, WithLoggerAttrs(ctx, slog.String("username", "alice")))

	var buf bytes.Buffer
	ctx = WithLogger(ctx, slog.New(slog.NewTextHandler(&buf, nil)))
	ctx = WithLoggerAttrs(ctx, slog.String("username", "alice"))

	GetLogger(ctx).Info("hello")
	assert.Contains(t, buf.String(), "username=alice")
}

func TestSetCaller(t *testing.T) {
	var buf bytes.Buffer

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(WithLogger(req.Context(), slog.New(slog.NewTextHandler(&buf, nil))))
	c := e.NewContext(req, httptest.NewRecorder())

	assert.Empty(t, GetCaller(c))

	SetCaller(c, "alice")

	assert.Equal(t, "alice", GetCaller(c))
	assert.Equal(t, "alice", GetCallerFromContext(c.Request().Context()))

	GetLogger(c.Request().Context()).Info("hello")
	assert.Contains(t, buf.String(), "username=alice")
}
