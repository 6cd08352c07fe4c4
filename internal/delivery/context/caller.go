package context

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
)

// KeyUsername is the key for the authenticated caller's username.
const KeyUsername ContextKey = "username"

// SetCaller records the authenticated username on both the echo context and the request
// context, and tags the request logger with it.
func SetCaller(c echo.Context, username string) {
	c.Set(string(KeyUsername), username)

	ctx := context.WithValue(c.Request().Context(), KeyUsername, username)
	ctx = WithLoggerAttrs(ctx, slog.String("username", username))
	c.SetRequest(c.Request().WithContext(ctx))
}

// GetCaller returns the authenticated username, or "" for anonymous requests.
func GetCaller(c echo.Context) string {
	username, _ := c.Get(string(KeyUsername)).(string)

	return username
}

// GetCallerFromContext returns the authenticated username carried by ctx.
func GetCallerFromContext(ctx context.Context) string {
	username, _ := ctx.Value(KeyUsername).(string)

	return username
}
