package middleware

import (
	"log/slog"
	"net/http"

	"docs/internal/delivery/api/response"
	deliverycontext "docs/internal/delivery/context"
	domainerrors "docs/internal/domain/errors"
	"docs/internal/errors"

	"github.com/labstack/echo/v4"
)

const internalErrorMessage = "Internal server error, please try again later"

// httpErrorCodes names the framework errors clients can hit before a handler runs.
var httpErrorCodes = map[int]string{
	http.StatusNotFound:              "NOT_FOUND",
	http.StatusMethodNotAllowed:      "METHOD_NOT_ALLOWED",
	http.StatusRequestEntityTooLarge: "REQUEST_TOO_LARGE",
	http.StatusUnsupportedMediaType:  "UNSUPPORTED_MEDIA_TYPE",
}

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError is echo's HTTPErrorHandler. Domain errors keep their code; server-side
// failures are logged and rendered without internal detail.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)
	req := c.Request()

	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
		message := appErr.Message()
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			logger.Error("Request failed",
				slog.Any("error", err),
				slog.String("code", appErr.ErrorCode()),
				slog.String("path", req.URL.Path),
			)
			message = internalErrorMessage
		}

		_ = response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), message, nil)

		return
	}

	if httpErr, ok := errors.AsType[*echo.HTTPError](err); ok {
		code, known := httpErrorCodes[httpErr.Code]
		if !known {
			code = "HTTP_ERROR"
		}
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok && httpErr.Code < http.StatusInternalServerError {
			message = msg
		}

		_ = response.Error(c, httpErr.Code, code, message, nil)

		return
	}

	logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", req.URL.Path),
		slog.String("method", req.Method),
	)

	_ = response.InternalServerError(c, domainerrors.ErrInternalError.ErrorCode(), internalErrorMessage)
}
