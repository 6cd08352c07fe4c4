// Package handler contains the echo handlers of the HTTP API.
package handler

import (
	"log/slog"
	"net/http"

	"docs/internal/delivery/api/middleware"
	"docs/internal/delivery/api/response"
	"docs/internal/delivery/api/validator"
	deliverycontext "docs/internal/delivery/context"
	domainerrors "docs/internal/domain/errors"
	"docs/internal/errors"
	"docs/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthHandler holds dependencies for account-related handlers
type AuthHandler struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC: params.AuthUC,
		logger: params.Logger,
	}
}

// LoginRequest represents the request body for login
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest represents the request body for registration
type RegisterRequest struct {
	Username        string `json:"username" validate:"required"`
	Email           string `json:"email" validate:"required"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

// Login handles username/password login
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return h.badRequest(c, err)
	}

	output, err := h.authUC.Login(c.Request().Context(), &usecase.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, output)
}

// Register handles account registration
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return h.badRequest(c, err)
	}

	err := h.authUC.Register(c.Request().Context(), &usecase.RegisterInput{
		Username:        req.Username,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, nil)
}

// CurrentUser returns the caller's profile, or null for anonymous callers
func (h *AuthHandler) CurrentUser(c echo.Context) error {
	view, err := h.authUC.GetCurrentUser(c.Request().Context(), middleware.GetPrincipal(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// GetUserByUsername returns the named user's profile, or null when it does not exist
func (h *AuthHandler) GetUserByUsername(c echo.Context) error {
	view, err := h.authUC.GetUserByUsername(c.Request().Context(), c.Param("username"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// bindAndValidate decodes the request body into req and checks its tags.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return errors.WithStack(err)
	}

	return c.Validate(req)
}

// badRequest renders a binding or validation failure as PARAMS_ERROR.
func (h *AuthHandler) badRequest(c echo.Context, err error) error {
	deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).
		Debug("Rejected request body", slog.Any("error", err))

	var validationErr *validator.ValidationError
	if errors.As(err, &validationErr) {
		return response.BadRequestWithDetails(c, domainerrors.ErrParams.ErrorCode(), domainerrors.ErrParams.Message(), validationErr.Fields)
	}

	return response.BindingError(c, domainerrors.ErrParams.ErrorCode(), domainerrors.ErrParams.Message())
}
