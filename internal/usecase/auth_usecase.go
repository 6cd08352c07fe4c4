// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"strings"
	"time"

	"docs/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Username string
	Password string
}

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
}

// Principal identifies the caller of the current request.
// The zero value is the anonymous caller.
type Principal struct {
	Username string
}

// IsAnonymous reports whether no authenticated caller is attached.
func (p Principal) IsAnonymous() bool {
	return strings.TrimSpace(p.Username) == ""
}

// --- Output DTOs ---

// LoginOutput carries the signed token issued after a successful login.
type LoginOutput struct {
	Token     string    `json:"token"`
	TokenType string    `json:"token_type"`
	ExpiresAt time.Time `json:"expires_at"`
}

// UserView is the read-only projection of a user returned to callers.
// It never carries the password digest or the salt.
type UserView struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Nickname  string    `json:"nickname,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	Roles     []string  `json:"roles"`
}

// NewUserView projects a user and its role names into a UserView.
func NewUserView(user *entity.User, roles []string) *UserView {
	if user == nil {
		return nil
	}
	if roles == nil {
		roles = []string{}
	}

	return &UserView{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Nickname:  user.Nickname,
		CreatedAt: user.CreatedAt,
		Roles:     roles,
	}
}

// AuthUsecase defines the authentication and account lookup operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Login verifies the credentials and issues a signed token.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// Register creates an account holding the default role.
	Register(ctx context.Context, input *RegisterInput) error

	// GetCurrentUser returns the caller's profile, or nil for an anonymous caller.
	GetCurrentUser(ctx context.Context, principal Principal) (*UserView, error)

	// GetUserByUsername returns the named user's profile, or nil when no such user exists.
	GetUserByUsername(ctx context.Context, username string) (*UserView, error)
}
