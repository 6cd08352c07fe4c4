package repository

import (
	"context"

	"docs/internal/domain/entity"
	"docs/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for role persistence.
var (
	// ErrRoleNotFound is returned when a role lookup by name finds nothing.
	ErrRoleNotFound = errors.New("role not found")
	// ErrUserRoleExists is returned when the user already holds the role.
	ErrUserRoleExists = errors.New("user already has role")
)

// RoleRepository reads the role reference data.
type RoleRepository interface {
	// FindByRoleName retrieves a role by its unique name.
	FindByRoleName(ctx context.Context, roleName string) (*entity.Role, error)

	// FindAllByIDs retrieves every role whose ID is in ids, in the order of ids. Unknown IDs are skipped.
	FindAllByIDs(ctx context.Context, ids []uuid.UUID) (entity.Roles, error)
}

// UserRoleRepository manages the user to role links.
type UserRoleRepository interface {
	// Create persists a new link and fills in its generated ID.
	Create(ctx context.Context, userRole *entity.UserRole) error

	// FindAllByUserID returns every link owned by the given user, oldest first.
	FindAllByUserID(ctx context.Context, userID uuid.UUID) (entity.UserRoles, error)
}
