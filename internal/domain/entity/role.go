package entity

import (
	"time"

	"github.com/google/uuid"
)

// RoleNameUser is the role every account receives on registration.
const RoleNameUser = "user"

// Role is static reference data seeded by migrations.
type Role struct {
	ID       uuid.UUID
	RoleName string
}

// Roles is a slice of Role for convenience.
type Roles []*Role

// IDs returns the role IDs in slice order.
func (rs Roles) IDs() []uuid.UUID {
	result := make([]uuid.UUID, 0, len(rs))
	for _, r := range rs {
		result = append(result, r.ID)
	}

	return result
}

// Names returns the role names in slice order.
func (rs Roles) Names() []string {
	result := make([]string, 0, len(rs))
	for _, r := range rs {
		result = append(result, r.RoleName)
	}

	return result
}

// UserRole links a User to a Role.
type UserRole struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	RoleID    uuid.UUID
	CreatedAt time.Time
}

// NewUserRole creates the link between the given user and role.
func NewUserRole(userID, roleID uuid.UUID) *UserRole {
	return &UserRole{UserID: userID, RoleID: roleID}
}

// UserRoles is a slice of UserRole for convenience.
type UserRoles []*UserRole

// RoleIDs extracts the role IDs in slice order.
func (urs UserRoles) RoleIDs() []uuid.UUID {
	result := make([]uuid.UUID, 0, len(urs))
	for _, ur := range urs {
		result = append(result, ur.RoleID)
	}

	return result
}
