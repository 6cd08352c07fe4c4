// Package repository provides testify mocks of the domain repository interfaces.
package repository

import (
	"context"

	"docs/internal/domain/entity"
	"docs/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockTransactionManager is a mock type for the TransactionManager type.
// A Return value of type func(context.Context, func(repository.RepositoryFactory) error) error
// is invoked in place of a plain error, so tests can run the callback.
type MockTransactionManager struct {
	mock.Mock
}

// Execute provides a mock function with given fields: ctx, fn
func (_m *MockTransactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	ret := _m.Called(ctx, fn)

	if rf, ok := ret.Get(0).(func(context.Context, func(repository.RepositoryFactory) error) error); ok {
		return rf(ctx, fn)
	}

	return ret.Error(0)
}

// NewMockTransactionManager creates a new instance of MockTransactionManager.
// It also registers a cleanup function to assert the mocks expectations.
func NewMockTransactionManager(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTransactionManager {
	m := &MockTransactionManager{}
	m.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockRepositoryFactory is a mock type for the RepositoryFactory type
type MockRepositoryFactory struct {
	mock.Mock
}

// UserRepo provides a mock function with given fields:
func (_m *MockRepositoryFactory) UserRepo() repository.UserRepository {
	ret := _m.Called()

	r, _ := ret.Get(0).(repository.UserRepository)

	return r
}

// RoleRepo provides a mock function with given fields:
func (_m *MockRepositoryFactory) RoleRepo() repository.RoleRepository {
	ret := _m.Called()

	r, _ := ret.Get(0).(repository.RoleRepository)

	return r
}

// UserRoleRepo provides a mock function with given fields:
func (_m *MockRepositoryFactory) UserRoleRepo() repository.UserRoleRepository {
	ret := _m.Called()

	r, _ := ret.Get(0).(repository.UserRoleRepository)

	return r
}

// NewMockRepositoryFactory creates a new instance of MockRepositoryFactory.
func NewMockRepositoryFactory(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRepositoryFactory {
	m := &MockRepositoryFactory{}
	m.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockUserRepository is a mock type for the UserRepository type
type MockUserRepository struct {
	mock.Mock
}

// FindByID provides a mock function with given fields: ctx, id
func (_m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	ret := _m.Called(ctx, id)

	user, _ := ret.Get(0).(*entity.User)

	return user, ret.Error(1)
}

// FindByUsername provides a mock function with given fields: ctx, username
func (_m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	ret := _m.Called(ctx, username)

	user, _ := ret.Get(0).(*entity.User)

	return user, ret.Error(1)
}

// Create provides a mock function with given fields: ctx, user
func (_m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	ret := _m.Called(ctx, user)

	return ret.Error(0)
}

// NewMockUserRepository creates a new instance of MockUserRepository.
func NewMockUserRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUserRepository {
	m := &MockUserRepository{}
	m.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockRoleRepository is a mock type for the RoleRepository type
type MockRoleRepository struct {
	mock.Mock
}

// FindByRoleName provides a mock function with given fields: ctx, roleName
func (_m *MockRoleRepository) FindByRoleName(ctx context.Context, roleName string) (*entity.Role, error) {
	ret := _m.Called(ctx, roleName)

	role, _ := ret.Get(0).(*entity.Role)

	return role, ret.Error(1)
}

// FindAllByIDs provides a mock function with given fields: ctx, ids
func (_m *MockRoleRepository) FindAllByIDs(ctx context.Context, ids []uuid.UUID) (entity.Roles, error) {
	ret := _m.Called(ctx, ids)

	roles, _ := ret.Get(0).(entity.Roles)

	return roles, ret.Error(1)
}

// NewMockRoleRepository creates a new instance of MockRoleRepository.
func NewMockRoleRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRoleRepository {
	m := &MockRoleRepository{}
	m.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockUserRoleRepository is a mock type for the UserRoleRepository type
type MockUserRoleRepository struct {
	mock.Mock
}

// Create provides a mock function with given fields: ctx, userRole
func (_m *MockUserRoleRepository) Create(ctx context.Context, userRole *entity.UserRole) error {
	ret := _m.Called(ctx, userRole)

	return ret.Error(0)
}

// FindAllByUserID provides a mock function with given fields: ctx, userID
func (_m *MockUserRoleRepository) FindAllByUserID(ctx context.Context, userID uuid.UUID) (entity.UserRoles, error) {
	ret := _m.Called(ctx, userID)

	links, _ := ret.Get(0).(entity.UserRoles)

	return links, ret.Error(1)
}

// NewMockUserRoleRepository creates a new instance of MockUserRoleRepository.
func NewMockUserRoleRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUserRoleRepository {
	m := &MockUserRoleRepository{}
	m.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
