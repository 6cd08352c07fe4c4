// Package usecase provides testify mocks of the use case interfaces.
package usecase

import (
	"context"

	"docs/internal/usecase"

	"github.com/stretchr/testify/mock"
)

// MockAuthUsecase is a mock type for the AuthUsecase type
type MockAuthUsecase struct {
	mock.Mock
}

// Login provides a mock function with given fields: ctx, input
func (_m *MockAuthUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	ret := _m.Called(ctx, input)

	output, _ := ret.Get(0).(*usecase.LoginOutput)

	return output, ret.Error(1)
}

// Register provides a mock function with given fields: ctx, input
func (_m *MockAuthUsecase) Register(ctx context.Context, input *usecase.RegisterInput) error {
	ret := _m.Called(ctx, input)

	return ret.Error(0)
}

// GetCurrentUser provides a mock function with given fields: ctx, principal
func (_m *MockAuthUsecase) GetCurrentUser(ctx context.Context, principal usecase.Principal) (*usecase.UserView, error) {
	ret := _m.Called(ctx, principal)

	view, _ := ret.Get(0).(*usecase.UserView)

	return view, ret.Error(1)
}

// GetUserByUsername provides a mock function with given fields: ctx, username
func (_m *MockAuthUsecase) GetUserByUsername(ctx context.Context, username string) (*usecase.UserView, error) {
	ret := _m.Called(ctx, username)

	view, _ := ret.Get(0).(*usecase.UserView)

	return view, ret.Error(1)
}

// NewMockAuthUsecase creates a new instance of MockAuthUsecase.
// It also registers a cleanup function to assert the mocks expectations.
func NewMockAuthUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAuthUsecase {
	m := &MockAuthUsecase{}
	m.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
