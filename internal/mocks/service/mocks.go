// Package service provides testify mocks of the domain service interfaces.
package service

import (
	"context"
	"time"

	"docs/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// MockPasswordHasher is a mock type for the PasswordHasher type
type MockPasswordHasher struct {
	mock.Mock
}

// Hash provides a mock function with given fields: password, credential
func (_m *MockPasswordHasher) Hash(password, credential string) (string, error) {
	ret := _m.Called(password, credential)

	return ret.String(0), ret.Error(1)
}

// Check provides a mock function with given fields: password, credential, digest
func (_m *MockPasswordHasher) Check(password, credential, digest string) bool {
	ret := _m.Called(password, credential, digest)

	return ret.Bool(0)
}

// NewMockPasswordHasher creates a new instance of MockPasswordHasher.
// It also registers a cleanup function to assert the mocks expectations.
func NewMockPasswordHasher(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPasswordHasher {
	m := &MockPasswordHasher{}
	m.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockTokenService is a mock type for the TokenService type
type MockTokenService struct {
	mock.Mock
}

// GenerateToken provides a mock function with given fields: subject
func (_m *MockTokenService) GenerateToken(subject string) (string, time.Time, error) {
	ret := _m.Called(subject)

	expiresAt, _ := ret.Get(1).(time.Time)

	return ret.String(0), expiresAt, ret.Error(2)
}

// ValidateToken provides a mock function with given fields: tokenString
func (_m *MockTokenService) ValidateToken(tokenString string) (*service.Claims, error) {
	ret := _m.Called(tokenString)

	claims, _ := ret.Get(0).(*service.Claims)

	return claims, ret.Error(1)
}

// NewMockTokenService creates a new instance of MockTokenService.
func NewMockTokenService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTokenService {
	m := &MockTokenService{}
	m.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockEventPublisher is a mock type for the EventPublisher type
type MockEventPublisher struct {
	mock.Mock
}

// PublishUserRegistered provides a mock function with given fields: ctx, event
func (_m *MockEventPublisher) PublishUserRegistered(ctx context.Context, event *service.UserRegisteredEvent) error {
	ret := _m.Called(ctx, event)

	return ret.Error(0)
}

// Close provides a mock function with given fields:
func (_m *MockEventPublisher) Close() error {
	ret := _m.Called()

	return ret.Error(0)
}

// NewMockEventPublisher creates a new instance of MockEventPublisher.
func NewMockEventPublisher(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockEventPublisher {
	m := &MockEventPublisher{}
	m.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
