package validator

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email,omitempty" validate:"required,max=8"`
	Ignored  string `json:"-"`
}

func TestCustomValidator_Valid(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&sampleRequest{Username: "alice", Email: "a@x.com"}))
}

func TestCustomValidator_ReportsJSONFieldNames(t *testing.T) {
	v := New()

	err := v.Validate(&sampleRequest{Email: "much-too-long@example.com"})
	require.Error(t, err)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	require.Len(t, validationErr.Fields, 2)

	assert.Equal(t, FieldError{Field: "username", Message: "This field is required", Type: "required"}, validationErr.Fields[0])
	assert.Equal(t, FieldError{Field: "email", Message: "Value is too long", Type: "max"}, validationErr.Fields[1])
	assert.Equal(t, "invalid fields: username, email", err.Error())
}

func TestCustomValidator_NonStruct(t *testing.T) {
	v := New()

	err := v.Validate("not a struct")
	require.Error(t, err)

	var validationErr *ValidationError
	assert.False(t, errors.As(err, &validationErr))
}
