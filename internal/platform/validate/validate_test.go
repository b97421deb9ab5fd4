// Copyright (c) 2026 DevConnect. All rights reserved.
// Author: anh.nguyenduc.vn@gmail.com

package validate

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anhnguyenduc/devconnect/internal/platform/apperr"
)

func TestValidator_AllRulesPass(t *testing.T) {
	validator := &Validator{}
	err := validator.
		Required("name", "Alice").
		Email("email", "alice@example.com").
		MinLen("password", "hunter22", 6).
		Err()

	assert.NoError(t, err)
	assert.False(t, validator.HasErrors())
}

func TestValidator_CollectsAllFailures(t *testing.T) {
	validator := &Validator{}
	err := validator.
		Required("name", "   ").
		Email("email", "not-an-email").
		MinLen("password", "abc", 6).
		Err()

	require.Error(t, err)
	appError := apperr.As(err)
	require.NotNil(t, appError)

	assert.Equal(t, http.StatusBadRequest, appError.HTTPStatus)
	assert.Equal(t, "Validation failed", appError.Message)
	require.Len(t, appError.Details, 3)
	assert.Equal(t, "name", appError.Details[0].Field)
	assert.Equal(t, "name is required", appError.Details[0].Message)
}

func TestValidator_MinLenSkipsEmpty(t *testing.T) {
	// Optional fields: MinLen alone never fails on absence.
	validator := &Validator{}
	assert.NoError(t, validator.MinLen("password", "", 6).Err())
}

func TestValidator_Custom(t *testing.T) {
	validator := &Validator{}
	err := validator.
		Custom("password", true, "Please enter a password with 6 or more characters").
		Err()

	require.Error(t, err)
	appError := apperr.As(err)
	require.NotNil(t, appError)
	require.Len(t, appError.Details, 1)
	assert.Equal(t, "Please enter a password with 6 or more characters", appError.Details[0].Message)
}

func TestValidator_UUID(t *testing.T) {
	validator := &Validator{}
	assert.NoError(t, validator.UUID("id", "0190cafe-0000-7000-8000-0123456789ab").Err())

	validator = &Validator{}
	assert.Error(t, validator.UUID("id", "not-a-uuid").Err())
}
