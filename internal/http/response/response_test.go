package response_test

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikhailovdd/insurance-backend/internal/http/response"
)

func TestValidationError_Messages(t *testing.T) {
	type request struct {
		Email       string  `validate:"required,email"`
		Password    string  `validate:"required,min=6"`
		Amount      float64 `validate:"gt=0"`
		DateOfBirth string  `validate:"required,datetime=2006-01-02"`
	}

	v := validator.New()
	err := v.Struct(request{
		Email:       "not-an-email",
		Password:    "123",
		Amount:      -1,
		DateOfBirth: "10.05.1990",
	})
	require.Error(t, err)

	resp := response.ValidationError(err.(validator.ValidationErrors))
	assert.Equal(t, response.StatusError, resp.Status)
	assert.Contains(t, resp.Error, "field Email must be a valid email address")
	assert.Contains(t, resp.Error, "field Password is too short")
	assert.Contains(t, resp.Error, "field Amount must be greater than zero")
	// Тег с параметром (datetime=2006-01-02) должен давать сообщение о формате даты
	assert.Contains(t, resp.Error, "field DateOfBirth can contain only date in format 2006-01-02")
}

func TestValidationError_RequiredField(t *testing.T) {
	type request struct {
		Email string `validate:"required"`
	}

	v := validator.New()
	err := v.Struct(request{})
	require.Error(t, err)

	resp := response.ValidationError(err.(validator.ValidationErrors))
	assert.Equal(t, response.StatusError, resp.Status)
	assert.Equal(t, "field Email is a required field", resp.Error)
}
