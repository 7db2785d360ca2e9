package signup

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	auth "github.com/mikhailovdd/insurance-backend/internal/services/auth"
)

type AuthServiceMock struct {
	mock.Mock
}

func (m *AuthServiceMock) Register(ctx context.Context, data auth.RegisterData) (string, error) {
	args := m.Called(ctx, data)
	return args.String(0), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func validRequest() Request {
	return Request{
		Email:       "ivan@example.com",
		Password:    "password123",
		FirstName:   "Ivan",
		LastName:    "Petrov",
		Phone:       "+79990001122",
		Address:     "Moscow",
		DateOfBirth: "1990-05-10",
	}
}

func TestSignupHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    any
		mockUID        string
		mockErr        error
		callExpected   bool
		wantStatusCode int
		wantError      string
	}{
		{
			name:           "valid signup",
			requestBody:    validRequest(),
			mockUID:        "some-uuid",
			callExpected:   true,
			wantStatusCode: http.StatusCreated,
		},
		{
			name:           "invalid json body",
			requestBody:    "not a json",
			wantStatusCode: http.StatusBadRequest,
			wantError:      "invalid request body",
		},
		{
			name: "validation error - missing date of birth",
			requestBody: func() Request {
				r := validRequest()
				r.DateOfBirth = ""
				return r
			}(),
			wantStatusCode: http.StatusUnprocessableEntity,
			wantError:      "field DateOfBirth is a required field",
		},
		{
			name: "validation error - bad email",
			requestBody: func() Request {
				r := validRequest()
				r.Email = "not-an-email"
				return r
			}(),
			wantStatusCode: http.StatusUnprocessableEntity,
			wantError:      "field Email must be a valid email address",
		},
		{
			name:           "email already taken",
			requestBody:    validRequest(),
			mockErr:        auth.ErrEmailTaken,
			callExpected:   true,
			wantStatusCode: http.StatusConflict,
			wantError:      "email already taken",
		},
		{
			name:           "underage user",
			requestBody:    validRequest(),
			mockErr:        auth.ErrUnderage,
			callExpected:   true,
			wantStatusCode: http.StatusUnprocessableEntity,
			wantError:      "user must be at least 18 years old",
		},
		{
			name:           "internal error",
			requestBody:    validRequest(),
			mockErr:        errors.New("db error"),
			callExpected:   true,
			wantStatusCode: http.StatusInternalServerError,
			wantError:      "failed to register user",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authMock := new(AuthServiceMock)
			if tt.callExpected {
				authMock.On("Register", mock.Anything, mock.MatchedBy(func(d auth.RegisterData) bool {
					return d.Email == "ivan@example.com" &&
						d.FirstName == "Ivan" &&
						d.Phone == "+79990001122" &&
						d.Address == "Moscow" &&
						!d.DateOfBirth.IsZero()
				})).Return(tt.mockUID, tt.mockErr).Once()
			}

			handler := New(newNoopLogger(), authMock)

			var body bytes.Buffer
			require.NoError(t, json.NewEncoder(&body).Encode(tt.requestBody))

			req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", &body)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatusCode, rr.Code)

			var resp map[string]any
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			if tt.wantError != "" {
				assert.Equal(t, "Error", resp["status"])
				assert.Contains(t, resp["error"], tt.wantError)
			} else {
				assert.Equal(t, "OK", resp["status"])
				data := resp["data"].(map[string]any)
				assert.Equal(t, tt.mockUID, data["uid"])
				assert.Equal(t, "ivan@example.com", data["email"])
			}

			authMock.AssertExpectations(t)
		})
	}
}
