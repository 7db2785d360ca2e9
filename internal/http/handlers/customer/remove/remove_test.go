package remove

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	customer "github.com/mikhailovdd/insurance-backend/internal/services/customer"
)

type CustomerServiceMock struct {
	mock.Mock
}

func (m *CustomerServiceMock) Remove(ctx context.Context, id int) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestCustomerRemoveHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name           string
		id             string
		mockCount      int
		mockErr        error
		callExpected   bool
		wantStatusCode int
		wantError      string
	}{
		{
			name:           "deleted",
			id:             "3",
			mockCount:      1,
			callExpected:   true,
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "invalid id",
			id:             "abc",
			wantStatusCode: http.StatusBadRequest,
			wantError:      "invalid id",
		},
		{
			name:           "not found",
			id:             "99",
			mockCount:      0,
			callExpected:   true,
			wantStatusCode: http.StatusNotFound,
			wantError:      "customer not found",
		},
		{
			name:           "customer has assigned policies",
			id:             "3",
			mockErr:        customer.ErrCustomerHasPolicies,
			callExpected:   true,
			wantStatusCode: http.StatusConflict,
			wantError:      "customer has assigned policies",
		},
		{
			name:           "internal error",
			id:             "3",
			mockErr:        errors.New("db error"),
			callExpected:   true,
			wantStatusCode: http.StatusInternalServerError,
			wantError:      "failed to delete customer",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svcMock := new(CustomerServiceMock)
			if tt.callExpected {
				svcMock.On("Remove", mock.Anything, mock.Anything).
					Return(tt.mockCount, tt.mockErr).Once()
			}

			handler := New(newNoopLogger(), svcMock)

			req := httptest.NewRequest(http.MethodDelete, "/api/customers/"+tt.id, nil)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.id)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
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
				assert.Equal(t, float64(1), data["deleted_count"])
			}

			svcMock.AssertExpectations(t)
		})
	}
}
