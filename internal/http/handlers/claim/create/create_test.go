package create

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

	"github.com/mikhailovdd/insurance-backend/internal/models"
	claim "github.com/mikhailovdd/insurance-backend/internal/services/claim"
)

type ClaimServiceMock struct {
	mock.Mock
}

func (m *ClaimServiceMock) Create(ctx context.Context, assignmentID int, amount float64, description string) (*models.Claim, error) {
	args := m.Called(ctx, assignmentID, amount, description)
	resp, _ := args.Get(0).(*models.Claim)
	return resp, args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestClaimCreateHandler_ServeHTTP(t *testing.T) {
	created := &models.Claim{
		ID:           3,
		Reference:    "2f0c1f40-1111-4222-8333-444455556666",
		AssignmentID: 11,
		ClaimAmount:  25000,
		ClaimStatus:  "REGISTERED",
		Description:  "water damage",
	}

	tests := []struct {
		name           string
		requestBody    any
		mockClaim      *models.Claim
		mockErr        error
		callExpected   bool
		wantStatusCode int
		wantError      string
	}{
		{
			name:           "valid claim",
			requestBody:    Request{CustomerPolicyID: 11, ClaimAmount: 25000, Description: "water damage"},
			mockClaim:      created,
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
			name:           "validation error - missing amount",
			requestBody:    Request{CustomerPolicyID: 11},
			wantStatusCode: http.StatusUnprocessableEntity,
			wantError:      "field ClaimAmount is a required field",
		},
		{
			name:           "customer policy not found",
			requestBody:    Request{CustomerPolicyID: 99, ClaimAmount: 25000, Description: "water damage"},
			mockErr:        claim.ErrAssignmentNotFound,
			callExpected:   true,
			wantStatusCode: http.StatusNotFound,
			wantError:      "customer policy not found",
		},
		{
			name:           "internal error",
			requestBody:    Request{CustomerPolicyID: 11, ClaimAmount: 25000, Description: "water damage"},
			mockErr:        errors.New("db error"),
			callExpected:   true,
			wantStatusCode: http.StatusInternalServerError,
			wantError:      "failed to register claim",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svcMock := new(ClaimServiceMock)
			if tt.callExpected {
				svcMock.On("Create", mock.Anything, mock.Anything, 25000.0, "water damage").
					Return(tt.mockClaim, tt.mockErr).Once()
			}

			handler := New(newNoopLogger(), svcMock)

			var body bytes.Buffer
			require.NoError(t, json.NewEncoder(&body).Encode(tt.requestBody))

			req := httptest.NewRequest(http.MethodPost, "/api/claims", &body)
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
				claimData := data["claim"].(map[string]any)
				assert.Equal(t, created.Reference, claimData["reference"])
				assert.Equal(t, "REGISTERED", claimData["claim_status"])
			}

			svcMock.AssertExpectations(t)
		})
	}
}
