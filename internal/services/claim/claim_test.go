package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mikhailovdd/insurance-backend/internal/models"
	"github.com/mikhailovdd/insurance-backend/internal/rabbitmq"
	services "github.com/mikhailovdd/insurance-backend/internal/services/claim"
	"github.com/mikhailovdd/insurance-backend/internal/storage/repository"
)

type ClaimRepoMock struct {
	mock.Mock
}

func (m *ClaimRepoMock) CreateClaim(ctx context.Context, claim models.Claim) (int, error) {
	args := m.Called(ctx, claim)
	return args.Int(0), args.Error(1)
}

func (m *ClaimRepoMock) ListClaims(ctx context.Context) ([]*models.Claim, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Claim), args.Error(1)
}

func (m *ClaimRepoMock) ListClaimsByAssignment(ctx context.Context, assignmentID int) ([]*models.Claim, error) {
	args := m.Called(ctx, assignmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Claim), args.Error(1)
}

func (m *ClaimRepoMock) ReadAssignment(ctx context.Context, id int) (*models.Assignment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Assignment), args.Error(1)
}

func (m *ClaimRepoMock) ReadCustomer(ctx context.Context, id int) (*models.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Customer), args.Error(1)
}

func (m *ClaimRepoMock) ReadPolicy(ctx context.Context, id int) (*models.Policy, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Policy), args.Error(1)
}

type PublisherMock struct {
	mock.Mock
}

func (m *PublisherMock) Publish(routingKey string, body []byte) error {
	args := m.Called(routingKey, body)
	return args.Error(0)
}

func noopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestClaimService_Create(t *testing.T) {
	assignment := &models.Assignment{ID: 11, CustomerID: 2, PolicyID: 5}
	customer := &models.Customer{ID: 2, FirstName: "Anna", LastName: "Ivanova", Email: "anna@example.com"}
	policy := &models.Policy{ID: 5, PolicyName: "Health Basic"}

	repo := new(ClaimRepoMock)
	pub := new(PublisherMock)
	repo.On("ReadAssignment", mock.Anything, 11).Return(assignment, nil).Once()
	repo.On("CreateClaim", mock.Anything, mock.MatchedBy(func(c models.Claim) bool {
		_, err := uuid.Parse(c.Reference)
		return err == nil &&
			c.AssignmentID == 11 &&
			c.ClaimAmount == 25000 &&
			c.ClaimStatus == "REGISTERED" &&
			c.Description == "water damage"
	})).Return(3, nil).Once()
	repo.On("ReadCustomer", mock.Anything, 2).Return(customer, nil).Once()
	repo.On("ReadPolicy", mock.Anything, 5).Return(policy, nil).Once()
	pub.On("Publish", rabbitmq.ClaimRoutingKey, mock.MatchedBy(func(body []byte) bool {
		var event models.ClaimEvent
		if err := json.Unmarshal(body, &event); err != nil {
			return false
		}
		return event.CustomerEmail == "anna@example.com" &&
			event.CustomerName == "Anna Ivanova" &&
			event.PolicyName == "Health Basic" &&
			event.ClaimAmount == 25000 &&
			event.ClaimStatus == "REGISTERED"
	})).Return(nil).Once()

	svc := services.NewClaimService(repo, pub, noopLogger())

	claim, err := svc.Create(context.Background(), 11, 25000, "water damage")
	require.NoError(t, err)
	assert.Equal(t, 3, claim.ID)
	assert.NotEmpty(t, claim.Reference)
	assert.Equal(t, "REGISTERED", claim.ClaimStatus)

	repo.AssertExpectations(t)
	pub.AssertExpectations(t)
}

func TestClaimService_Create_AssignmentNotFound(t *testing.T) {
	repo := new(ClaimRepoMock)
	repo.On("ReadAssignment", mock.Anything, 99).Return(nil, repository.ErrNotFound).Once()

	svc := services.NewClaimService(repo, new(PublisherMock), noopLogger())

	_, err := svc.Create(context.Background(), 99, 1000, "x")
	assert.ErrorIs(t, err, services.ErrAssignmentNotFound)
	repo.AssertNotCalled(t, "CreateClaim", mock.Anything, mock.Anything)
}

// Сбой публикации события не должен отменять регистрацию требования.
func TestClaimService_Create_PublishFailure(t *testing.T) {
	assignment := &models.Assignment{ID: 11, CustomerID: 2, PolicyID: 5}

	repo := new(ClaimRepoMock)
	pub := new(PublisherMock)
	repo.On("ReadAssignment", mock.Anything, 11).Return(assignment, nil).Once()
	repo.On("CreateClaim", mock.Anything, mock.Anything).Return(3, nil).Once()
	repo.On("ReadCustomer", mock.Anything, 2).Return(&models.Customer{ID: 2, Email: "anna@example.com"}, nil).Once()
	repo.On("ReadPolicy", mock.Anything, 5).Return(&models.Policy{ID: 5}, nil).Once()
	pub.On("Publish", rabbitmq.ClaimRoutingKey, mock.Anything).Return(errors.New("broker down")).Once()

	svc := services.NewClaimService(repo, pub, noopLogger())

	claim, err := svc.Create(context.Background(), 11, 25000, "water damage")
	require.NoError(t, err)
	assert.Equal(t, 3, claim.ID)
}

func TestClaimService_ListByAssignment(t *testing.T) {
	claims := []*models.Claim{{ID: 1, AssignmentID: 11}, {ID: 2, AssignmentID: 11}}

	repo := new(ClaimRepoMock)
	repo.On("ListClaimsByAssignment", mock.Anything, 11).Return(claims, nil).Once()

	svc := services.NewClaimService(repo, new(PublisherMock), noopLogger())

	got, err := svc.ListByAssignment(context.Background(), 11)
	assert.NoError(t, err)
	assert.Equal(t, claims, got)
}
