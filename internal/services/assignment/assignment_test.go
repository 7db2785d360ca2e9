package services_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/mikhailovdd/insurance-backend/internal/models"
	services "github.com/mikhailovdd/insurance-backend/internal/services/assignment"
	"github.com/mikhailovdd/insurance-backend/internal/storage/repository"
)

type AssignmentRepoMock struct {
	mock.Mock
}

func (m *AssignmentRepoMock) CreateAssignment(ctx context.Context, assignment models.Assignment) (int, error) {
	args := m.Called(ctx, assignment)
	return args.Int(0), args.Error(1)
}

func (m *AssignmentRepoMock) ReadAssignment(ctx context.Context, id int) (*models.Assignment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Assignment), args.Error(1)
}

func (m *AssignmentRepoMock) ListAssignments(ctx context.Context) ([]*models.Assignment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Assignment), args.Error(1)
}

func (m *AssignmentRepoMock) ReadCustomer(ctx context.Context, id int) (*models.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Customer), args.Error(1)
}

func (m *AssignmentRepoMock) ReadPolicy(ctx context.Context, id int) (*models.Policy, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Policy), args.Error(1)
}

type CacheMock struct {
	mock.Mock
}

func (m *CacheMock) Get(key string, result any) (bool, error) {
	args := m.Called(key, result)
	return args.Bool(0), args.Error(1)
}

func (m *CacheMock) Set(key string, value any, expiration time.Duration) error {
	args := m.Called(key, value, expiration)
	return args.Error(0)
}

func (m *CacheMock) Invalidate(key string) error {
	args := m.Called(key)
	return args.Error(0)
}

func noopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestAssignmentService_Assign(t *testing.T) {
	startDate := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	customer := &models.Customer{ID: 2, FirstName: "Anna", LastName: "Ivanova"}
	policy := &models.Policy{ID: 5, PolicyName: "Health Basic", PremiumAmount: 1500, DurationMonths: 12}

	repo := new(AssignmentRepoMock)
	cache := new(CacheMock)
	repo.On("ReadCustomer", mock.Anything, 2).Return(customer, nil).Once()
	repo.On("ReadPolicy", mock.Anything, 5).Return(policy, nil).Once()
	repo.On("CreateAssignment", mock.Anything, mock.MatchedBy(func(a models.Assignment) bool {
		return a.CustomerID == 2 &&
			a.PolicyID == 5 &&
			a.StartDate.Equal(startDate) &&
			a.EndDate.Equal(startDate.AddDate(0, 12, 0)) &&
			a.Status == "ACTIVE" &&
			a.PremiumAmount == 1500
	})).Return(11, nil).Once()
	cache.On("Set", "assignment:11", mock.Anything, time.Hour).Return(nil).Once()

	svc := services.NewAssignmentService(repo, cache, noopLogger())

	id, err := svc.Assign(context.Background(), 2, 5, startDate)
	assert.NoError(t, err)
	assert.Equal(t, 11, id)

	repo.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestAssignmentService_Assign_CustomerNotFound(t *testing.T) {
	repo := new(AssignmentRepoMock)
	repo.On("ReadCustomer", mock.Anything, 99).Return(nil, repository.ErrNotFound).Once()

	svc := services.NewAssignmentService(repo, new(CacheMock), noopLogger())

	_, err := svc.Assign(context.Background(), 99, 5, time.Now())
	assert.ErrorIs(t, err, services.ErrCustomerNotFound)
	repo.AssertNotCalled(t, "CreateAssignment", mock.Anything, mock.Anything)
}

func TestAssignmentService_Assign_PolicyNotFound(t *testing.T) {
	repo := new(AssignmentRepoMock)
	repo.On("ReadCustomer", mock.Anything, 2).Return(&models.Customer{ID: 2}, nil).Once()
	repo.On("ReadPolicy", mock.Anything, 99).Return(nil, repository.ErrNotFound).Once()

	svc := services.NewAssignmentService(repo, new(CacheMock), noopLogger())

	_, err := svc.Assign(context.Background(), 2, 99, time.Now())
	assert.ErrorIs(t, err, services.ErrPolicyNotFound)
	repo.AssertNotCalled(t, "CreateAssignment", mock.Anything, mock.Anything)
}

// Клиент удален между проверкой и вставкой: нарушение внешнего ключа
// должно превратиться в ErrCustomerNotFound.
func TestAssignmentService_Assign_CustomerRemovedDuringInsert(t *testing.T) {
	customer := &models.Customer{ID: 2}
	policy := &models.Policy{ID: 5, PremiumAmount: 1500, DurationMonths: 12}

	repo := new(AssignmentRepoMock)
	repo.On("ReadCustomer", mock.Anything, 2).Return(customer, nil).Once()
	repo.On("ReadPolicy", mock.Anything, 5).Return(policy, nil).Once()
	repo.On("CreateAssignment", mock.Anything, mock.Anything).Return(0, repository.ErrReferenceNotFound).Once()
	repo.On("ReadCustomer", mock.Anything, 2).Return(nil, repository.ErrNotFound).Once()

	svc := services.NewAssignmentService(repo, new(CacheMock), noopLogger())

	_, err := svc.Assign(context.Background(), 2, 5, time.Now())
	assert.ErrorIs(t, err, services.ErrCustomerNotFound)
	repo.AssertExpectations(t)
}

// Полис удален между проверкой и вставкой: клиент на месте,
// значит нарушение внешнего ключа вызвано полисом.
func TestAssignmentService_Assign_PolicyRemovedDuringInsert(t *testing.T) {
	customer := &models.Customer{ID: 2}
	policy := &models.Policy{ID: 5, PremiumAmount: 1500, DurationMonths: 12}

	repo := new(AssignmentRepoMock)
	repo.On("ReadCustomer", mock.Anything, 2).Return(customer, nil).Twice()
	repo.On("ReadPolicy", mock.Anything, 5).Return(policy, nil).Once()
	repo.On("CreateAssignment", mock.Anything, mock.Anything).Return(0, repository.ErrReferenceNotFound).Once()

	svc := services.NewAssignmentService(repo, new(CacheMock), noopLogger())

	_, err := svc.Assign(context.Background(), 2, 5, time.Now())
	assert.ErrorIs(t, err, services.ErrPolicyNotFound)
	repo.AssertExpectations(t)
}

func TestAssignmentService_Read_CacheMiss(t *testing.T) {
	stored := &models.Assignment{ID: 11, CustomerID: 2, PolicyID: 5}

	repo := new(AssignmentRepoMock)
	cache := new(CacheMock)
	cache.On("Get", "assignment:11", mock.Anything).Return(false, nil).Once()
	repo.On("ReadAssignment", mock.Anything, 11).Return(stored, nil).Once()
	cache.On("Set", "assignment:11", stored, time.Hour).Return(nil).Once()

	svc := services.NewAssignmentService(repo, cache, noopLogger())

	got, err := svc.Read(context.Background(), 11)
	assert.NoError(t, err)
	assert.Equal(t, stored, got)

	repo.AssertExpectations(t)
	cache.AssertExpectations(t)
}
