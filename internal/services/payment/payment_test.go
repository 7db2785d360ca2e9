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
	services "github.com/mikhailovdd/insurance-backend/internal/services/payment"
	"github.com/mikhailovdd/insurance-backend/internal/storage/repository"
)

type PaymentRepoMock struct {
	mock.Mock
}

func (m *PaymentRepoMock) CreatePayment(ctx context.Context, payment models.Payment) (int, error) {
	args := m.Called(ctx, payment)
	return args.Int(0), args.Error(1)
}

func (m *PaymentRepoMock) ListPayments(ctx context.Context) ([]*models.Payment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Payment), args.Error(1)
}

func (m *PaymentRepoMock) ListPaymentsByAssignment(ctx context.Context, assignmentID int) ([]*models.Payment, error) {
	args := m.Called(ctx, assignmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Payment), args.Error(1)
}

func (m *PaymentRepoMock) ReadAssignment(ctx context.Context, id int) (*models.Assignment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Assignment), args.Error(1)
}

func noopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestPaymentService_Create(t *testing.T) {
	payment := models.Payment{
		AssignmentID:  11,
		Amount:        1500,
		PaymentDate:   time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		PaymentMode:   "Card",
		PaymentStatus: "Paid",
	}

	repo := new(PaymentRepoMock)
	repo.On("ReadAssignment", mock.Anything, 11).Return(&models.Assignment{ID: 11}, nil).Once()
	repo.On("CreatePayment", mock.Anything, payment).Return(4, nil).Once()

	svc := services.NewPaymentService(repo, noopLogger())

	id, err := svc.Create(context.Background(), payment)
	assert.NoError(t, err)
	assert.Equal(t, 4, id)

	repo.AssertExpectations(t)
}

func TestPaymentService_Create_AssignmentNotFound(t *testing.T) {
	repo := new(PaymentRepoMock)
	repo.On("ReadAssignment", mock.Anything, 99).Return(nil, repository.ErrNotFound).Once()

	svc := services.NewPaymentService(repo, noopLogger())

	_, err := svc.Create(context.Background(), models.Payment{AssignmentID: 99})
	assert.ErrorIs(t, err, services.ErrAssignmentNotFound)
	repo.AssertNotCalled(t, "CreatePayment", mock.Anything, mock.Anything)
}

func TestPaymentService_ListByAssignment(t *testing.T) {
	payments := []*models.Payment{{ID: 1, AssignmentID: 11}}

	repo := new(PaymentRepoMock)
	repo.On("ListPaymentsByAssignment", mock.Anything, 11).Return(payments, nil).Once()

	svc := services.NewPaymentService(repo, noopLogger())

	got, err := svc.ListByAssignment(context.Background(), 11)
	assert.NoError(t, err)
	assert.Equal(t, payments, got)
}
