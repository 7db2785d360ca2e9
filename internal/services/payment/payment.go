// Package services содержит бизнес-логику учета платежей по оформленным полисам.
package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/mikhailovdd/insurance-backend/internal/models"
	"github.com/mikhailovdd/insurance-backend/internal/storage/repository"
)

// ErrAssignmentNotFound возвращается при регистрации платежа
// по несуществующему оформлению полиса.
var ErrAssignmentNotFound = errors.New("customer policy not found")

// PaymentRepository определяет методы для работы с платежами в хранилище.
type PaymentRepository interface {
	// CreatePayment добавляет новый платеж и возвращает его ID.
	CreatePayment(ctx context.Context, payment models.Payment) (int, error)
	// ListPayments возвращает список всех платежей.
	ListPayments(ctx context.Context) ([]*models.Payment, error)
	// ListPaymentsByAssignment возвращает платежи по оформлению полиса.
	ListPaymentsByAssignment(ctx context.Context, assignmentID int) ([]*models.Payment, error)
	// ReadAssignment возвращает оформление по ID.
	ReadAssignment(ctx context.Context, id int) (*models.Assignment, error)
}

// PaymentService реализует бизнес-логику учета платежей.
type PaymentService struct {
	repo PaymentRepository
	log  *slog.Logger
}

// NewPaymentService создает новый экземпляр PaymentService.
func NewPaymentService(repo PaymentRepository, log *slog.Logger) *PaymentService {
	return &PaymentService{repo: repo, log: log}
}

// Create регистрирует платеж по оформленному полису и возвращает его ID.
func (s *PaymentService) Create(ctx context.Context, payment models.Payment) (int, error) {
	if _, err := s.repo.ReadAssignment(ctx, payment.AssignmentID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return 0, ErrAssignmentNotFound
		}
		return 0, err
	}

	id, err := s.repo.CreatePayment(ctx, payment)
	if err != nil {
		if errors.Is(err, repository.ErrReferenceNotFound) {
			return 0, ErrAssignmentNotFound
		}
		return 0, err
	}
	s.log.Info("recorded new payment", slog.Int("id", id), slog.Int("customer_policy_id", payment.AssignmentID))
	return id, nil
}

// List возвращает список всех платежей.
func (s *PaymentService) List(ctx context.Context) ([]*models.Payment, error) {
	return s.repo.ListPayments(ctx)
}

// ListByAssignment возвращает платежи по оформлению полиса.
func (s *PaymentService) ListByAssignment(ctx context.Context, assignmentID int) ([]*models.Payment, error) {
	return s.repo.ListPaymentsByAssignment(ctx, assignmentID)
}
