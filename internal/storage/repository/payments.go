package repository

import (
	"context"
	"fmt"

	"github.com/mikhailovdd/insurance-backend/internal/models"
)

// CreatePayment сохраняет платеж по полису и возвращает его ID.
func (s *Storage) CreatePayment(ctx context.Context, payment models.Payment) (int, error) {
	const op = "storage.CreatePayment"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO payments (customer_policy_id, amount, payment_date,
			      payment_mode, payment_status)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id`
	var newID int
	err := s.DB.QueryRowContext(ctx, query,
		payment.AssignmentID, payment.Amount, payment.PaymentDate,
		payment.PaymentMode, payment.PaymentStatus).Scan(&newID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, classify(err))
	}
	return newID, nil
}

// ListPayments возвращает список всех платежей.
func (s *Storage) ListPayments(ctx context.Context) ([]*models.Payment, error) {
	const op = "storage.ListPayments"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, customer_policy_id, amount, payment_date, payment_mode, payment_status
			  FROM payments
			  ORDER BY id`
	return s.scanPayments(ctx, query)
}

// ListPaymentsByAssignment возвращает платежи по конкретному оформленному полису.
func (s *Storage) ListPaymentsByAssignment(ctx context.Context, assignmentID int) ([]*models.Payment, error) {
	const op = "storage.ListPaymentsByAssignment"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, customer_policy_id, amount, payment_date, payment_mode, payment_status
			  FROM payments
			  WHERE customer_policy_id = $1
			  ORDER BY id`
	return s.scanPayments(ctx, query, assignmentID)
}

func (s *Storage) scanPayments(ctx context.Context, query string, args ...any) ([]*models.Payment, error) {
	const op = "storage.scanPayments"

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Payment
	for rows.Next() {
		var item models.Payment
		if err := rows.Scan(&item.ID, &item.AssignmentID, &item.Amount,
			&item.PaymentDate, &item.PaymentMode, &item.PaymentStatus); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
