package repository

import (
	"context"
	"fmt"

	"github.com/mikhailovdd/insurance-backend/internal/models"
)

// CreateAssignment оформляет полис на клиента и возвращает ID связи.
// Внешние ключи на customers и policies проверяются базой: если одна из
// сторон исчезла, возвращается ErrReferenceNotFound.
func (s *Storage) CreateAssignment(ctx context.Context, assignment models.Assignment) (int, error) {
	const op = "storage.CreateAssignment"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO customer_policies (customer_id, policy_id, start_date,
			      end_date, status, premium_amount)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id`
	var newID int
	err := s.DB.QueryRowContext(ctx, query,
		assignment.CustomerID, assignment.PolicyID, assignment.StartDate,
		assignment.EndDate, assignment.Status, assignment.PremiumAmount).Scan(&newID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, classify(err))
	}
	return newID, nil
}

// ReadAssignment возвращает связь клиент-полис по её ID.
func (s *Storage) ReadAssignment(ctx context.Context, id int) (*models.Assignment, error) {
	const op = "storage.ReadAssignment"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, customer_id, policy_id, start_date, end_date, status, premium_amount
			  FROM customer_policies WHERE id = $1`
	row := s.DB.QueryRowContext(ctx, query, id)

	var result models.Assignment
	if err := row.Scan(&result.ID, &result.CustomerID, &result.PolicyID,
		&result.StartDate, &result.EndDate, &result.Status, &result.PremiumAmount); err != nil {
		return nil, fmt.Errorf("%s: %w", op, classify(err))
	}
	return &result, nil
}

// ListAssignments возвращает список всех оформленных полисов.
func (s *Storage) ListAssignments(ctx context.Context) ([]*models.Assignment, error) {
	const op = "storage.ListAssignments"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, customer_id, policy_id, start_date, end_date, status, premium_amount
			  FROM customer_policies
			  ORDER BY id`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Assignment
	for rows.Next() {
		var item models.Assignment
		if err := rows.Scan(&item.ID, &item.CustomerID, &item.PolicyID,
			&item.StartDate, &item.EndDate, &item.Status, &item.PremiumAmount); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
