package repository

import (
	"context"
	"fmt"

	"github.com/mikhailovdd/insurance-backend/internal/models"
)

// CreatePolicy вставляет новый страховой продукт и возвращает его ID.
func (s *Storage) CreatePolicy(ctx context.Context, policy models.Policy) (int, error) {
	const op = "storage.CreatePolicy"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO policies (policy_name, policy_type, premium_amount,
			      duration_months, coverage_amount)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id`
	var newID int
	err := s.DB.QueryRowContext(ctx, query,
		policy.PolicyName, policy.PolicyType, policy.PremiumAmount,
		policy.DurationMonths, policy.CoverageAmount).Scan(&newID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, classify(err))
	}
	return newID, nil
}

// ReadPolicy возвращает страховой продукт по его ID.
func (s *Storage) ReadPolicy(ctx context.Context, id int) (*models.Policy, error) {
	const op = "storage.ReadPolicy"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, policy_name, policy_type, premium_amount,
			      duration_months, coverage_amount, created_at
			  FROM policies WHERE id = $1`
	row := s.DB.QueryRowContext(ctx, query, id)

	var result models.Policy
	if err := row.Scan(&result.ID, &result.PolicyName, &result.PolicyType,
		&result.PremiumAmount, &result.DurationMonths, &result.CoverageAmount,
		&result.CreatedAt); err != nil {
		return nil, fmt.Errorf("%s: %w", op, classify(err))
	}
	return &result, nil
}

// ListPolicies возвращает список всех страховых продуктов.
func (s *Storage) ListPolicies(ctx context.Context) ([]*models.Policy, error) {
	const op = "storage.ListPolicies"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, policy_name, policy_type, premium_amount,
			      duration_months, coverage_amount, created_at
			  FROM policies
			  ORDER BY id`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Policy
	for rows.Next() {
		var item models.Policy
		if err := rows.Scan(&item.ID, &item.PolicyName, &item.PolicyType,
			&item.PremiumAmount, &item.DurationMonths, &item.CoverageAmount,
			&item.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// RemovePolicy удаляет страховой продукт по ID и возвращает количество удалённых строк.
func (s *Storage) RemovePolicy(ctx context.Context, id int) (int, error) {
	const op = "storage.RemovePolicy"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM policies WHERE id = $1`
	result, err := s.DB.ExecContext(ctx, query, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, classify(err))
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}
