package repository

import (
	"context"
	"fmt"

	"github.com/mikhailovdd/insurance-backend/internal/models"
)

// CreateClaim регистрирует страховое требование и возвращает его ID.
func (s *Storage) CreateClaim(ctx context.Context, claim models.Claim) (int, error) {
	const op = "storage.CreateClaim"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO claims (reference, customer_policy_id, claim_amount,
			      claim_date, claim_status, description)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id`
	var newID int
	err := s.DB.QueryRowContext(ctx, query,
		claim.Reference, claim.AssignmentID, claim.ClaimAmount,
		claim.ClaimDate, claim.ClaimStatus, claim.Description).Scan(&newID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, classify(err))
	}
	return newID, nil
}

// ListClaims возвращает список всех требований.
func (s *Storage) ListClaims(ctx context.Context) ([]*models.Claim, error) {
	const op = "storage.ListClaims"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, reference, customer_policy_id, claim_amount,
			      claim_date, claim_status, description
			  FROM claims
			  ORDER BY id`
	return s.scanClaims(ctx, query)
}

// ListClaimsByAssignment возвращает требования по конкретному оформленному полису.
func (s *Storage) ListClaimsByAssignment(ctx context.Context, assignmentID int) ([]*models.Claim, error) {
	const op = "storage.ListClaimsByAssignment"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, reference, customer_policy_id, claim_amount,
			      claim_date, claim_status, description
			  FROM claims
			  WHERE customer_policy_id = $1
			  ORDER BY id`
	return s.scanClaims(ctx, query, assignmentID)
}

func (s *Storage) scanClaims(ctx context.Context, query string, args ...any) ([]*models.Claim, error) {
	const op = "storage.scanClaims"

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Claim
	for rows.Next() {
		var item models.Claim
		if err := rows.Scan(&item.ID, &item.Reference, &item.AssignmentID,
			&item.ClaimAmount, &item.ClaimDate, &item.ClaimStatus, &item.Description); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
