package repository

import (
	"context"
	"fmt"

	"github.com/mikhailovdd/insurance-backend/internal/models"
)

// CreateCustomer вставляет нового клиента и возвращает его ID.
func (s *Storage) CreateCustomer(ctx context.Context, customer models.Customer) (int, error) {
	const op = "storage.CreateCustomer"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO customers (first_name, last_name, email, phone, address)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id`
	var newID int
	err := s.DB.QueryRowContext(ctx, query,
		customer.FirstName, customer.LastName, customer.Email,
		customer.Phone, customer.Address).Scan(&newID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, classify(err))
	}
	return newID, nil
}

// ReadCustomer возвращает клиента по его ID.
func (s *Storage) ReadCustomer(ctx context.Context, id int) (*models.Customer, error) {
	const op = "storage.ReadCustomer"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, first_name, last_name, email, phone, address, created_at
			  FROM customers WHERE id = $1`
	row := s.DB.QueryRowContext(ctx, query, id)

	var result models.Customer
	if err := row.Scan(&result.ID, &result.FirstName, &result.LastName,
		&result.Email, &result.Phone, &result.Address, &result.CreatedAt); err != nil {
		return nil, fmt.Errorf("%s: %w", op, classify(err))
	}
	return &result, nil
}

// ListCustomers возвращает список всех клиентов.
func (s *Storage) ListCustomers(ctx context.Context) ([]*models.Customer, error) {
	const op = "storage.ListCustomers"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, first_name, last_name, email, phone, address, created_at
			  FROM customers
			  ORDER BY id`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Customer
	for rows.Next() {
		var item models.Customer
		if err := rows.Scan(&item.ID, &item.FirstName, &item.LastName,
			&item.Email, &item.Phone, &item.Address, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// RemoveCustomer удаляет клиента по ID и возвращает количество удалённых строк.
func (s *Storage) RemoveCustomer(ctx context.Context, id int) (int, error) {
	const op = "storage.RemoveCustomer"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM customers WHERE id = $1`
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
