package repository

import (
	"context"
	"fmt"

	"github.com/mikhailovdd/insurance-backend/internal/models"
)

// SaveUser сохраняет нового пользователя и возвращает его UID.
// Уникальность email обеспечивается ограничением в базе: при дубликате
// возвращается ErrUserExists.
func (s *Storage) SaveUser(ctx context.Context, user models.User) (string, error) {
	const op = "storage.SaveUser"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var newUID string
	query := `INSERT INTO users (email, password_hash, first_name, last_name,
			      phone, address, date_of_birth, role)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			  RETURNING uid;`
	if err := s.DB.QueryRowContext(ctx, query,
		user.Email, user.PasswordHash, user.FirstName, user.LastName,
		user.Phone, user.Address, user.DateOfBirth, user.Role).Scan(&newUID); err != nil {
		return "", fmt.Errorf("%s: %w", op, classify(err))
	}
	return newUID, nil
}

// GetUserByEmail возвращает пользователя по его email.
func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	const op = "storage.GetUserByEmail"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT uid, email, password_hash, first_name, last_name,
			      phone, address, date_of_birth, role, created_at
			  FROM users
			  WHERE email = $1`
	u := &models.User{}
	row := s.DB.QueryRowContext(ctx, query, email)

	if err := row.Scan(&u.UID, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName,
		&u.Phone, &u.Address, &u.DateOfBirth, &u.Role, &u.CreatedAt); err != nil {
		return nil, fmt.Errorf("%s: %w", op, classify(err))
	}
	return u, nil
}

// UserExistsByEmail проверяет наличие пользователя с указанным email.
func (s *Storage) UserExistsByEmail(ctx context.Context, email string) (bool, error) {
	const op = "storage.UserExistsByEmail"
	select {
	case <-ctx.Done():
		return false, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`
	var exists bool
	if err := s.DB.QueryRowContext(ctx, query, email).Scan(&exists); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return exists, nil
}
