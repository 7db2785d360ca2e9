// Package repository реализует хранилище данных на основе PostgreSQL
// для учета пользователей, клиентов, полисов, требований и платежей.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	// Регистрация драйвера pgx для использования с database/sql.
	_ "github.com/jackc/pgx/v5/stdlib"
)

// Ошибки хранилища. Сервисы сравнивают их через errors.Is и
// превращают в доменные отказы.
var (
	// ErrUserExists возвращается при нарушении уникальности email пользователя.
	ErrUserExists = errors.New("user already exists")
	// ErrNotFound возвращается, когда запрошенная запись отсутствует.
	ErrNotFound = errors.New("record not found")
	// ErrReferenceNotFound возвращается при нарушении внешнего ключа:
	// связываемая запись исчезла между проверкой и вставкой.
	ErrReferenceNotFound = errors.New("referenced record not found")
)

// Storage инкапсулирует соединение с базой данных PostgreSQL.
type Storage struct {
	DB *sql.DB
}

// New создаёт подключение к PostgreSQL и проверяет его доступность.
func New(storageConnectionString string) (*Storage, error) {
	const op = "storage.New"

	db, err := sql.Open("pgx", storageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = db.PingContext(context.Background()); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{
		DB: db,
	}, nil
}

// classify переводит низкоуровневые ошибки БД в ошибки хранилища.
// Уникальность email и внешние ключи обеспечиваются ограничениями в самой
// базе, поэтому гонка двух одновременных вставок разрешается именно здесь.
func classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return ErrUserExists
		case pgerrcode.ForeignKeyViolation:
			return ErrReferenceNotFound
		}
	}
	return err
}
