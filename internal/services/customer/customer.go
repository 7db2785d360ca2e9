// Package services содержит бизнес-логику для управления клиентами страховой компании.
package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/mikhailovdd/insurance-backend/internal/models"
	"github.com/mikhailovdd/insurance-backend/internal/storage/repository"
)

// ErrCustomerHasPolicies возвращается при удалении клиента,
// на которого оформлены полисы.
var ErrCustomerHasPolicies = errors.New("customer has assigned policies")

// CustomerRepository определяет методы для работы с клиентами в хранилище.
type CustomerRepository interface {
	// CreateCustomer добавляет нового клиента и возвращает его ID.
	CreateCustomer(ctx context.Context, customer models.Customer) (int, error)
	// ReadCustomer возвращает клиента по ID.
	ReadCustomer(ctx context.Context, id int) (*models.Customer, error)
	// ListCustomers возвращает список всех клиентов.
	ListCustomers(ctx context.Context) ([]*models.Customer, error)
	// RemoveCustomer удаляет клиента по ID и возвращает количество удалённых записей.
	RemoveCustomer(ctx context.Context, id int) (int, error)
}

// CustomerService реализует бизнес-логику работы с клиентами.
type CustomerService struct {
	repo CustomerRepository
	log  *slog.Logger
}

// NewCustomerService создает новый экземпляр CustomerService.
func NewCustomerService(repo CustomerRepository, log *slog.Logger) *CustomerService {
	return &CustomerService{repo: repo, log: log}
}

// Create создает нового клиента и возвращает его ID.
func (s *CustomerService) Create(ctx context.Context, customer models.Customer) (int, error) {
	id, err := s.repo.CreateCustomer(ctx, customer)
	if err != nil {
		return 0, err
	}
	s.log.Info("created new customer", slog.Int("id", id))
	return id, nil
}

// Read возвращает клиента по ID.
func (s *CustomerService) Read(ctx context.Context, id int) (*models.Customer, error) {
	return s.repo.ReadCustomer(ctx, id)
}

// List возвращает список всех клиентов.
func (s *CustomerService) List(ctx context.Context) ([]*models.Customer, error) {
	return s.repo.ListCustomers(ctx)
}

// Remove удаляет клиента по ID и возвращает количество удалённых записей.
// Клиент с оформленными полисами удалению не подлежит.
func (s *CustomerService) Remove(ctx context.Context, id int) (int, error) {
	count, err := s.repo.RemoveCustomer(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrReferenceNotFound) {
			return 0, ErrCustomerHasPolicies
		}
		return 0, err
	}
	return count, nil
}
