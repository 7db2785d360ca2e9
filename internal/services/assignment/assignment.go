// Package services содержит бизнес-логику оформления полисов на клиентов.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/mikhailovdd/insurance-backend/internal/models"
	"github.com/mikhailovdd/insurance-backend/internal/storage/repository"
)

var (
	// ErrCustomerNotFound возвращается при оформлении полиса на несуществующего клиента.
	ErrCustomerNotFound = errors.New("customer not found")
	// ErrPolicyNotFound возвращается при оформлении несуществующего полиса.
	ErrPolicyNotFound = errors.New("policy not found")
)

// AssignmentRepository определяет методы для работы с оформленными полисами в хранилище.
type AssignmentRepository interface {
	// CreateAssignment добавляет запись об оформлении полиса и возвращает её ID.
	CreateAssignment(ctx context.Context, assignment models.Assignment) (int, error)
	// ReadAssignment возвращает оформление по ID.
	ReadAssignment(ctx context.Context, id int) (*models.Assignment, error)
	// ListAssignments возвращает список всех оформлений.
	ListAssignments(ctx context.Context) ([]*models.Assignment, error)
	// ReadCustomer возвращает клиента по ID.
	ReadCustomer(ctx context.Context, id int) (*models.Customer, error)
	// ReadPolicy возвращает страховой продукт по ID.
	ReadPolicy(ctx context.Context, id int) (*models.Policy, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	Get(key string, result any) (bool, error)
	Set(key string, value any, expiration time.Duration) error
	Invalidate(key string) error
}

// AssignmentService реализует бизнес-логику оформления полисов.
type AssignmentService struct {
	repo  AssignmentRepository
	cache Cache
	log   *slog.Logger
}

// NewAssignmentService создает новый экземпляр AssignmentService.
func NewAssignmentService(repo AssignmentRepository, cache Cache, log *slog.Logger) *AssignmentService {
	return &AssignmentService{repo: repo, cache: cache, log: log}
}

// Assign оформляет полис на клиента. Срок действия считается от даты начала
// и длительности продукта, премия берется из продукта.
func (s *AssignmentService) Assign(ctx context.Context, customerID, policyID int, startDate time.Time) (int, error) {
	if _, err := s.repo.ReadCustomer(ctx, customerID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return 0, ErrCustomerNotFound
		}
		return 0, err
	}
	policy, err := s.repo.ReadPolicy(ctx, policyID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return 0, ErrPolicyNotFound
		}
		return 0, err
	}

	assignment := models.Assignment{
		CustomerID:    customerID,
		PolicyID:      policyID,
		StartDate:     startDate,
		EndDate:       startDate.AddDate(0, policy.DurationMonths, 0),
		Status:        "ACTIVE",
		PremiumAmount: policy.PremiumAmount,
	}
	id, err := s.repo.CreateAssignment(ctx, assignment)
	if err != nil {
		// Клиент или полис могли быть удалены между проверкой и вставкой.
		// Повторное чтение клиента определяет, какая из записей исчезла.
		if errors.Is(err, repository.ErrReferenceNotFound) {
			if _, readErr := s.repo.ReadCustomer(ctx, customerID); errors.Is(readErr, repository.ErrNotFound) {
				return 0, ErrCustomerNotFound
			}
			return 0, ErrPolicyNotFound
		}
		return 0, err
	}
	s.log.Info("assigned policy to customer",
		slog.Int("id", id),
		slog.Int("customer_id", customerID),
		slog.Int("policy_id", policyID))

	assignment.ID = id
	cacheKey := fmt.Sprintf("assignment:%d", id)
	if err := s.cache.Set(cacheKey, assignment, time.Hour); err != nil {
		s.log.Warn("failed to cache assignment", slog.String("key", cacheKey), slog.Any("err", err))
	}

	return id, nil
}

// Read возвращает оформление по ID, используя кеш или репозиторий.
func (s *AssignmentService) Read(ctx context.Context, id int) (*models.Assignment, error) {
	var result *models.Assignment
	cacheKey := fmt.Sprintf("assignment:%d", id)
	found, err := s.cache.Get(cacheKey, &result)
	if err != nil {
		return nil, err
	}
	if found {
		return result, nil
	}
	result, err = s.repo.ReadAssignment(ctx, id)
	if err != nil {
		return nil, err
	}

	if result != nil {
		if err := s.cache.Set(cacheKey, result, time.Hour); err != nil {
			s.log.Warn("failed to add to cache", slog.String("key", cacheKey), slog.Any("err", err))
		}
	}
	return result, nil
}

// List возвращает список всех оформлений.
func (s *AssignmentService) List(ctx context.Context) ([]*models.Assignment, error) {
	return s.repo.ListAssignments(ctx)
}
