// Package services содержит бизнес-логику для управления страховыми продуктами и их кешированием.
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

// ErrPolicyAssigned возвращается при удалении страхового продукта,
// который оформлен хотя бы на одного клиента.
var ErrPolicyAssigned = errors.New("policy is assigned to customers")

// PolicyRepository определяет методы для работы с полисами в хранилище.
type PolicyRepository interface {
	// CreatePolicy добавляет новый страховой продукт и возвращает его ID.
	CreatePolicy(ctx context.Context, policy models.Policy) (int, error)
	// ReadPolicy возвращает страховой продукт по ID.
	ReadPolicy(ctx context.Context, id int) (*models.Policy, error)
	// ListPolicies возвращает список всех страховых продуктов.
	ListPolicies(ctx context.Context) ([]*models.Policy, error)
	// RemovePolicy удаляет страховой продукт по ID и возвращает количество удалённых записей.
	RemovePolicy(ctx context.Context, id int) (int, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	// Get пытается получить значение из кеша по ключу.
	Get(key string, result any) (bool, error)
	// Set сохраняет значение в кеш с временем жизни.
	Set(key string, value any, expiration time.Duration) error
	// Invalidate удаляет значение из кеша по ключу.
	Invalidate(key string) error
}

// PolicyService реализует бизнес-логику работы со страховыми продуктами, включая кеширование.
type PolicyService struct {
	repo  PolicyRepository
	cache Cache
	log   *slog.Logger
}

// NewPolicyService создает новый экземпляр PolicyService.
func NewPolicyService(repo PolicyRepository, cache Cache, log *slog.Logger) *PolicyService {
	return &PolicyService{repo: repo, cache: cache, log: log}
}

// Create создает новый страховой продукт, кеширует его и возвращает ID.
func (s *PolicyService) Create(ctx context.Context, policy models.Policy) (int, error) {
	id, err := s.repo.CreatePolicy(ctx, policy)
	if err != nil {
		return 0, err
	}
	s.log.Info("created new policy", slog.Int("id", id))

	policy.ID = id
	cacheKey := fmt.Sprintf("policy:%d", id)
	if err := s.cache.Set(cacheKey, policy, time.Hour); err != nil {
		s.log.Warn("failed to cache policy", slog.String("key", cacheKey), slog.Any("err", err))
	}

	return id, nil
}

// Read возвращает страховой продукт по ID, используя кеш или репозиторий.
func (s *PolicyService) Read(ctx context.Context, id int) (*models.Policy, error) {
	var result *models.Policy
	cacheKey := fmt.Sprintf("policy:%d", id)
	found, err := s.cache.Get(cacheKey, &result)
	if err != nil {
		return nil, err
	}
	if found {
		return result, nil
	}
	result, err = s.repo.ReadPolicy(ctx, id)
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

// List возвращает список всех страховых продуктов.
func (s *PolicyService) List(ctx context.Context) ([]*models.Policy, error) {
	return s.repo.ListPolicies(ctx)
}

// Remove удаляет страховой продукт по ID и инвалидирует кеш.
// Оформленный на клиентов продукт удалению не подлежит.
func (s *PolicyService) Remove(ctx context.Context, id int) (int, error) {
	cacheKey := fmt.Sprintf("policy:%d", id)
	if err := s.cache.Invalidate(cacheKey); err != nil {
		s.log.Warn("failed to remove from cache", slog.String("key", cacheKey), slog.Any("err", err))
	}

	count, err := s.repo.RemovePolicy(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrReferenceNotFound) {
			return 0, ErrPolicyAssigned
		}
		return 0, err
	}
	return count, nil
}
