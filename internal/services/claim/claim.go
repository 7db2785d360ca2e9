// Package services содержит бизнес-логику регистрации страховых требований.
package services

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/mikhailovdd/insurance-backend/internal/models"
	"github.com/mikhailovdd/insurance-backend/internal/rabbitmq"
	"github.com/mikhailovdd/insurance-backend/internal/storage/repository"
)

// ErrAssignmentNotFound возвращается при регистрации требования
// по несуществующему оформлению полиса.
var ErrAssignmentNotFound = errors.New("customer policy not found")

// ClaimRepository определяет методы для работы с требованиями в хранилище.
type ClaimRepository interface {
	// CreateClaim добавляет новое требование и возвращает его ID.
	CreateClaim(ctx context.Context, claim models.Claim) (int, error)
	// ListClaims возвращает список всех требований.
	ListClaims(ctx context.Context) ([]*models.Claim, error)
	// ListClaimsByAssignment возвращает требования по оформлению полиса.
	ListClaimsByAssignment(ctx context.Context, assignmentID int) ([]*models.Claim, error)
	// ReadAssignment возвращает оформление по ID.
	ReadAssignment(ctx context.Context, id int) (*models.Assignment, error)
	// ReadCustomer возвращает клиента по ID.
	ReadCustomer(ctx context.Context, id int) (*models.Customer, error)
	// ReadPolicy возвращает страховой продукт по ID.
	ReadPolicy(ctx context.Context, id int) (*models.Policy, error)
}

// Publisher публикует сообщения для сервиса уведомлений.
type Publisher interface {
	Publish(routingKey string, body []byte) error
}

// ClaimService реализует бизнес-логику регистрации требований.
type ClaimService struct {
	repo      ClaimRepository
	publisher Publisher
	log       *slog.Logger
}

// NewClaimService создает новый экземпляр ClaimService.
func NewClaimService(repo ClaimRepository, publisher Publisher, log *slog.Logger) *ClaimService {
	return &ClaimService{repo: repo, publisher: publisher, log: log}
}

// Create регистрирует новое требование по оформленному полису.
// Номер требования генерируется сервером. После сохранения публикуется
// событие для сервиса уведомлений; ошибка публикации не отменяет регистрацию.
func (s *ClaimService) Create(ctx context.Context, assignmentID int, amount float64, description string) (*models.Claim, error) {
	assignment, err := s.repo.ReadAssignment(ctx, assignmentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAssignmentNotFound
		}
		return nil, err
	}

	claim := models.Claim{
		Reference:    uuid.NewString(),
		AssignmentID: assignmentID,
		ClaimAmount:  amount,
		ClaimDate:    time.Now().UTC(),
		ClaimStatus:  "REGISTERED",
		Description:  description,
	}
	id, err := s.repo.CreateClaim(ctx, claim)
	if err != nil {
		if errors.Is(err, repository.ErrReferenceNotFound) {
			return nil, ErrAssignmentNotFound
		}
		return nil, err
	}
	claim.ID = id
	s.log.Info("registered new claim", slog.Int("id", id), slog.String("reference", claim.Reference))

	s.publishEvent(ctx, assignment, claim)

	return &claim, nil
}

// List возвращает список всех требований.
func (s *ClaimService) List(ctx context.Context) ([]*models.Claim, error) {
	return s.repo.ListClaims(ctx)
}

// ListByAssignment возвращает требования по оформлению полиса.
func (s *ClaimService) ListByAssignment(ctx context.Context, assignmentID int) ([]*models.Claim, error) {
	return s.repo.ListClaimsByAssignment(ctx, assignmentID)
}

func (s *ClaimService) publishEvent(ctx context.Context, assignment *models.Assignment, claim models.Claim) {
	customer, err := s.repo.ReadCustomer(ctx, assignment.CustomerID)
	if err != nil {
		s.log.Warn("failed to read customer for claim event", slog.Any("err", err))
		return
	}
	policy, err := s.repo.ReadPolicy(ctx, assignment.PolicyID)
	if err != nil {
		s.log.Warn("failed to read policy for claim event", slog.Any("err", err))
		return
	}

	event := models.ClaimEvent{
		Reference:     claim.Reference,
		CustomerName:  customer.FirstName + " " + customer.LastName,
		CustomerEmail: customer.Email,
		PolicyName:    policy.PolicyName,
		ClaimAmount:   claim.ClaimAmount,
		ClaimStatus:   claim.ClaimStatus,
	}
	body, err := json.Marshal(event)
	if err != nil {
		s.log.Warn("failed to marshal claim event", slog.Any("err", err))
		return
	}
	if err := s.publisher.Publish(rabbitmq.ClaimRoutingKey, body); err != nil {
		s.log.Warn("failed to publish claim event", slog.String("reference", claim.Reference), slog.Any("err", err))
	}
}
