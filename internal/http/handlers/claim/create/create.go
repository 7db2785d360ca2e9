// Package create реализует HTTP-обработчик регистрации страхового требования.
package create

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"github.com/mikhailovdd/insurance-backend/internal/http/response"
	"github.com/mikhailovdd/insurance-backend/internal/lib/sl"
	"github.com/mikhailovdd/insurance-backend/internal/models"
	claim "github.com/mikhailovdd/insurance-backend/internal/services/claim"
)

// Request — входные данные для регистрации требования.
// Номер требования клиент не передает, он генерируется сервером.
type Request struct {
	CustomerPolicyID int     `json:"customer_policy_id" validate:"required,gt=0"`
	ClaimAmount      float64 `json:"claim_amount" validate:"required,gt=0"`
	Description      string  `json:"description"`
}

// Handler обрабатывает запросы на регистрацию требования.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики регистрации требования.
type Service interface {
	Create(ctx context.Context, assignmentID int, amount float64, description string) (*models.Claim, error)
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Регистрация страхового требования
// @Description Регистрирует требование по оформленному полису и уведомляет клиента по email.
// @Tags Claims
// @Security BearerAuth
// @Accept  json
// @Produce  json
// @Param request body Request true "Данные требования"
// @Success 201 {object} map[string]any "Требование зарегистрировано"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 401 {object} response.ErrorResponse "Не авторизован"
// @Failure 404 {object} response.ErrorResponse "Оформление не найдено"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/claims [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.claim.create"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded", slog.Any("request", req))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	created, err := h.service.Create(r.Context(), req.CustomerPolicyID, req.ClaimAmount, req.Description)
	if err != nil {
		if errors.Is(err, claim.ErrAssignmentNotFound) {
			log.Warn("customer policy not found", slog.Int("customer_policy_id", req.CustomerPolicyID))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("customer policy not found"))
			return
		}
		log.Error("failed to register claim", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to register claim"))
		return
	}

	log.Info("claim registered", slog.Int("id", created.ID), slog.String("reference", created.Reference))
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, response.OKWithData(map[string]any{
		"claim": created,
	}))
}
