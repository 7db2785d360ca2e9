// Package create реализует HTTP-обработчик добавления страхового продукта.
package create

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"github.com/mikhailovdd/insurance-backend/internal/http/response"
	"github.com/mikhailovdd/insurance-backend/internal/lib/sl"
	"github.com/mikhailovdd/insurance-backend/internal/models"
)

// Request — входные данные для добавления страхового продукта.
type Request struct {
	PolicyName     string  `json:"policy_name" validate:"required"`
	PolicyType     string  `json:"policy_type" validate:"required"`
	PremiumAmount  float64 `json:"premium_amount" validate:"required,gt=0"`
	DurationMonths int     `json:"duration_months" validate:"required,gt=0"`
	CoverageAmount float64 `json:"coverage_amount" validate:"required,gt=0"`
}

// Handler обрабатывает запросы на добавление страхового продукта.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики добавления продукта.
type Service interface {
	Create(ctx context.Context, policy models.Policy) (int, error)
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
// @Summary Добавление страхового продукта
// @Description Создает новый страховой продукт (тарифный план).
// @Tags Policies
// @Security BearerAuth
// @Accept  json
// @Produce  json
// @Param request body Request true "Данные продукта"
// @Success 201 {object} map[string]any "Продукт создан"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 401 {object} response.ErrorResponse "Не авторизован"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/policies [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.policy.create"

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

	id, err := h.service.Create(r.Context(), models.Policy{
		PolicyName:     req.PolicyName,
		PolicyType:     req.PolicyType,
		PremiumAmount:  req.PremiumAmount,
		DurationMonths: req.DurationMonths,
		CoverageAmount: req.CoverageAmount,
	})
	if err != nil {
		log.Error("failed to create policy", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to create policy"))
		return
	}

	log.Info("policy created", slog.Int("id", id))
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, response.OKWithData(map[string]any{
		"id": id,
	}))
}
