// Package assign реализует HTTP-обработчик оформления полиса на клиента.
package assign

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"github.com/mikhailovdd/insurance-backend/internal/http/response"
	"github.com/mikhailovdd/insurance-backend/internal/lib/sl"
	assignment "github.com/mikhailovdd/insurance-backend/internal/services/assignment"
)

// Request — входные данные для оформления полиса.
type Request struct {
	CustomerID int    `json:"customer_id" validate:"required,gt=0"`
	PolicyID   int    `json:"policy_id" validate:"required,gt=0"`
	StartDate  string `json:"start_date" validate:"required,datetime=2006-01-02"`
}

// Handler обрабатывает запросы на оформление полиса.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики оформления полиса.
type Service interface {
	Assign(ctx context.Context, customerID, policyID int, startDate time.Time) (int, error)
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
// @Summary Оформление полиса
// @Description Оформляет страховой продукт на клиента. Срок действия считается от даты начала и длительности продукта.
// @Tags CustomerPolicies
// @Security BearerAuth
// @Accept  json
// @Produce  json
// @Param request body Request true "Данные оформления"
// @Success 201 {object} map[string]any "Полис оформлен"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 401 {object} response.ErrorResponse "Не авторизован"
// @Failure 404 {object} response.ErrorResponse "Клиент или продукт не найден"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/customer-policies [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.assignment.assign"

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

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		log.Error("failed to parse start date", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.Error("invalid start date"))
		return
	}

	id, err := h.service.Assign(r.Context(), req.CustomerID, req.PolicyID, startDate)
	if err != nil {
		switch {
		case errors.Is(err, assignment.ErrCustomerNotFound):
			log.Warn("customer not found", slog.Int("customer_id", req.CustomerID))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("customer not found"))
		case errors.Is(err, assignment.ErrPolicyNotFound):
			log.Warn("policy not found", slog.Int("policy_id", req.PolicyID))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("policy not found"))
		default:
			log.Error("failed to assign policy", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to assign policy"))
		}
		return
	}

	log.Info("policy assigned", slog.Int("id", id))
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, response.OKWithData(map[string]any{
		"id": id,
	}))
}
