// Package create реализует HTTP-обработчик регистрации платежа по оформленному полису.
package create

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
	"github.com/mikhailovdd/insurance-backend/internal/models"
	payment "github.com/mikhailovdd/insurance-backend/internal/services/payment"
)

// Request — входные данные для регистрации платежа.
type Request struct {
	CustomerPolicyID int     `json:"customer_policy_id" validate:"required,gt=0"`
	Amount           float64 `json:"amount" validate:"required,gt=0"`
	PaymentDate      string  `json:"payment_date" validate:"required,datetime=2006-01-02"`
	PaymentMode      string  `json:"payment_mode" validate:"required"`
	PaymentStatus    string  `json:"payment_status" validate:"required"`
}

// Handler обрабатывает запросы на регистрацию платежа.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики регистрации платежа.
type Service interface {
	Create(ctx context.Context, payment models.Payment) (int, error)
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
// @Summary Регистрация платежа
// @Description Регистрирует платеж по оформленному полису.
// @Tags Payments
// @Security BearerAuth
// @Accept  json
// @Produce  json
// @Param request body Request true "Данные платежа"
// @Success 201 {object} map[string]any "Платеж зарегистрирован"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 401 {object} response.ErrorResponse "Не авторизован"
// @Failure 404 {object} response.ErrorResponse "Оформление не найдено"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/payments [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.payment.create"

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

	paymentDate, err := time.Parse("2006-01-02", req.PaymentDate)
	if err != nil {
		log.Error("failed to parse payment date", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.Error("invalid payment date"))
		return
	}

	id, err := h.service.Create(r.Context(), models.Payment{
		AssignmentID:  req.CustomerPolicyID,
		Amount:        req.Amount,
		PaymentDate:   paymentDate,
		PaymentMode:   req.PaymentMode,
		PaymentStatus: req.PaymentStatus,
	})
	if err != nil {
		if errors.Is(err, payment.ErrAssignmentNotFound) {
			log.Warn("customer policy not found", slog.Int("customer_policy_id", req.CustomerPolicyID))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("customer policy not found"))
			return
		}
		log.Error("failed to record payment", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to record payment"))
		return
	}

	log.Info("payment recorded", slog.Int("id", id))
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, response.OKWithData(map[string]any{
		"id": id,
	}))
}
