// Package listbyassignment реализует HTTP-обработчик получения платежей
// по конкретному оформленному полису.
package listbyassignment

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/mikhailovdd/insurance-backend/internal/http/response"
	"github.com/mikhailovdd/insurance-backend/internal/lib/sl"
	"github.com/mikhailovdd/insurance-backend/internal/models"
)

// Handler обрабатывает запросы на получение платежей по оформлению полиса.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики получения платежей по оформлению.
type Service interface {
	ListByAssignment(ctx context.Context, assignmentID int) ([]*models.Payment, error)
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Платежи по оформленному полису
// @Description Возвращает платежи, зарегистрированные по конкретному оформлению полиса.
// @Tags Payments
// @Security BearerAuth
// @Produce  json
// @Param id path int true "ID оформления"
// @Success 200 {object} map[string]any "Список платежей"
// @Failure 401 {object} response.ErrorResponse "Не авторизован"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/customer-policies/{id}/payments [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.payment.listbyassignment"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		log.Error("invalid id format", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid id"))
		return
	}

	payments, err := h.service.ListByAssignment(r.Context(), id)
	if err != nil {
		log.Error("failed to list payments", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to list payments"))
		return
	}

	log.Info("payments listed", slog.Int("customer_policy_id", id), slog.Int("count", len(payments)))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"payments": payments,
	}))
}
