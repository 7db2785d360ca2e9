// Package list реализует HTTP-обработчик получения списка клиентов.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/mikhailovdd/insurance-backend/internal/http/response"
	"github.com/mikhailovdd/insurance-backend/internal/lib/sl"
	"github.com/mikhailovdd/insurance-backend/internal/models"
)

// Handler обрабатывает запросы на получение списка клиентов.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики получения списка клиентов.
type Service interface {
	List(ctx context.Context) ([]*models.Customer, error)
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Список клиентов
// @Description Возвращает всех клиентов страховой компании.
// @Tags Customers
// @Security BearerAuth
// @Produce  json
// @Success 200 {object} map[string]any "Список клиентов"
// @Failure 401 {object} response.ErrorResponse "Не авторизован"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/customers [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.customer.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	customers, err := h.service.List(r.Context())
	if err != nil {
		log.Error("failed to list customers", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to list customers"))
		return
	}

	log.Info("customers listed", slog.Int("count", len(customers)))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"customers": customers,
	}))
}
