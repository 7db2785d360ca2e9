// Package list реализует HTTP-обработчик получения списка оформленных полисов.
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

// Handler обрабатывает запросы на получение списка оформленных полисов.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики получения списка оформлений.
type Service interface {
	List(ctx context.Context) ([]*models.Assignment, error)
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Список оформленных полисов
// @Description Возвращает все записи об оформлении полисов.
// @Tags CustomerPolicies
// @Security BearerAuth
// @Produce  json
// @Success 200 {object} map[string]any "Список оформлений"
// @Failure 401 {object} response.ErrorResponse "Не авторизован"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/customer-policies [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.assignment.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	assignments, err := h.service.List(r.Context())
	if err != nil {
		log.Error("failed to list customer policies", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to list customer policies"))
		return
	}

	log.Info("customer policies listed", slog.Int("count", len(assignments)))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"customer_policies": assignments,
	}))
}
