// Package remove реализует HTTP-обработчик удаления клиента.
package remove

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/mikhailovdd/insurance-backend/internal/http/response"
	"github.com/mikhailovdd/insurance-backend/internal/lib/sl"
	customer "github.com/mikhailovdd/insurance-backend/internal/services/customer"
)

// Handler обрабатывает запросы на удаление клиента.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики удаления клиента.
type Service interface {
	Remove(ctx context.Context, id int) (int, error)
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Удаление клиента
// @Description Удаляет клиента по его идентификатору.
// @Tags Customers
// @Security BearerAuth
// @Produce  json
// @Param id path int true "ID клиента"
// @Success 200 {object} map[string]any "Количество удаленных записей"
// @Failure 401 {object} response.ErrorResponse "Не авторизован"
// @Failure 404 {object} response.ErrorResponse "Клиент не найден"
// @Failure 409 {object} response.ErrorResponse "На клиента оформлены полисы"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/customers/{id} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.customer.remove"

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

	count, err := h.service.Remove(r.Context(), id)
	if err != nil {
		if errors.Is(err, customer.ErrCustomerHasPolicies) {
			log.Warn("customer has assigned policies", slog.Int("id", id))
			w.WriteHeader(http.StatusConflict)
			render.JSON(w, r, response.Error("customer has assigned policies"))
			return
		}
		log.Error("failed to delete customer", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to delete customer"))
		return
	}
	if count == 0 {
		log.Warn("customer not found", slog.Int("id", id))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("customer not found"))
		return
	}

	log.Info("customer deleted", slog.Int("id", id))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"deleted_count": count,
	}))
}
