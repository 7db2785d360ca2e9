// Package remove реализует HTTP-обработчик удаления страхового продукта.
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
	policy "github.com/mikhailovdd/insurance-backend/internal/services/policy"
)

// Handler обрабатывает запросы на удаление страхового продукта.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики удаления продукта.
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
// @Summary Удаление страхового продукта
// @Description Удаляет страховой продукт по его идентификатору.
// @Tags Policies
// @Security BearerAuth
// @Produce  json
// @Param id path int true "ID продукта"
// @Success 200 {object} map[string]any "Количество удаленных записей"
// @Failure 401 {object} response.ErrorResponse "Не авторизован"
// @Failure 404 {object} response.ErrorResponse "Продукт не найден"
// @Failure 409 {object} response.ErrorResponse "Продукт оформлен на клиентов"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/policies/{id} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.policy.remove"

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
		if errors.Is(err, policy.ErrPolicyAssigned) {
			log.Warn("policy is assigned to customers", slog.Int("id", id))
			w.WriteHeader(http.StatusConflict)
			render.JSON(w, r, response.Error("policy is assigned to customers"))
			return
		}
		log.Error("failed to delete policy", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to delete policy"))
		return
	}
	if count == 0 {
		log.Warn("policy not found", slog.Int("id", id))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("policy not found"))
		return
	}

	log.Info("policy deleted", slog.Int("id", id))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"deleted_count": count,
	}))
}
