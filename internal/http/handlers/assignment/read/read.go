// Package read реализует HTTP-обработчик получения оформленного полиса по ID.
package read

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
	"github.com/mikhailovdd/insurance-backend/internal/models"
	"github.com/mikhailovdd/insurance-backend/internal/storage/repository"
)

// Handler обрабатывает запросы на получение оформленного полиса по ID.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики чтения оформления.
type Service interface {
	Read(ctx context.Context, id int) (*models.Assignment, error)
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Получение оформленного полиса
// @Description Возвращает запись об оформлении полиса по идентификатору.
// @Tags CustomerPolicies
// @Security BearerAuth
// @Produce  json
// @Param id path int true "ID оформления"
// @Success 200 {object} map[string]any "Данные оформления"
// @Failure 401 {object} response.ErrorResponse "Не авторизован"
// @Failure 404 {object} response.ErrorResponse "Оформление не найдено"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/customer-policies/{id} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.assignment.read"

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

	assignment, err := h.service.Read(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			log.Warn("customer policy not found", slog.Int("id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("customer policy not found"))
			return
		}
		log.Error("failed to read customer policy", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to read customer policy"))
		return
	}

	log.Info("customer policy read", slog.Int("id", id))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"customer_policy": assignment,
	}))
}
