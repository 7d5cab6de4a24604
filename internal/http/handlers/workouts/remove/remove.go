// Package remove отменяет тренировку. Отменённая тренировка освобождает
// слот и остаётся в хранилище.
package remove

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"

	"github.com/cobusiness02/forgefyt/internal/collection"
	"github.com/cobusiness02/forgefyt/internal/http/middlewarectx"
	"github.com/cobusiness02/forgefyt/internal/http/response"
	"github.com/cobusiness02/forgefyt/internal/lib/sl"
	"github.com/cobusiness02/forgefyt/internal/models"
)

// Service описывает отмену тренировки.
type Service interface {
	Cancel(ctx context.Context, owner, id string) (*models.Workout, error)
}

// Handler обрабатывает отмену тренировки.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Отменить тренировку
// @Tags Workouts
// @Produce  json
// @Param id path string true "ID тренировки"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.ErrorResponse "Тренировка не найдена"
// @Router /workouts/{id} [delete]
// @Security BearerAuth
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.workouts.remove"

	id := chi.URLParam(r, "id")
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
		slog.String("workout_id", id),
	)

	owner := middlewarectx.UserIDFrom(r.Context())
	if owner == "" {
		log.Error("user id not found in context")
		response.Write(w, r, http.StatusUnauthorized, response.Unauthorized())
		return
	}

	if _, err := h.service.Cancel(r.Context(), owner, id); err != nil {
		if errors.Is(err, collection.ErrNotFound) {
			log.Warn("workout not found")
			response.Write(w, r, http.StatusNotFound, response.Error("Workout not found"))
			return
		}
		log.Error("failed to cancel workout", sl.Err(err))
		response.Write(w, r, http.StatusInternalServerError, response.Internal())
		return
	}

	log.Info("workout cancelled")
	response.Write(w, r, http.StatusOK, response.OKWithMessage("Workout cancelled successfully", nil))
}
