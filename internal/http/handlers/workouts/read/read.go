// Package read возвращает тренировку тренера по идентификатору.
package read

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

// Service описывает чтение тренировки.
type Service interface {
	Get(ctx context.Context, owner, id string) (*models.Workout, error)
}

// Handler обрабатывает чтение тренировки.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Тренировка по идентификатору
// @Tags Workouts
// @Produce  json
// @Param id path string true "ID тренировки"
// @Success 200 {object} response.Response{data=models.Workout}
// @Failure 404 {object} response.ErrorResponse "Тренировка не найдена"
// @Router /workouts/{id} [get]
// @Security BearerAuth
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.workouts.read"

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

	workout, err := h.service.Get(r.Context(), owner, id)
	if err != nil {
		if errors.Is(err, collection.ErrNotFound) {
			log.Warn("workout not found")
			response.Write(w, r, http.StatusNotFound, response.Error("Workout not found"))
			return
		}
		log.Error("failed to read workout", sl.Err(err))
		response.Write(w, r, http.StatusInternalServerError, response.Internal())
		return
	}

	response.Write(w, r, http.StatusOK, response.OK(workout))
}
