// Package update обрабатывает изменение тренировки, в том числе
// отметку о завершении с оценкой и отзывом.
package update

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-playground/validator"

	"github.com/cobusiness02/forgefyt/internal/collection"
	"github.com/cobusiness02/forgefyt/internal/http/bind"
	"github.com/cobusiness02/forgefyt/internal/http/middlewarectx"
	"github.com/cobusiness02/forgefyt/internal/http/response"
	"github.com/cobusiness02/forgefyt/internal/lib/sl"
	"github.com/cobusiness02/forgefyt/internal/lib/validate"
	"github.com/cobusiness02/forgefyt/internal/models"
)

// Service описывает изменение тренировки.
type Service interface {
	Update(ctx context.Context, owner, id string, patch models.WorkoutPatch) (*models.Workout, error)
}

// Handler обрабатывает изменение тренировки.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service, validate: validate.New()}
}

// ServeHTTP godoc
// @Summary Изменить тренировку
// @Description При переходе в completed фиксируется время завершения
// @Tags Workouts
// @Accept  json
// @Produce  json
// @Param id path string true "ID тренировки"
// @Param request body models.WorkoutPatch true "Изменяемые поля"
// @Success 200 {object} response.Response{data=models.Workout}
// @Failure 400 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 404 {object} response.ErrorResponse "Тренировка не найдена"
// @Failure 409 {object} response.ErrorResponse "Слот занят"
// @Router /workouts/{id} [put]
// @Security BearerAuth
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.workouts.update"

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

	var patch models.WorkoutPatch
	if !bind.JSON(w, r, log, h.validate, &patch) {
		return
	}

	workout, err := h.service.Update(r.Context(), owner, id, patch)
	if err != nil {
		var verr *collection.ValidationError
		switch {
		case errors.Is(err, collection.ErrNotFound):
			log.Warn("workout not found")
			response.Write(w, r, http.StatusNotFound, response.Error("Workout not found"))
		case errors.Is(err, collection.ErrConflict):
			log.Warn("slot taken")
			response.Write(w, r, http.StatusConflict, response.ErrorWithMessage("Scheduling conflict", "A workout is already scheduled at this time"))
		case errors.As(err, &verr):
			log.Warn("workout rejected", sl.Err(err))
			response.Write(w, r, http.StatusBadRequest, response.ValidationFailed(verr))
		default:
			log.Error("failed to update workout", sl.Err(err))
			response.Write(w, r, http.StatusInternalServerError, response.Internal())
		}
		return
	}

	log.Info("workout updated", slog.String("status", string(workout.Status)))
	response.Write(w, r, http.StatusOK, response.OKWithMessage("Workout updated successfully", workout))
}
