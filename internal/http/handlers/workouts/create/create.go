// Package create обрабатывает планирование тренировки.
//
// Слот (дата и время начала) у тренера может быть занят только одной
// неотменённой тренировкой, иначе ответ 409.
package create

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

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

// Service описывает планирование тренировки.
type Service interface {
	Create(ctx context.Context, owner string, req models.WorkoutRequest) (*models.Workout, error)
}

// Handler обрабатывает планирование тренировки.
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
// @Summary Запланировать тренировку
// @Tags Workouts
// @Accept  json
// @Produce  json
// @Param request body models.WorkoutRequest true "Данные тренировки"
// @Success 201 {object} response.Response{data=models.Workout}
// @Failure 400 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 409 {object} response.ErrorResponse "Слот занят"
// @Router /workouts [post]
// @Security BearerAuth
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.workouts.create"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	owner := middlewarectx.UserIDFrom(r.Context())
	if owner == "" {
		log.Error("user id not found in context")
		response.Write(w, r, http.StatusUnauthorized, response.Unauthorized())
		return
	}

	var req models.WorkoutRequest
	if !bind.JSON(w, r, log, h.validate, &req) {
		return
	}

	workout, err := h.service.Create(r.Context(), owner, req)
	if err != nil {
		var verr *collection.ValidationError
		switch {
		case errors.Is(err, collection.ErrConflict):
			log.Warn("slot taken", slog.String("date", req.Date), slog.String("time", req.Time))
			response.Write(w, r, http.StatusConflict, response.ErrorWithMessage("Scheduling conflict", "A workout is already scheduled at this time"))
		case errors.As(err, &verr):
			log.Warn("workout rejected", sl.Err(err))
			response.Write(w, r, http.StatusBadRequest, response.ValidationFailed(verr))
		default:
			log.Error("failed to create workout", sl.Err(err))
			response.Write(w, r, http.StatusInternalServerError, response.Internal())
		}
		return
	}

	log.Info("workout created", slog.String("workout_id", workout.ID))
	response.Write(w, r, http.StatusCreated, response.OKWithMessage("Workout created successfully", workout))
}
