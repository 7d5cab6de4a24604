// Package calendar возвращает тренировки месяца, сгруппированные по дням.
package calendar

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-playground/validator"

	"github.com/cobusiness02/forgefyt/internal/http/bind"
	"github.com/cobusiness02/forgefyt/internal/http/middlewarectx"
	"github.com/cobusiness02/forgefyt/internal/http/response"
	"github.com/cobusiness02/forgefyt/internal/lib/sl"
	"github.com/cobusiness02/forgefyt/internal/lib/validate"
	"github.com/cobusiness02/forgefyt/internal/services/workouts"
)

// Service описывает построение календаря.
type Service interface {
	Calendar(ctx context.Context, owner string, p workouts.CalendarParams) (*workouts.Calendar, error)
}

// Response календарь месяца.
type Response struct {
	Success bool `json:"success" example:"true"`
	workouts.Calendar
}

// Handler обрабатывает календарь.
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
// @Summary Календарь тренировок
// @Description Без параметров возвращает текущий месяц
// @Tags Workouts
// @Produce  json
// @Param month query int false "Месяц 1-12"
// @Param year query int false "Год 2020-2030"
// @Success 200 {object} Response
// @Failure 400 {object} response.ErrorResponse "Ошибка валидации"
// @Router /workouts/calendar [get]
// @Security BearerAuth
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.workouts.calendar"

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

	var params workouts.CalendarParams
	if !bind.Query(w, r, log, h.validate, &params) {
		return
	}

	cal, err := h.service.Calendar(r.Context(), owner, params)
	if err != nil {
		log.Error("failed to build calendar", sl.Err(err))
		response.Write(w, r, http.StatusInternalServerError, response.Internal())
		return
	}

	response.Write(w, r, http.StatusOK, Response{Success: true, Calendar: *cal})
}
