// Package scheduleupdate заменяет недельное расписание тренера.
package scheduleupdate

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"

	"github.com/cobusiness02/forgefyt/internal/collection"
	"github.com/cobusiness02/forgefyt/internal/http/middlewarectx"
	"github.com/cobusiness02/forgefyt/internal/http/response"
	"github.com/cobusiness02/forgefyt/internal/lib/sl"
	"github.com/cobusiness02/forgefyt/internal/models"
	"github.com/cobusiness02/forgefyt/internal/services/coaches"
)

const msgInvalidSchedule = "Invalid schedule format"

// Service описывает замену расписания.
type Service interface {
	UpdateSchedule(ctx context.Context, owner string, schedule models.Schedule) (models.Schedule, error)
}

// Request тело запроса. Каждый день должен содержать start, end и available.
type Request struct {
	Schedule models.Schedule `json:"schedule"`
}

// Data расписание в ответе.
type Data struct {
	Schedule models.Schedule `json:"schedule"`
}

// Handler обрабатывает замену расписания.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Заменить расписание тренера
// @Tags Coaches
// @Accept  json
// @Produce  json
// @Param request body Request true "Недельное расписание"
// @Success 200 {object} response.Response{data=Data}
// @Failure 400 {object} response.ErrorResponse "Неверный формат расписания"
// @Failure 404 {object} response.ErrorResponse "Тренер не найден"
// @Router /coaches/schedule [put]
// @Security BearerAuth
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.coaches.scheduleupdate"

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

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("failed to decode schedule", sl.Err(err))
		response.Write(w, r, http.StatusBadRequest, response.Error(msgInvalidSchedule))
		return
	}

	sched, err := h.service.UpdateSchedule(r.Context(), owner, req.Schedule)
	if err != nil {
		switch {
		case errors.Is(err, coaches.ErrInvalidSchedule):
			log.Warn("invalid schedule", sl.Err(err))
			response.Write(w, r, http.StatusBadRequest, response.Error(msgInvalidSchedule))
		case errors.Is(err, collection.ErrNotFound):
			log.Warn("coach not found", slog.String("user_id", owner))
			response.Write(w, r, http.StatusNotFound, response.Error("Coach not found"))
		default:
			log.Error("failed to update schedule", sl.Err(err))
			response.Write(w, r, http.StatusInternalServerError, response.Internal())
		}
		return
	}

	log.Info("schedule updated", slog.Int("days", len(sched)))
	response.Write(w, r, http.StatusOK, response.OKWithMessage("Schedule updated successfully", Data{Schedule: sched}))
}
