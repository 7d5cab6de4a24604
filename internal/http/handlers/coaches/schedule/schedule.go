// Package schedule возвращает недельное расписание тренера.
package schedule

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"

	"github.com/cobusiness02/forgefyt/internal/collection"
	"github.com/cobusiness02/forgefyt/internal/http/middlewarectx"
	"github.com/cobusiness02/forgefyt/internal/http/response"
	"github.com/cobusiness02/forgefyt/internal/lib/sl"
	"github.com/cobusiness02/forgefyt/internal/models"
)

// Service описывает чтение расписания.
type Service interface {
	Schedule(ctx context.Context, owner string) (models.Schedule, error)
}

// Data расписание в ответе.
type Data struct {
	Schedule models.Schedule `json:"schedule"`
}

// Handler обрабатывает чтение расписания.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Расписание тренера
// @Tags Coaches
// @Produce  json
// @Success 200 {object} response.Response{data=Data}
// @Failure 404 {object} response.ErrorResponse "Тренер не найден"
// @Router /coaches/schedule [get]
// @Security BearerAuth
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.coaches.schedule"

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

	sched, err := h.service.Schedule(r.Context(), owner)
	if err != nil {
		if errors.Is(err, collection.ErrNotFound) {
			log.Warn("coach not found", slog.String("user_id", owner))
			response.Write(w, r, http.StatusNotFound, response.Error("Coach not found"))
			return
		}
		log.Error("failed to read schedule", sl.Err(err))
		response.Write(w, r, http.StatusInternalServerError, response.Internal())
		return
	}

	response.Write(w, r, http.StatusOK, response.OK(Data{Schedule: sched}))
}
