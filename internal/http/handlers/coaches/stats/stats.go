// Package stats возвращает показатели тренера за отчётный период.
package stats

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"

	"github.com/cobusiness02/forgefyt/internal/collection"
	"github.com/cobusiness02/forgefyt/internal/http/middlewarectx"
	"github.com/cobusiness02/forgefyt/internal/http/response"
	"github.com/cobusiness02/forgefyt/internal/lib/period"
	"github.com/cobusiness02/forgefyt/internal/lib/sl"
	"github.com/cobusiness02/forgefyt/internal/services/coaches"
)

// Service описывает расчёт показателей.
type Service interface {
	Stats(ctx context.Context, owner string, p period.Period) (*coaches.Stats, error)
}

// Response показатели за период.
type Response struct {
	Success bool          `json:"success" example:"true"`
	Period  period.Period `json:"period" example:"month"`
	Data    coaches.Stats `json:"data"`
}

// Handler обрабатывает запрос показателей.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Показатели тренера
// @Description Выручка считается как число завершенных тренировок, умноженное на ставку
// @Tags Coaches
// @Produce  json
// @Param period query string false "week, month, quarter или year" default(month)
// @Success 200 {object} Response
// @Failure 400 {object} response.ErrorResponse "Неизвестный период"
// @Failure 404 {object} response.ErrorResponse "Тренер не найден"
// @Router /coaches/stats [get]
// @Security BearerAuth
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.coaches.stats"

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

	p, err := period.Parse(r.URL.Query().Get("period"))
	if err != nil {
		log.Warn("bad period", sl.Err(err))
		response.Write(w, r, http.StatusBadRequest, response.InvalidField("period", "must be one of: week, month, quarter, year"))
		return
	}

	st, err := h.service.Stats(r.Context(), owner, p)
	if err != nil {
		if errors.Is(err, collection.ErrNotFound) {
			log.Warn("coach not found", slog.String("user_id", owner))
			response.Write(w, r, http.StatusNotFound, response.Error("Coach not found"))
			return
		}
		log.Error("failed to compute stats", sl.Err(err))
		response.Write(w, r, http.StatusInternalServerError, response.Internal())
		return
	}

	response.Write(w, r, http.StatusOK, Response{Success: true, Period: p, Data: *st})
}
