// Package progress возвращает отчёт о прогрессе клиента за период.
package progress

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
	"github.com/cobusiness02/forgefyt/internal/lib/period"
	"github.com/cobusiness02/forgefyt/internal/lib/sl"
	"github.com/cobusiness02/forgefyt/internal/services/clients"
)

// Service описывает расчёт прогресса клиента.
type Service interface {
	Progress(ctx context.Context, owner, id string, p period.Period) (*clients.Progress, error)
}

// Response отчёт о прогрессе.
type Response struct {
	Success bool             `json:"success" example:"true"`
	Period  period.Period    `json:"period" example:"month"`
	Data    clients.Progress `json:"data"`
}

// Handler обрабатывает отчёт о прогрессе.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Прогресс клиента
// @Description Показатели по завершенным тренировкам за период и две последние сессии
// @Tags Clients
// @Produce  json
// @Param id path string true "ID клиента"
// @Param period query string false "week, month, quarter или year" default(month)
// @Success 200 {object} Response
// @Failure 400 {object} response.ErrorResponse "Неизвестный период"
// @Failure 404 {object} response.ErrorResponse "Клиент не найден"
// @Router /clients/{id}/progress [get]
// @Security BearerAuth
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.clients.progress"

	id := chi.URLParam(r, "id")
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
		slog.String("client_id", id),
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

	progress, err := h.service.Progress(r.Context(), owner, id, p)
	if err != nil {
		if errors.Is(err, collection.ErrNotFound) {
			log.Warn("client not found")
			response.Write(w, r, http.StatusNotFound, response.Error("Client not found"))
			return
		}
		log.Error("failed to compute progress", sl.Err(err))
		response.Write(w, r, http.StatusInternalServerError, response.Internal())
		return
	}

	response.Write(w, r, http.StatusOK, Response{Success: true, Period: p, Data: *progress})
}
