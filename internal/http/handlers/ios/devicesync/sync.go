// Package devicesync отдаёт iOS-клиенту изменения с момента последней
// синхронизации.
package devicesync

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/middleware"

	"github.com/cobusiness02/forgefyt/internal/http/middlewarectx"
	"github.com/cobusiness02/forgefyt/internal/http/response"
	"github.com/cobusiness02/forgefyt/internal/lib/sl"
	"github.com/cobusiness02/forgefyt/internal/services/devices"
)

// Service описывает сбор изменений.
type Service interface {
	Sync(ctx context.Context, userID string, since time.Time) (*devices.SyncData, error)
}

// Response изменения и время следующей синхронизации.
type Response struct {
	Success  bool             `json:"success" example:"true"`
	Data     devices.SyncData `json:"data"`
	NextSync time.Time        `json:"nextSync"`
}

// Handler обрабатывает синхронизацию.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Синхронизация iOS-клиента
// @Description Без lastSync возвращаются все записи пользователя
// @Tags iOS
// @Produce  json
// @Param lastSync query string false "Время последней синхронизации RFC 3339"
// @Success 200 {object} Response
// @Failure 400 {object} response.ErrorResponse "Неверный формат lastSync"
// @Router /ios/sync [get]
// @Security BearerAuth
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.ios.sync"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	userID := middlewarectx.UserIDFrom(r.Context())
	if userID == "" {
		log.Error("user id not found in context")
		response.Write(w, r, http.StatusUnauthorized, response.Unauthorized())
		return
	}

	var since time.Time
	if raw := r.URL.Query().Get("lastSync"); raw != "" {
		t, err := time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			log.Warn("bad lastSync", sl.Err(err))
			response.Write(w, r, http.StatusBadRequest, response.InvalidField("lastSync", "must be an ISO 8601 timestamp"))
			return
		}
		since = t
	}

	data, err := h.service.Sync(r.Context(), userID, since)
	if err != nil {
		log.Error("failed to collect changes", sl.Err(err))
		response.Write(w, r, http.StatusInternalServerError, response.Internal())
		return
	}

	response.Write(w, r, http.StatusOK, Response{Success: true, Data: *data, NextSync: data.NextSync})
}
