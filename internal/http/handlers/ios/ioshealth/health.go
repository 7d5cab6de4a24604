// Package ioshealth отдаёт состояние сервиса для iOS-клиента.
package ioshealth

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/cobusiness02/forgefyt/internal/http/response"
	"github.com/cobusiness02/forgefyt/internal/lib/sl"
	"github.com/cobusiness02/forgefyt/internal/services/devices"
)

// Service описывает проверку состояния.
type Service interface {
	Health(ctx context.Context) (*devices.Health, error)
}

// Unhealthy ответ при сбое проверки.
type Unhealthy struct {
	Status string `json:"status" example:"unhealthy"`
	Error  string `json:"error"`
}

// Handler обрабатывает проверку состояния.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Состояние сервиса для iOS
// @Tags iOS
// @Produce  json
// @Success 200 {object} devices.Health
// @Failure 500 {object} Unhealthy
// @Router /ios/ios-health [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.ios.health"

	st, err := h.service.Health(r.Context())
	if err != nil {
		h.log.Error("ios health check failed", slog.String("op", op), sl.Err(err))
		response.Write(w, r, http.StatusInternalServerError, Unhealthy{Status: "unhealthy", Error: err.Error()})
		return
	}
	response.Write(w, r, http.StatusOK, st)
}
