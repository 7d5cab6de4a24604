// Package appconfig отдаёт конфигурацию iOS-приложения.
package appconfig

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"

	"github.com/cobusiness02/forgefyt/internal/http/response"
	"github.com/cobusiness02/forgefyt/internal/services/devices"
)

// Service описывает сборку конфигурации.
type Service interface {
	AppConfig() devices.AppConfig
}

// Handler обрабатывает запрос конфигурации.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Конфигурация iOS-приложения
// @Tags iOS
// @Produce  json
// @Success 200 {object} response.Response{data=devices.AppConfig}
// @Router /ios/app-config [get]
// @Security BearerAuth
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.ios.appconfig"

	h.log.Debug("app config requested",
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)
	response.Write(w, r, http.StatusOK, response.OK(h.service.AppConfig()))
}
