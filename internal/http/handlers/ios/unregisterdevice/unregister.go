// Package unregisterdevice удаляет регистрации устройств пользователя.
package unregisterdevice

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"

	"github.com/cobusiness02/forgefyt/internal/http/middlewarectx"
	"github.com/cobusiness02/forgefyt/internal/http/response"
	"github.com/cobusiness02/forgefyt/internal/lib/sl"
)

// Service описывает удаление регистрации.
type Service interface {
	Unregister(ctx context.Context, userID string) (bool, error)
}

// Response результат удаления. Removed=false, если регистраций не было.
type Response struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"Device unregistered successfully"`
	Removed bool   `json:"removed" example:"true"`
}

// Handler обрабатывает удаление регистрации.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Удалить регистрацию устройства
// @Tags iOS
// @Produce  json
// @Success 200 {object} Response
// @Router /ios/unregister-device [delete]
// @Security BearerAuth
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.ios.unregisterdevice"

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

	removed, err := h.service.Unregister(r.Context(), userID)
	if err != nil {
		log.Error("failed to unregister device", sl.Err(err))
		response.Write(w, r, http.StatusInternalServerError, response.Internal())
		return
	}

	msg := "No device registration found"
	if removed {
		msg = "Device unregistered successfully"
		log.Info("device unregistered", slog.String("user_id", userID))
	}
	response.Write(w, r, http.StatusOK, Response{Success: true, Message: msg, Removed: removed})
}
