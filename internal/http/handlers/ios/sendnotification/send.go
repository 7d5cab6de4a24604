// Package sendnotification отправляет push-уведомление на устройство
// пользователя. Без userId уведомление получает сам отправитель.
package sendnotification

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/go-playground/validator"

	"github.com/cobusiness02/forgefyt/internal/http/bind"
	"github.com/cobusiness02/forgefyt/internal/http/middlewarectx"
	"github.com/cobusiness02/forgefyt/internal/http/response"
	"github.com/cobusiness02/forgefyt/internal/lib/sl"
	"github.com/cobusiness02/forgefyt/internal/lib/validate"
	"github.com/cobusiness02/forgefyt/internal/models"
	"github.com/cobusiness02/forgefyt/internal/notify"
	"github.com/cobusiness02/forgefyt/internal/services/devices"
)

// Service описывает отправку уведомления.
type Service interface {
	Send(ctx context.Context, sender string, req models.NotificationRequest) (*models.Notification, error)
}

// Data сведения об отправке. Токен устройства маскируется.
type Data struct {
	NotificationID string    `json:"notificationId"`
	DeviceToken    string    `json:"deviceToken" example:"a1b2c3d4..."`
	SentAt         time.Time `json:"sentAt"`
}

// Handler обрабатывает отправку уведомления.
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
// @Summary Отправить push-уведомление
// @Tags iOS
// @Accept  json
// @Produce  json
// @Param request body models.NotificationRequest true "Уведомление"
// @Success 200 {object} response.Response{data=Data}
// @Failure 400 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 404 {object} response.ErrorResponse "У пользователя нет устройства"
// @Router /ios/send-notification [post]
// @Security BearerAuth
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.ios.sendnotification"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	sender := middlewarectx.UserIDFrom(r.Context())
	if sender == "" {
		log.Error("user id not found in context")
		response.Write(w, r, http.StatusUnauthorized, response.Unauthorized())
		return
	}

	var req models.NotificationRequest
	if !bind.JSON(w, r, log, h.validate, &req) {
		return
	}

	n, err := h.service.Send(r.Context(), sender, req)
	if err != nil {
		if errors.Is(err, devices.ErrNoDevice) {
			log.Warn("no device for user", slog.String("target", req.UserID))
			response.Write(w, r, http.StatusNotFound, response.Error("No device registration found for user"))
			return
		}
		log.Error("failed to send notification", sl.Err(err))
		response.Write(w, r, http.StatusInternalServerError, response.Internal())
		return
	}

	log.Info("notification queued", slog.String("notification_id", n.ID), slog.String("user_id", n.UserID))
	response.Write(w, r, http.StatusOK, response.OKWithMessage("Notification sent successfully", Data{
		NotificationID: n.ID,
		DeviceToken:    notify.MaskToken(n.DeviceToken),
		SentAt:         n.SentAt,
	}))
}
