// Package registerdevice регистрирует iOS-устройство пользователя для
// push-уведомлений. Новая регистрация заменяет прежнюю.
package registerdevice

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
	"github.com/cobusiness02/forgefyt/internal/models"
	"github.com/cobusiness02/forgefyt/internal/services/devices"
)

// Service описывает регистрацию устройства.
type Service interface {
	Register(ctx context.Context, userID string, req models.DeviceRequest) (*devices.Registration, error)
}

// Data сведения о регистрации в ответе.
type Data struct {
	RegistrationID  string `json:"registrationId"`
	UserID          string `json:"userId"`
	UpgradeRequired bool   `json:"upgradeRequired"`
}

// Handler обрабатывает регистрацию устройства.
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
// @Summary Зарегистрировать устройство
// @Description Токен APNs длиной 64 символа, платформа только ios
// @Tags iOS
// @Accept  json
// @Produce  json
// @Param request body models.DeviceRequest true "Данные устройства"
// @Success 200 {object} response.Response{data=Data}
// @Failure 400 {object} response.ErrorResponse "Ошибка валидации"
// @Router /ios/register-device [post]
// @Security BearerAuth
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.ios.registerdevice"

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

	var req models.DeviceRequest
	if !bind.JSON(w, r, log, h.validate, &req) {
		return
	}

	reg, err := h.service.Register(r.Context(), userID, req)
	if err != nil {
		log.Error("failed to register device", sl.Err(err))
		response.Write(w, r, http.StatusInternalServerError, response.Internal())
		return
	}

	if reg.UpgradeRequired {
		log.Info("outdated app version", slog.String("app_version", reg.Device.AppVersion))
	}
	response.Write(w, r, http.StatusOK, response.OKWithMessage("Device registered successfully for push notifications", Data{
		RegistrationID:  reg.Device.ID,
		UserID:          userID,
		UpgradeRequired: reg.UpgradeRequired,
	}))
}
