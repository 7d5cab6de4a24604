// Package profileupdate меняет имя и поля профиля текущего пользователя.
package profileupdate

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-playground/validator"

	"github.com/cobusiness02/forgefyt/internal/collection"
	"github.com/cobusiness02/forgefyt/internal/http/bind"
	"github.com/cobusiness02/forgefyt/internal/http/middlewarectx"
	"github.com/cobusiness02/forgefyt/internal/http/response"
	"github.com/cobusiness02/forgefyt/internal/lib/sl"
	"github.com/cobusiness02/forgefyt/internal/lib/validate"
	"github.com/cobusiness02/forgefyt/internal/models"
)

// Service описывает изменение учётной записи.
type Service interface {
	UpdateProfile(ctx context.Context, userID string, patch models.ProfilePatch) (*models.User, error)
}

// Response изменённая учётная запись.
type Response struct {
	Success bool            `json:"success" example:"true"`
	Message string          `json:"message" example:"Profile updated successfully"`
	User    models.UserView `json:"user"`
}

// Handler обрабатывает изменение учётной записи.
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
// @Summary Изменение профиля пользователя
// @Description Меняет имя, поля profile дополняют существующие
// @Tags Auth
// @Accept  json
// @Produce  json
// @Param request body models.ProfilePatch true "Изменяемые поля"
// @Success 200 {object} Response
// @Failure 400 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 404 {object} response.ErrorResponse "Пользователь не найден"
// @Router /auth/profile [put]
// @Security BearerAuth
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.profileupdate"

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

	var patch models.ProfilePatch
	if !bind.JSON(w, r, log, h.validate, &patch) {
		return
	}

	user, err := h.service.UpdateProfile(r.Context(), userID, patch)
	if err != nil {
		if errors.Is(err, collection.ErrNotFound) {
			log.Warn("user not found", slog.String("user_id", userID))
			response.Write(w, r, http.StatusNotFound, response.Error("User not found"))
			return
		}
		log.Error("failed to update profile", sl.Err(err))
		response.Write(w, r, http.StatusInternalServerError, response.Internal())
		return
	}

	log.Info("profile updated", slog.String("user_id", userID))
	response.Write(w, r, http.StatusOK, Response{Success: true, Message: "Profile updated successfully", User: user.View()})
}
