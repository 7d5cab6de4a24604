// Package profile возвращает учётную запись текущего пользователя.
package profile

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

// Service описывает чтение учётной записи.
type Service interface {
	Profile(ctx context.Context, userID string) (*models.User, error)
}

// Response учётная запись пользователя.
type Response struct {
	Success bool            `json:"success" example:"true"`
	User    models.UserView `json:"user"`
}

// Handler обрабатывает чтение учётной записи.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Профиль пользователя
// @Tags Auth
// @Produce  json
// @Success 200 {object} Response
// @Failure 404 {object} response.ErrorResponse "Пользователь не найден"
// @Router /auth/profile [get]
// @Security BearerAuth
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.profile"

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

	user, err := h.service.Profile(r.Context(), userID)
	if err != nil {
		if errors.Is(err, collection.ErrNotFound) {
			log.Warn("user not found", slog.String("user_id", userID))
			response.Write(w, r, http.StatusNotFound, response.Error("User not found"))
			return
		}
		log.Error("failed to read user", sl.Err(err))
		response.Write(w, r, http.StatusInternalServerError, response.Internal())
		return
	}

	response.Write(w, r, http.StatusOK, Response{Success: true, User: user.View()})
}
