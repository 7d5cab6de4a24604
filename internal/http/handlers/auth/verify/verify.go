// Package verify проверяет, что владелец токена всё ещё существует.
package verify

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

// Service описывает проверку учётной записи.
type Service interface {
	Verify(ctx context.Context, userID string) (*models.User, error)
}

// Response ответ на проверку токена.
type Response struct {
	Success bool            `json:"success" example:"true"`
	Valid   bool            `json:"valid" example:"true"`
	User    models.UserView `json:"user"`
}

// Handler обрабатывает проверку токена.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Проверка токена
// @Tags Auth
// @Produce  json
// @Success 200 {object} Response
// @Failure 401 {object} response.ErrorResponse "Нет токена"
// @Failure 404 {object} response.ErrorResponse "Пользователь не найден"
// @Router /auth/verify [get]
// @Security BearerAuth
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.verify"

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

	user, err := h.service.Verify(r.Context(), userID)
	if err != nil {
		if errors.Is(err, collection.ErrNotFound) {
			log.Warn("token owner not found", slog.String("user_id", userID))
			response.Write(w, r, http.StatusNotFound, response.ErrorWithMessage("User not found", "User account no longer exists"))
			return
		}
		log.Error("failed to verify user", sl.Err(err))
		response.Write(w, r, http.StatusInternalServerError, response.Internal())
		return
	}

	response.Write(w, r, http.StatusOK, Response{Success: true, Valid: true, User: user.View()})
}
