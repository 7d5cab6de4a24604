// Package profile возвращает профиль тренера текущего пользователя.
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

// Service описывает чтение профиля тренера.
type Service interface {
	Profile(ctx context.Context, owner string) (*models.Coach, error)
}

// Handler обрабатывает чтение профиля тренера.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Профиль тренера
// @Tags Coaches
// @Produce  json
// @Success 200 {object} response.Response{data=models.Coach}
// @Failure 403 {object} response.ErrorResponse "Недостаточно прав"
// @Failure 404 {object} response.ErrorResponse "Тренер не найден"
// @Router /coaches/profile [get]
// @Security BearerAuth
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.coaches.profile"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	owner := middlewarectx.UserIDFrom(r.Context())
	if owner == "" {
		log.Error("user id not found in context")
		response.Write(w, r, http.StatusUnauthorized, response.Unauthorized())
		return
	}

	coach, err := h.service.Profile(r.Context(), owner)
	if err != nil {
		if errors.Is(err, collection.ErrNotFound) {
			log.Warn("coach not found", slog.String("user_id", owner))
			response.Write(w, r, http.StatusNotFound, response.Error("Coach not found"))
			return
		}
		log.Error("failed to read coach profile", sl.Err(err))
		response.Write(w, r, http.StatusInternalServerError, response.Internal())
		return
	}

	response.Write(w, r, http.StatusOK, response.OK(coach))
}
