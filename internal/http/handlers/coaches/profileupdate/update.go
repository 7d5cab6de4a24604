// Package profileupdate обрабатывает изменение профиля тренера.
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

// Service описывает изменение профиля тренера.
type Service interface {
	UpdateProfile(ctx context.Context, owner string, patch models.CoachPatch) (*models.Coach, error)
}

// Handler обрабатывает изменение профиля тренера.
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
// @Summary Изменить профиль тренера
// @Tags Coaches
// @Accept  json
// @Produce  json
// @Param request body models.CoachPatch true "Изменяемые поля"
// @Success 200 {object} response.Response{data=models.Coach}
// @Failure 400 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 404 {object} response.ErrorResponse "Тренер не найден"
// @Router /coaches/profile [put]
// @Security BearerAuth
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.coaches.profileupdate"

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

	var patch models.CoachPatch
	if !bind.JSON(w, r, log, h.validate, &patch) {
		return
	}

	coach, err := h.service.UpdateProfile(r.Context(), owner, patch)
	if err != nil {
		if errors.Is(err, collection.ErrNotFound) {
			log.Warn("coach not found", slog.String("user_id", owner))
			response.Write(w, r, http.StatusNotFound, response.Error("Coach not found"))
			return
		}
		log.Error("failed to update coach profile", sl.Err(err))
		response.Write(w, r, http.StatusInternalServerError, response.Internal())
		return
	}

	log.Info("coach profile updated", slog.String("coach_id", coach.ID))
	response.Write(w, r, http.StatusOK, response.OKWithMessage("Profile updated successfully", coach))
}
