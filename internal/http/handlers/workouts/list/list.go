// Package list обрабатывает постраничный список тренировок тренера.
package list

import (
	"context"
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
	"github.com/cobusiness02/forgefyt/internal/services/workouts"
)

// Service описывает выборку тренировок.
type Service interface {
	List(ctx context.Context, owner string, p workouts.ListParams) (collection.Page[models.Workout], error)
}

// Handler обрабатывает список тренировок.
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
// @Summary Список тренировок
// @Description Упорядочен по дате и времени. Без статуса отмененные не возвращаются
// @Tags Workouts
// @Produce  json
// @Param date query string false "Дата YYYY-MM-DD"
// @Param clientId query string false "ID клиента"
// @Param type query string false "Тип тренировки"
// @Param status query string false "Статус или all"
// @Param page query int false "Номер страницы" default(1)
// @Param limit query int false "Размер страницы" default(10)
// @Success 200 {object} response.Response
// @Failure 400 {object} response.ErrorResponse "Ошибка валидации"
// @Router /workouts [get]
// @Security BearerAuth
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.workouts.list"

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

	var params workouts.ListParams
	if !bind.Query(w, r, log, h.validate, &params) {
		return
	}

	page, err := h.service.List(r.Context(), owner, params)
	if err != nil {
		log.Error("failed to list workouts", sl.Err(err))
		response.Write(w, r, http.StatusInternalServerError, response.Internal())
		return
	}

	response.Write(w, r, http.StatusOK, response.OKWithPage(page))
}
