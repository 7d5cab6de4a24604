// Package list обрабатывает постраничный список клиентов тренера
// с фильтром по статусу и поиском по имени, email и целям.
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
	"github.com/cobusiness02/forgefyt/internal/services/clients"
)

// Service описывает выборку клиентов.
type Service interface {
	List(ctx context.Context, owner string, p clients.ListParams) (collection.Page[models.Client], error)
}

// Handler обрабатывает список клиентов.
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
// @Summary Список клиентов
// @Description Без статуса возвращает только активных клиентов, status=all возвращает всех
// @Tags Clients
// @Produce  json
// @Param status query string false "active, inactive или all"
// @Param search query string false "Подстрока имени, email или цели"
// @Param page query int false "Номер страницы" default(1)
// @Param limit query int false "Размер страницы" default(10)
// @Success 200 {object} response.Response
// @Failure 400 {object} response.ErrorResponse "Ошибка валидации"
// @Router /clients [get]
// @Security BearerAuth
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.clients.list"

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

	var params clients.ListParams
	if !bind.Query(w, r, log, h.validate, &params) {
		return
	}

	page, err := h.service.List(r.Context(), owner, params)
	if err != nil {
		log.Error("failed to list clients", sl.Err(err))
		response.Write(w, r, http.StatusInternalServerError, response.Internal())
		return
	}

	log.Debug("clients listed", slog.Int("total", page.Total))
	response.Write(w, r, http.StatusOK, response.OKWithPage(page))
}
