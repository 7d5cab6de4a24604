// Package overview возвращает сводку по клиентам тренера.
package overview

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"

	"github.com/cobusiness02/forgefyt/internal/http/middlewarectx"
	"github.com/cobusiness02/forgefyt/internal/http/response"
	"github.com/cobusiness02/forgefyt/internal/lib/sl"
	"github.com/cobusiness02/forgefyt/internal/services/coaches"
)

// Service описывает построение сводки по клиентам.
type Service interface {
	ClientsOverview(ctx context.Context, owner string) (*coaches.ClientsOverview, error)
}

// Handler обрабатывает сводку по клиентам.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Сводка по клиентам
// @Description Удержание, средняя частота тренировок, лучшие клиенты и последние события
// @Tags Coaches
// @Produce  json
// @Success 200 {object} response.Response{data=coaches.ClientsOverview}
// @Router /coaches/clients-overview [get]
// @Security BearerAuth
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.coaches.overview"

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

	ov, err := h.service.ClientsOverview(r.Context(), owner)
	if err != nil {
		log.Error("failed to build clients overview", sl.Err(err))
		response.Write(w, r, http.StatusInternalServerError, response.Internal())
		return
	}

	response.Write(w, r, http.StatusOK, response.OK(ov))
}
