// Package read возвращает клиента тренера по идентификатору.
package read

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"

	"github.com/cobusiness02/forgefyt/internal/collection"
	"github.com/cobusiness02/forgefyt/internal/http/middlewarectx"
	"github.com/cobusiness02/forgefyt/internal/http/response"
	"github.com/cobusiness02/forgefyt/internal/lib/sl"
	"github.com/cobusiness02/forgefyt/internal/models"
)

// Service описывает чтение клиента.
type Service interface {
	Get(ctx context.Context, owner, id string) (*models.Client, error)
}

// Handler обрабатывает чтение клиента.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Клиент по идентификатору
// @Tags Clients
// @Produce  json
// @Param id path string true "ID клиента"
// @Success 200 {object} response.Response{data=models.Client}
// @Failure 404 {object} response.ErrorResponse "Клиент не найден"
// @Router /clients/{id} [get]
// @Security BearerAuth
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.clients.read"

	id := chi.URLParam(r, "id")
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
		slog.String("client_id", id),
	)

	owner := middlewarectx.UserIDFrom(r.Context())
	if owner == "" {
		log.Error("user id not found in context")
		response.Write(w, r, http.StatusUnauthorized, response.Unauthorized())
		return
	}

	client, err := h.service.Get(r.Context(), owner, id)
	if err != nil {
		if errors.Is(err, collection.ErrNotFound) {
			log.Warn("client not found")
			response.Write(w, r, http.StatusNotFound, response.Error("Client not found"))
			return
		}
		log.Error("failed to read client", sl.Err(err))
		response.Write(w, r, http.StatusInternalServerError, response.Internal())
		return
	}

	response.Write(w, r, http.StatusOK, response.OK(client))
}
