// Package update обрабатывает частичное изменение клиента.
package update

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
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

// Service описывает изменение клиента.
type Service interface {
	Update(ctx context.Context, owner, id string, patch models.ClientPatch) (*models.Client, error)
}

// Handler обрабатывает изменение клиента.
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
// @Summary Изменить клиента
// @Tags Clients
// @Accept  json
// @Produce  json
// @Param id path string true "ID клиента"
// @Param request body models.ClientPatch true "Изменяемые поля"
// @Success 200 {object} response.Response{data=models.Client}
// @Failure 400 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 404 {object} response.ErrorResponse "Клиент не найден"
// @Failure 409 {object} response.ErrorResponse "Email занят другим клиентом"
// @Router /clients/{id} [put]
// @Security BearerAuth
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.clients.update"

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

	var patch models.ClientPatch
	if !bind.JSON(w, r, log, h.validate, &patch) {
		return
	}

	client, err := h.service.Update(r.Context(), owner, id, patch)
	if err != nil {
		var verr *collection.ValidationError
		switch {
		case errors.Is(err, collection.ErrNotFound):
			log.Warn("client not found")
			response.Write(w, r, http.StatusNotFound, response.Error("Client not found"))
		case errors.Is(err, collection.ErrConflict):
			log.Warn("client email taken")
			response.Write(w, r, http.StatusConflict, response.ErrorWithMessage("Email already in use", "Another client is already using this email"))
		case errors.As(err, &verr):
			log.Warn("client rejected", sl.Err(err))
			response.Write(w, r, http.StatusBadRequest, response.ValidationFailed(verr))
		default:
			log.Error("failed to update client", sl.Err(err))
			response.Write(w, r, http.StatusInternalServerError, response.Internal())
		}
		return
	}

	log.Info("client updated")
	response.Write(w, r, http.StatusOK, response.OKWithMessage("Client updated successfully", client))
}
