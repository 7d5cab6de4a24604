// Package create обрабатывает добавление клиента тренером.
package create

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

// Service описывает создание клиента.
type Service interface {
	Create(ctx context.Context, owner string, req models.ClientRequest) (*models.Client, error)
}

// Handler обрабатывает создание клиента.
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
// @Summary Создать клиента
// @Description Email клиента уникален без учета регистра
// @Tags Clients
// @Accept  json
// @Produce  json
// @Param request body models.ClientRequest true "Данные клиента"
// @Success 201 {object} response.Response{data=models.Client}
// @Failure 400 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 409 {object} response.ErrorResponse "Email уже используется"
// @Router /clients [post]
// @Security BearerAuth
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.clients.create"

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

	var req models.ClientRequest
	if !bind.JSON(w, r, log, h.validate, &req) {
		return
	}

	client, err := h.service.Create(r.Context(), owner, req)
	if err != nil {
		var verr *collection.ValidationError
		switch {
		case errors.Is(err, collection.ErrConflict):
			log.Warn("client email taken", slog.String("email", req.Email))
			response.Write(w, r, http.StatusConflict, response.ErrorWithMessage("Client already exists", "A client with this email already exists"))
		case errors.As(err, &verr):
			log.Warn("client rejected", sl.Err(err))
			response.Write(w, r, http.StatusBadRequest, response.ValidationFailed(verr))
		default:
			log.Error("failed to create client", sl.Err(err))
			response.Write(w, r, http.StatusInternalServerError, response.Internal())
		}
		return
	}

	log.Info("client created", slog.String("client_id", client.ID))
	response.Write(w, r, http.StatusCreated, response.OKWithMessage("Client created successfully", client))
}
