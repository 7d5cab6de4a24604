// Package register обрабатывает регистрацию новой учётной записи.
package register

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-playground/validator"

	"github.com/cobusiness02/forgefyt/internal/collection"
	"github.com/cobusiness02/forgefyt/internal/http/bind"
	"github.com/cobusiness02/forgefyt/internal/http/response"
	"github.com/cobusiness02/forgefyt/internal/lib/sl"
	"github.com/cobusiness02/forgefyt/internal/lib/validate"
	"github.com/cobusiness02/forgefyt/internal/models"
	"github.com/cobusiness02/forgefyt/internal/services/auth"
)

// Service описывает регистрацию пользователя.
type Service interface {
	Register(ctx context.Context, req models.RegisterRequest) (*auth.Session, error)
}

// Response ответ на успешную регистрацию.
type Response struct {
	Success   bool            `json:"success" example:"true"`
	Message   string          `json:"message" example:"Registration successful"`
	User      models.UserView `json:"user"`
	Token     string          `json:"token"`
	ExpiresIn string          `json:"expiresIn" example:"7d"`
}

// Handler обрабатывает HTTP-запросы на регистрацию.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validate.New(),
	}
}

// ServeHTTP godoc
// @Summary Регистрация пользователя
// @Description Создает учетную запись, для тренера также профиль тренера
// @Tags Auth
// @Accept  json
// @Produce  json
// @Param request body models.RegisterRequest true "Данные пользователя"
// @Success 201 {object} Response
// @Failure 400 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 409 {object} response.ErrorResponse "Email уже зарегистрирован"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /auth/register [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.register"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.RegisterRequest
	if !bind.JSON(w, r, log, h.validate, &req) {
		return
	}

	session, err := h.service.Register(r.Context(), req)
	if err != nil {
		var verr *collection.ValidationError
		switch {
		case errors.Is(err, auth.ErrUserExists):
			log.Warn("email already registered", slog.String("email", req.Email))
			response.Write(w, r, http.StatusConflict, response.ErrorWithMessage("User already exists", "Email is already registered"))
		case errors.As(err, &verr):
			log.Warn("user rejected", sl.Err(err))
			response.Write(w, r, http.StatusBadRequest, response.ValidationFailed(verr))
		default:
			log.Error("registration failed", sl.Err(err))
			response.Write(w, r, http.StatusInternalServerError, response.Internal())
		}
		return
	}

	log.Info("user registered", slog.String("user_id", session.User.ID))
	response.Write(w, r, http.StatusCreated, Response{
		Success:   true,
		Message:   "Registration successful",
		User:      session.User.View(),
		Token:     session.Token,
		ExpiresIn: session.ExpiresIn,
	})
}
