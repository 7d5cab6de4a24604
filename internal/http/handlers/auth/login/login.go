// Package login обрабатывает вход по email и паролю.
//
// При успехе возвращается JWT, срок его действия и данные пользователя,
// при неверных учётных данных ответ 401.
package login

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-playground/validator"

	"github.com/cobusiness02/forgefyt/internal/http/bind"
	"github.com/cobusiness02/forgefyt/internal/http/response"
	"github.com/cobusiness02/forgefyt/internal/lib/sl"
	"github.com/cobusiness02/forgefyt/internal/lib/validate"
	"github.com/cobusiness02/forgefyt/internal/models"
	"github.com/cobusiness02/forgefyt/internal/services/auth"
)

// Service описывает вход пользователя.
type Service interface {
	Login(ctx context.Context, email, password string) (*auth.Session, error)
}

// Response ответ на успешный вход.
type Response struct {
	Success   bool            `json:"success" example:"true"`
	Message   string          `json:"message" example:"Login successful"`
	Token     string          `json:"token"`
	User      models.UserView `json:"user"`
	ExpiresIn string          `json:"expiresIn" example:"7d"`
}

// Handler обрабатывает HTTP-запросы на вход.
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
// @Summary Вход пользователя
// @Description Проверяет email и пароль, возвращает JWT
// @Tags Auth
// @Accept  json
// @Produce  json
// @Param request body models.LoginRequest true "Учетные данные"
// @Success 200 {object} Response
// @Failure 400 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 401 {object} response.ErrorResponse "Неверные учетные данные"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /auth/login [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.login"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.LoginRequest
	if !bind.JSON(w, r, log, h.validate, &req) {
		return
	}

	session, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			log.Warn("invalid credentials", slog.String("email", req.Email))
			response.Write(w, r, http.StatusUnauthorized, response.ErrorWithMessage("Authentication failed", "Invalid credentials"))
			return
		}
		log.Error("login failed", sl.Err(err))
		response.Write(w, r, http.StatusInternalServerError, response.Internal())
		return
	}

	view := session.User.View()
	view.CreatedAt = nil

	log.Info("login success", slog.String("user_id", view.ID))
	response.Write(w, r, http.StatusOK, Response{
		Success:   true,
		Message:   "Login successful",
		Token:     session.Token,
		User:      view,
		ExpiresIn: session.ExpiresIn,
	})
}
