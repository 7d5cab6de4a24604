// Package refresh выдаёт новый токен по действующему.
package refresh

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"

	"github.com/cobusiness02/forgefyt/internal/http/middlewarectx"
	"github.com/cobusiness02/forgefyt/internal/http/response"
	"github.com/cobusiness02/forgefyt/internal/lib/jwt"
	"github.com/cobusiness02/forgefyt/internal/lib/sl"
	"github.com/cobusiness02/forgefyt/internal/services/auth"
)

// Service описывает перевыпуск токена.
type Service interface {
	Refresh(ctx context.Context, claims jwt.Claims) (*auth.Session, error)
}

// Response новый токен.
type Response struct {
	Success   bool   `json:"success" example:"true"`
	Token     string `json:"token"`
	ExpiresIn string `json:"expiresIn" example:"7d"`
}

// Handler обрабатывает перевыпуск токена.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Обновление токена
// @Tags Auth
// @Produce  json
// @Success 200 {object} Response
// @Failure 401 {object} response.ErrorResponse "Нет токена"
// @Failure 403 {object} response.ErrorResponse "Недействительный токен"
// @Router /auth/refresh [post]
// @Security BearerAuth
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.refresh"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	claims, ok := middlewarectx.ClaimsFrom(r.Context())
	if !ok {
		log.Error("claims not found in context")
		response.Write(w, r, http.StatusUnauthorized, response.Unauthorized())
		return
	}

	session, err := h.service.Refresh(r.Context(), claims)
	if err != nil {
		log.Error("failed to refresh token", sl.Err(err))
		response.Write(w, r, http.StatusInternalServerError, response.Internal())
		return
	}

	log.Info("token refreshed", slog.String("user_id", claims.UserID))
	response.Write(w, r, http.StatusOK, Response{Success: true, Token: session.Token, ExpiresIn: session.ExpiresIn})
}
