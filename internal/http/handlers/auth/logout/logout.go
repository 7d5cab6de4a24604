// Package logout завершает сеанс. Токены не хранятся на сервере,
// поэтому клиент просто удаляет свой токен.
package logout

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"

	"github.com/cobusiness02/forgefyt/internal/http/middlewarectx"
	"github.com/cobusiness02/forgefyt/internal/http/response"
)

// Handler обрабатывает выход.
type Handler struct {
	log *slog.Logger
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger) *Handler {
	return &Handler{log: log}
}

// ServeHTTP godoc
// @Summary Выход пользователя
// @Tags Auth
// @Produce  json
// @Success 200 {object} response.Response
// @Router /auth/logout [post]
// @Security BearerAuth
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.logout"

	h.log.Info("user logged out",
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
		slog.String("user_id", middlewarectx.UserIDFrom(r.Context())),
	)
	response.Write(w, r, http.StatusOK, response.OKWithMessage("Logout successful", nil))
}
