// Package templates отдаёт встроенные шаблоны тренировок.
package templates

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"

	"github.com/cobusiness02/forgefyt/internal/http/response"
	"github.com/cobusiness02/forgefyt/internal/models"
)

// Handler обрабатывает запрос шаблонов.
type Handler struct {
	log       *slog.Logger
	templates func() []models.Template
}

// New создает новый экземпляр Handler. source возвращает список шаблонов.
func New(log *slog.Logger, source func() []models.Template) *Handler {
	return &Handler{log: log, templates: source}
}

// ServeHTTP godoc
// @Summary Шаблоны тренировок
// @Tags Workouts
// @Produce  json
// @Success 200 {object} response.Response{data=[]models.Template}
// @Router /workouts/templates/list [get]
// @Security BearerAuth
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.workouts.templates"

	list := h.templates()
	h.log.Debug("templates served",
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
		slog.Int("count", len(list)),
	)
	response.Write(w, r, http.StatusOK, response.OK(list))
}
