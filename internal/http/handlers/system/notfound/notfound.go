// Package notfound отвечает на запросы к неизвестным маршрутам.
package notfound

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"

	"github.com/cobusiness02/forgefyt/internal/http/response"
)

// AvailableRoutes разделы API, перечисляемые в ответе 404.
var AvailableRoutes = []string{
	"/api",
	"/api/auth",
	"/api/coaches",
	"/api/clients",
	"/api/workouts",
	"/health",
}

// Response ответ на неизвестный маршрут.
type Response struct {
	Error           string   `json:"error"`
	Message         string   `json:"message"`
	AvailableRoutes []string `json:"availableRoutes"`
}

// Handler отвечает 404 со списком разделов.
type Handler struct {
	log *slog.Logger
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger) *Handler {
	return &Handler{log: log}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.log.Debug("route not found",
		slog.String("request_id", middleware.GetReqID(r.Context())),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
	)
	response.Write(w, r, http.StatusNotFound, Response{
		Error:           "Not Found",
		Message:         fmt.Sprintf("Route %s not found", r.URL.Path),
		AvailableRoutes: AvailableRoutes,
	})
}
