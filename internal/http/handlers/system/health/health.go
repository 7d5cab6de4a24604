// Package health отвечает на проверку живости сервиса.
package health

import (
	"net/http"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/cobusiness02/forgefyt/internal/http/response"
)

// Response состояние сервиса.
type Response struct {
	Status      string    `json:"status" example:"OK"`
	Timestamp   time.Time `json:"timestamp"`
	Uptime      float64   `json:"uptime" example:"12.5"`
	Environment string    `json:"environment" example:"local"`
}

// Handler отвечает на проверку живости.
type Handler struct {
	clock   clock.Clock
	started time.Time
	env     string
}

// New создает новый экземпляр Handler. Время работы отсчитывается
// от момента создания.
func New(clk clock.Clock, env string) *Handler {
	return &Handler{clock: clk, started: clk.Now(), env: env}
}

// ServeHTTP godoc
// @Summary Проверка живости
// @Tags System
// @Produce  json
// @Success 200 {object} Response
// @Router /health [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	now := h.clock.Now()
	response.Write(w, r, http.StatusOK, Response{
		Status:      "OK",
		Timestamp:   now.UTC(),
		Uptime:      now.Sub(h.started).Seconds(),
		Environment: h.env,
	})
}
