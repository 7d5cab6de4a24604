// Package welcome отдаёт приветствие и перечень разделов API.
package welcome

import (
	"net/http"

	"github.com/cobusiness02/forgefyt/internal/http/response"
)

// Version версия API.
const Version = "1.0.0"

// Endpoints корневые пути разделов.
type Endpoints struct {
	Auth     string `json:"auth"`
	Coaches  string `json:"coaches"`
	Clients  string `json:"clients"`
	Workouts string `json:"workouts"`
	IOS      string `json:"ios"`
	Health   string `json:"health"`
}

// Response приветствие API.
type Response struct {
	Message       string    `json:"message"`
	Version       string    `json:"version"`
	Endpoints     Endpoints `json:"endpoints"`
	Documentation string    `json:"documentation"`
}

var body = Response{
	Message: "Welcome to FitCoach Pro API",
	Version: Version,
	Endpoints: Endpoints{
		Auth:     "/api/auth",
		Coaches:  "/api/coaches",
		Clients:  "/api/clients",
		Workouts: "/api/workouts",
		IOS:      "/api/ios",
		Health:   "/health",
	},
	Documentation: "/api/docs",
}

// ServeHTTP godoc
// @Summary Приветствие API
// @Tags System
// @Produce  json
// @Success 200 {object} Response
// @Router / [get]
func ServeHTTP(w http.ResponseWriter, r *http.Request) {
	response.Write(w, r, http.StatusOK, body)
}
