package welcome

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServeHTTP(t *testing.T) {
	w := httptest.NewRecorder()
	ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"message": "Welcome to FitCoach Pro API",
		"version": "1.0.0",
		"endpoints": {
			"auth": "/api/auth",
			"coaches": "/api/coaches",
			"clients": "/api/clients",
			"workouts": "/api/workouts",
			"ios": "/api/ios",
			"health": "/health"
		},
		"documentation": "/api/docs"
	}`, w.Body.String())
}
