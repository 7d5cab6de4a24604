package fitcoach

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cobusiness02/forgefyt/internal/collection"
	"github.com/cobusiness02/forgefyt/internal/config"
	"github.com/cobusiness02/forgefyt/internal/http/middlewarectx"
	"github.com/cobusiness02/forgefyt/internal/lib/jwt"
	"github.com/cobusiness02/forgefyt/internal/notify"
)

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func newTestRouter(t *testing.T, limiter *middlewarectx.RateLimiter) http.Handler {
	t.Helper()
	log := newNoopLogger()
	clk := clock.NewMock()
	clk.Set(time.Date(2024, 11, 1, 7, 0, 0, 0, time.UTC))

	dispatcher := notify.NewDispatcher(log, notify.NewLogSink(log), time.Second)
	t.Cleanup(dispatcher.Wait)

	svc := NewServices(log, MemoryStores(),
		collection.Options{Clock: clk, Logger: log},
		jwt.NewJWTMaker("test-secret", time.Hour),
		dispatcher,
		config.IOS{MinAppVersion: "1.0.0"},
	)
	require.NoError(t, svc.Seed(context.Background()))

	r := chi.NewRouter()
	RegisterRoutes(r, log, svc, RouteOptions{Clock: clk, Env: "test", Limiter: limiter})
	return r
}

func do(t *testing.T, h http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func loginAs(t *testing.T, h http.Handler, email, password string) string {
	t.Helper()
	w := do(t, h, http.MethodPost, "/api/auth/login", "", map[string]string{"email": email, "password": password})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
		User    struct {
			Email string `json:"email"`
			Role  string `json:"role"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	require.NotEmpty(t, resp.Token)
	assert.Equal(t, email, resp.User.Email)
	return resp.Token
}

func TestRoutes_LoginAndListClients(t *testing.T) {
	h := newTestRouter(t, nil)
	token := loginAs(t, h, "coach@fitcoachpro.com", "coach123")

	w := do(t, h, http.MethodGet, "/api/clients?status=active&page=1&limit=2", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Success    bool              `json:"success"`
		Data       []json.RawMessage `json:"data"`
		Pagination struct {
			Page  int `json:"page"`
			Limit int `json:"limit"`
			Total int `json:"total"`
			Pages int `json:"pages"`
		} `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Len(t, resp.Data, 2)
	assert.Equal(t, 1, resp.Pagination.Page)
	assert.Equal(t, 2, resp.Pagination.Limit)
	assert.Equal(t, 3, resp.Pagination.Total)
	assert.Equal(t, 2, resp.Pagination.Pages)
}

func TestRoutes_WrongPassword(t *testing.T) {
	h := newTestRouter(t, nil)
	w := do(t, h, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "coach@fitcoachpro.com", "password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Authentication failed","message":"Invalid credentials"}`, w.Body.String())
}

func TestRoutes_WorkoutSlotConflict(t *testing.T) {
	h := newTestRouter(t, nil)
	token := loginAs(t, h, "coach@fitcoachpro.com", "coach123")

	req := map[string]any{
		"clientId": "2",
		"title":    "Extra Session",
		"type":     "cardio",
		"date":     "2024-11-01",
		"time":     "09:00",
		"duration": 45,
	}
	w := do(t, h, http.MethodPost, "/api/workouts", token, req)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "Scheduling conflict")

	req["time"] = "18:00"
	w = do(t, h, http.MethodPost, "/api/workouts", token, req)
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"clientName":"Mike Wilson"`)
}

func TestRoutes_Auth(t *testing.T) {
	h := newTestRouter(t, nil)
	adminToken := loginAs(t, h, "admin@fitcoachpro.com", "admin123")

	tests := []struct {
		name       string
		method     string
		path       string
		token      string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "без токена",
			method:     http.MethodGet,
			path:       "/api/clients",
			wantStatus: http.StatusUnauthorized,
			wantBody:   `"No token provided"`,
		},
		{
			name:       "поддельный токен",
			method:     http.MethodGet,
			path:       "/api/workouts",
			token:      "not-a-token",
			wantStatus: http.StatusForbidden,
			wantBody:   `"Token verification failed"`,
		},
		{
			name:       "администратор видит разделы тренера",
			method:     http.MethodGet,
			path:       "/api/coaches/schedule",
			token:      adminToken,
			wantStatus: http.StatusNotFound,
			wantBody:   `"Coach not found"`,
		},
		{
			name:       "проверка живости iOS без токена",
			method:     http.MethodGet,
			path:       "/api/ios/ios-health",
			wantStatus: http.StatusOK,
			wantBody:   `"status":"healthy"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, h, tt.method, tt.path, tt.token, nil)
			assert.Equal(t, tt.wantStatus, w.Code, w.Body.String())
			assert.Contains(t, w.Body.String(), tt.wantBody)
		})
	}
}

func TestRoutes_System(t *testing.T) {
	h := newTestRouter(t, nil)

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantBody   string
	}{
		{name: "проверка живости", path: "/health", wantStatus: http.StatusOK, wantBody: `"environment":"test"`},
		{name: "приветствие", path: "/api", wantStatus: http.StatusOK, wantBody: `"Welcome to FitCoach Pro API"`},
		{name: "неизвестный маршрут", path: "/nowhere", wantStatus: http.StatusNotFound, wantBody: `"Route /nowhere not found"`},
		{name: "неизвестный маршрут в api", path: "/api/nowhere", wantStatus: http.StatusNotFound, wantBody: `"availableRoutes"`},
		{name: "метрики", path: "/metrics", wantStatus: http.StatusOK, wantBody: "fitcoach_http_requests_total"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, h, http.MethodGet, tt.path, "", nil)
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
		})
	}
}

func TestRoutes_RateLimit(t *testing.T) {
	h := newTestRouter(t, middlewarectx.NewRateLimiter(2, time.Minute))

	for range 2 {
		w := do(t, h, http.MethodGet, "/api", "", nil)
		require.Equal(t, http.StatusOK, w.Code)
	}
	w := do(t, h, http.MethodGet, "/api", "", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "Too many requests from this IP")

	w = do(t, h, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
