package middlewarectx

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newNoopLoggerLimit() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestRateLimiter_Middleware(t *testing.T) {
	testHandler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("success")); err != nil {
			t.Errorf("failed to write response: %v", err)
		}
	})

	t.Run("пропускает запросы в пределах лимита", func(t *testing.T) {
		l := NewRateLimiter(3, 15*time.Minute)
		h := l.Middleware(newNoopLoggerLimit())(testHandler)

		for range 3 {
			req := httptest.NewRequest(http.MethodGet, "/api", nil)
			req.RemoteAddr = "10.0.0.1:1234"
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)
			assert.Equal(t, http.StatusOK, w.Code)
		}
	})

	t.Run("блокирует запросы сверх лимита", func(t *testing.T) {
		l := NewRateLimiter(2, 15*time.Minute)
		h := l.Middleware(newNoopLoggerLimit())(testHandler)

		var w *httptest.ResponseRecorder
		for range 3 {
			req := httptest.NewRequest(http.MethodGet, "/api", nil)
			req.RemoteAddr = "10.0.0.1:1234"
			w = httptest.NewRecorder()
			h.ServeHTTP(w, req)
		}
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.JSONEq(t, `{"error":"Too many requests from this IP, please try again later.","retryAfter":"15 minutes"}`, w.Body.String())

		req := httptest.NewRequest(http.MethodGet, "/api", nil)
		req.RemoteAddr = "10.0.0.2:1234"
		w = httptest.NewRecorder()
		h.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code, "other IPs keep their own budget")
	})
}

func TestRateLimiter_RefillsOverWindow(t *testing.T) {
	now := time.Date(2024, 11, 1, 9, 0, 0, 0, time.UTC)
	l := NewRateLimiter(2, time.Minute)
	l.now = func() time.Time { return now }

	require.True(t, l.Allow("a"))
	require.True(t, l.Allow("a"))
	require.False(t, l.Allow("a"))

	now = now.Add(30 * time.Second)
	assert.True(t, l.Allow("a"))
	assert.False(t, l.Allow("a"))
}

func TestRateLimiter_ForgetsIdleVisitors(t *testing.T) {
	now := time.Date(2024, 11, 1, 9, 0, 0, 0, time.UTC)
	l := NewRateLimiter(1, time.Minute)
	l.now = func() time.Time { return now }

	l.Allow("a")
	now = now.Add(2 * time.Minute)
	l.Allow("b")

	l.mu.Lock()
	defer l.mu.Unlock()
	assert.NotContains(t, l.visitors, "a")
	assert.Contains(t, l.visitors, "b")
}

func TestFormatWindow(t *testing.T) {
	assert.Equal(t, "15 minutes", formatWindow(15*time.Minute))
	assert.Equal(t, "1 minute", formatWindow(time.Minute))
	assert.Equal(t, "30s", formatWindow(30*time.Second))
}
