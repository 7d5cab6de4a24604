package middlewarectx_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/cobusiness02/forgefyt/internal/http/middlewarectx"
	"github.com/cobusiness02/forgefyt/internal/lib/jwt"
)

type TokenParserMock struct {
	mock.Mock
}

func (m *TokenParserMock) ParseToken(token string) (*jwt.CustomClaims, error) {
	args := m.Called(token)
	claims, _ := args.Get(0).(*jwt.CustomClaims)
	return claims, args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestJWTMiddleware(t *testing.T) {
	claims := jwt.Claims{UserID: "1", Email: "coach@fitcoachpro.com", Role: "coach", Name: "John Coach"}

	tests := []struct {
		name       string
		authHeader string
		setupMock  func(m *TokenParserMock)
		wantStatus int
		wantBody   string
		wantCalled bool
	}{
		{
			name:       "нет заголовка",
			authHeader: "",
			setupMock:  func(_ *TokenParserMock) {},
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"error":"Access denied","message":"No token provided"}`,
		},
		{
			name:       "не Bearer",
			authHeader: "Basic abc",
			setupMock:  func(_ *TokenParserMock) {},
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"error":"Access denied","message":"No token provided"}`,
		},
		{
			name:       "пустой токен",
			authHeader: "Bearer ",
			setupMock:  func(_ *TokenParserMock) {},
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"error":"Access denied","message":"No token provided"}`,
		},
		{
			name:       "токен не прошёл проверку",
			authHeader: "Bearer broken",
			setupMock: func(m *TokenParserMock) {
				m.On("ParseToken", "broken").Return(nil, jwt.ErrInvalidToken)
			},
			wantStatus: http.StatusForbidden,
			wantBody:   `{"error":"Invalid token","message":"Token verification failed"}`,
		},
		{
			name:       "валидный токен",
			authHeader: "Bearer good",
			setupMock: func(m *TokenParserMock) {
				m.On("ParseToken", "good").Return(&jwt.CustomClaims{Claims: claims}, nil)
			},
			wantStatus: http.StatusOK,
			wantCalled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parser := new(TokenParserMock)
			tt.setupMock(parser)

			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				got, ok := middlewarectx.ClaimsFrom(r.Context())
				assert.True(t, ok)
				assert.Equal(t, claims, got)
				assert.Equal(t, "1", middlewarectx.UserIDFrom(r.Context()))
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/clients", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()
			middlewarectx.JWTMiddleware(parser, newNoopLogger())(next).ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantCalled, called)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, w.Body.String())
			}
			parser.AssertExpectations(t)
		})
	}
}

func TestClaimsFrom_Empty(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, ok := middlewarectx.ClaimsFrom(req.Context())
	assert.False(t, ok)
	assert.Empty(t, middlewarectx.UserIDFrom(req.Context()))
}

func TestRequireRole(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	mw := middlewarectx.RequireRole(newNoopLogger(), "coach", "admin")(next)

	tests := []struct {
		name       string
		role       string
		wantStatus int
	}{
		{name: "coach", role: "coach", wantStatus: http.StatusNoContent},
		{name: "admin", role: "admin", wantStatus: http.StatusNoContent},
		{name: "чужая роль", role: "client", wantStatus: http.StatusForbidden},
		{name: "без роли", role: "", wantStatus: http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req = req.WithContext(middlewarectx.WithClaims(req.Context(), jwt.Claims{UserID: "1", Role: tt.role}))
			w := httptest.NewRecorder()
			mw.ServeHTTP(w, req)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

