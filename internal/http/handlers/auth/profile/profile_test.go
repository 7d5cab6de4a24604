package profile

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/cobusiness02/forgefyt/internal/collection"
	"github.com/cobusiness02/forgefyt/internal/http/middlewarectx"
	"github.com/cobusiness02/forgefyt/internal/lib/jwt"
	"github.com/cobusiness02/forgefyt/internal/models"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Profile(ctx context.Context, userID string) (*models.User, error) {
	args := m.Called(ctx, userID)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func TestProfileHandler_ServeHTTP(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))

	tests := []struct {
		name           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "профиль найден",
			setupMock: func(m *MockService) {
				m.On("Profile", mock.Anything, "2").Return(&models.User{
					Base: models.Base{ID: "2"}, Name: "Admin User", Role: models.RoleAdmin, PasswordHash: "hash",
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"name":"Admin User"`,
		},
		{
			name: "профиль не найден",
			setupMock: func(m *MockService) {
				m.On("Profile", mock.Anything, "2").Return(nil, collection.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"error":"User not found"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			tt.setupMock(svc)

			req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
			req = req.WithContext(middlewarectx.WithClaims(req.Context(), jwt.Claims{UserID: "2"}))
			w := httptest.NewRecorder()
			New(log, svc).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			assert.NotContains(t, w.Body.String(), "hash")
			svc.AssertExpectations(t)
		})
	}
}
