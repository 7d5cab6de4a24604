package verify

import (
	"context"
	"fmt"
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

func (m *MockService) Verify(ctx context.Context, userID string) (*models.User, error) {
	args := m.Called(ctx, userID)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func TestVerifyHandler_ServeHTTP(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))

	tests := []struct {
		name           string
		userID         string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:   "пользователь существует",
			userID: "1",
			setupMock: func(m *MockService) {
				m.On("Verify", mock.Anything, "1").Return(&models.User{
					Base: models.Base{ID: "1"}, Email: "coach@fitcoachpro.com", Role: models.RoleCoach, IsActive: true,
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"valid":true`,
		},
		{
			name:   "пользователь удалён",
			userID: "9",
			setupMock: func(m *MockService) {
				m.On("Verify", mock.Anything, "9").Return(nil, fmt.Errorf("auth.Verify: %w", collection.ErrNotFound))
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"error":"User not found","message":"User account no longer exists"}`,
		},
		{
			name:           "без токена",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `"error":"Access denied"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			tt.setupMock(svc)

			req := httptest.NewRequest(http.MethodGet, "/api/auth/verify", nil)
			if tt.userID != "" {
				req = req.WithContext(middlewarectx.WithClaims(req.Context(), jwt.Claims{UserID: tt.userID}))
			}
			w := httptest.NewRecorder()
			New(log, svc).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			svc.AssertExpectations(t)
		})
	}
}
