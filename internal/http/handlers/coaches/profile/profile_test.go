package profile

import (
	"context"
	"errors"
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

func (m *MockService) Profile(ctx context.Context, owner string) (*models.Coach, error) {
	args := m.Called(ctx, owner)
	res, _ := args.Get(0).(*models.Coach)
	return res, args.Error(1)
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
				m.On("Profile", mock.Anything, "1").Return(&models.Coach{
					Base: models.Base{ID: "1", OwnerID: "1"}, Name: "John Coach", SessionRate: 70,
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"name":"John Coach"`,
		},
		{
			name: "профиля нет",
			setupMock: func(m *MockService) {
				m.On("Profile", mock.Anything, "1").Return(nil, collection.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"error":"Coach not found"}`,
		},
		{
			name: "ошибка хранилища",
			setupMock: func(m *MockService) {
				m.On("Profile", mock.Anything, "1").Return(nil, errors.New("db down"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			tt.setupMock(svc)

			req := httptest.NewRequest(http.MethodGet, "/api/coaches/profile", nil)
			req = req.WithContext(middlewarectx.WithClaims(req.Context(), jwt.Claims{UserID: "1", Role: "coach"}))
			w := httptest.NewRecorder()
			New(log, svc).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			svc.AssertExpectations(t)
		})
	}
}
