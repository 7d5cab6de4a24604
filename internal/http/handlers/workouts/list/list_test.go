package list

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
	"github.com/cobusiness02/forgefyt/internal/services/workouts"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) List(ctx context.Context, owner string, p workouts.ListParams) (collection.Page[models.Workout], error) {
	args := m.Called(ctx, owner, p)
	return args.Get(0).(collection.Page[models.Workout]), args.Error(1)
}

func TestListHandler_ServeHTTP(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))

	tests := []struct {
		name           string
		url            string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "тренировки клиента за дату",
			url:  "/api/workouts?date=2024-11-01&clientId=1",
			setupMock: func(m *MockService) {
				m.On("List", mock.Anything, "1", workouts.ListParams{Date: "2024-11-01", ClientID: "1"}).
					Return(collection.Page[models.Workout]{
						Items: []models.Workout{{Base: models.Base{ID: "1"}, Title: "Upper Body Strength"}},
						Page:  1, Limit: 10, Total: 1, TotalPages: 1,
					}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"title":"Upper Body Strength"`,
		},
		{
			name:           "некорректная дата",
			url:            "/api/workouts?date=01.11.2024",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"field":"date","message":"must be a date in format 2006-01-02"}`,
		},
		{
			name:           "неизвестный тип",
			url:            "/api/workouts?type=yoga",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"field":"type"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			tt.setupMock(svc)

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			req = req.WithContext(middlewarectx.WithClaims(req.Context(), jwt.Claims{UserID: "1"}))
			w := httptest.NewRecorder()
			New(log, svc).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			svc.AssertExpectations(t)
		})
	}
}
