package stats

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/cobusiness02/forgefyt/internal/http/middlewarectx"
	"github.com/cobusiness02/forgefyt/internal/lib/jwt"
	"github.com/cobusiness02/forgefyt/internal/lib/period"
	"github.com/cobusiness02/forgefyt/internal/services/coaches"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Stats(ctx context.Context, owner string, p period.Period) (*coaches.Stats, error) {
	args := m.Called(ctx, owner, p)
	res, _ := args.Get(0).(*coaches.Stats)
	return res, args.Error(1)
}

func TestStatsHandler_ServeHTTP(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))

	tests := []struct {
		name           string
		query          string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:  "неделя",
			query: "?period=week",
			setupMock: func(m *MockService) {
				m.On("Stats", mock.Anything, "1", period.Week).Return(&coaches.Stats{
					Period: period.Week, SessionsCompleted: 2, Revenue: 140, AverageRating: 4.5, TotalWorkoutHours: 2.3,
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"success":true,"period":"week","data":{"sessionsCompleted":2,"newClients":0,"revenue":140,"averageRating":4.5,"totalWorkoutHours":2.3}}`,
		},
		{
			name:  "месяц по умолчанию",
			query: "",
			setupMock: func(m *MockService) {
				m.On("Stats", mock.Anything, "1", period.Month).Return(&coaches.Stats{Period: period.Month}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"success":true,"period":"month","data":{"sessionsCompleted":0,"newClients":0,"revenue":0,"averageRating":0,"totalWorkoutHours":0}}`,
		},
		{
			name:           "неизвестный период",
			query:          "?period=century",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Validation failed","details":[{"field":"period","message":"must be one of: week, month, quarter, year"}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			tt.setupMock(svc)

			req := httptest.NewRequest(http.MethodGet, "/api/coaches/stats"+tt.query, nil)
			req = req.WithContext(middlewarectx.WithClaims(req.Context(), jwt.Claims{UserID: "1"}))
			w := httptest.NewRecorder()
			New(log, svc).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
			svc.AssertExpectations(t)
		})
	}
}
