package devicesync

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/cobusiness02/forgefyt/internal/http/middlewarectx"
	"github.com/cobusiness02/forgefyt/internal/lib/jwt"
	"github.com/cobusiness02/forgefyt/internal/services/devices"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Sync(ctx context.Context, userID string, since time.Time) (*devices.SyncData, error) {
	args := m.Called(ctx, userID, since)
	res, _ := args.Get(0).(*devices.SyncData)
	return res, args.Error(1)
}

func TestSyncHandler_ServeHTTP(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
	now := time.Date(2024, 11, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		query          string
		since          time.Time
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "первая синхронизация",
			query:          "",
			since:          time.Time{},
			expectedStatus: http.StatusOK,
			expectedBody:   `"nextSync":"2024-11-01T12:05:00Z"`,
		},
		{
			name:           "с отметкой времени",
			query:          "?lastSync=2024-10-31T08:00:00.000Z",
			since:          time.Date(2024, 10, 31, 8, 0, 0, 0, time.UTC),
			expectedStatus: http.StatusOK,
			expectedBody:   `"timestamp":"2024-11-01T12:00:00Z"`,
		},
		{
			name:           "неверная отметка",
			query:          "?lastSync=yesterday",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"field":"lastSync"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			if tt.expectedStatus == http.StatusOK {
				svc.On("Sync", mock.Anything, "1", mock.MatchedBy(func(since time.Time) bool {
					return since.Equal(tt.since)
				})).Return(&devices.SyncData{Timestamp: now, NextSync: now.Add(devices.NextSyncAfter)}, nil)
			}

			req := httptest.NewRequest(http.MethodGet, "/api/ios/sync"+tt.query, nil)
			req = req.WithContext(middlewarectx.WithClaims(req.Context(), jwt.Claims{UserID: "1"}))
			w := httptest.NewRecorder()
			New(log, svc).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			svc.AssertExpectations(t)
		})
	}
}
