package schedule

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

func (m *MockService) Schedule(ctx context.Context, owner string) (models.Schedule, error) {
	args := m.Called(ctx, owner)
	res, _ := args.Get(0).(models.Schedule)
	return res, args.Error(1)
}

func TestScheduleHandler_ServeHTTP(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))

	t.Run("расписание по умолчанию", func(t *testing.T) {
		svc := new(MockService)
		svc.On("Schedule", mock.Anything, "1").Return(models.DefaultSchedule(), nil)

		req := httptest.NewRequest(http.MethodGet, "/api/coaches/schedule", nil)
		req = req.WithContext(middlewarectx.WithClaims(req.Context(), jwt.Claims{UserID: "1"}))
		w := httptest.NewRecorder()
		New(log, svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"data":{"schedule":{`)
		assert.Contains(t, w.Body.String(), `"monday":{`)
	})

	t.Run("профиля нет", func(t *testing.T) {
		svc := new(MockService)
		svc.On("Schedule", mock.Anything, "1").Return(nil, collection.ErrNotFound)

		req := httptest.NewRequest(http.MethodGet, "/api/coaches/schedule", nil)
		req = req.WithContext(middlewarectx.WithClaims(req.Context(), jwt.Claims{UserID: "1"}))
		w := httptest.NewRecorder()
		New(log, svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
