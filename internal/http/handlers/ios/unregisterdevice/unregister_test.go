package unregisterdevice

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
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Unregister(ctx context.Context, userID string) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

func TestUnregisterHandler_ServeHTTP(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))

	tests := []struct {
		name         string
		removed      bool
		expectedBody string
	}{
		{
			name:         "регистрация удалена",
			removed:      true,
			expectedBody: `{"success":true,"message":"Device unregistered successfully","removed":true}`,
		},
		{
			name:         "регистрации не было",
			removed:      false,
			expectedBody: `{"success":true,"message":"No device registration found","removed":false}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			svc.On("Unregister", mock.Anything, "1").Return(tt.removed, nil)

			req := httptest.NewRequest(http.MethodDelete, "/api/ios/unregister-device", nil)
			req = req.WithContext(middlewarectx.WithClaims(req.Context(), jwt.Claims{UserID: "1"}))
			w := httptest.NewRecorder()
			New(log, svc).ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
			svc.AssertExpectations(t)
		})
	}
}
