package registerdevice

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/cobusiness02/forgefyt/internal/http/middlewarectx"
	"github.com/cobusiness02/forgefyt/internal/lib/jwt"
	"github.com/cobusiness02/forgefyt/internal/models"
	"github.com/cobusiness02/forgefyt/internal/services/devices"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Register(ctx context.Context, userID string, req models.DeviceRequest) (*devices.Registration, error) {
	args := m.Called(ctx, userID, req)
	res, _ := args.Get(0).(*devices.Registration)
	return res, args.Error(1)
}

func TestRegisterHandler_ServeHTTP(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
	token := strings.Repeat("ab", 32)

	tests := []struct {
		name           string
		body           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "устройство зарегистрировано",
			body: `{"deviceToken":"` + token + `","platform":"ios","appVersion":"0.9.0"}`,
			setupMock: func(m *MockService) {
				m.On("Register", mock.Anything, "1", models.DeviceRequest{DeviceToken: token, Platform: "ios", AppVersion: "0.9.0"}).
					Return(&devices.Registration{
						Device:          &models.Device{Base: models.Base{ID: "d1"}, DeviceToken: token, AppVersion: "0.9.0"},
						UpgradeRequired: true,
					}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"success":true,"message":"Device registered successfully for push notifications","data":{"registrationId":"d1","userId":"1","upgradeRequired":true}}`,
		},
		{
			name:           "короткий токен",
			body:           `{"deviceToken":"abc","platform":"ios"}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Validation failed","details":[{"field":"deviceToken","message":"must be exactly 64 characters long"}]}`,
		},
		{
			name:           "не ios",
			body:           `{"deviceToken":"` + token + `","platform":"android"}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Validation failed","details":[{"field":"platform","message":"must be ios"}]}`,
		},
		{
			name: "ошибка хранилища",
			body: `{"deviceToken":"` + token + `","platform":"ios"}`,
			setupMock: func(m *MockService) {
				m.On("Register", mock.Anything, "1", mock.Anything).Return(nil, errors.New("db down"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			tt.setupMock(svc)

			req := httptest.NewRequest(http.MethodPost, "/api/ios/register-device", strings.NewReader(tt.body))
			req = req.WithContext(middlewarectx.WithClaims(req.Context(), jwt.Claims{UserID: "1"}))
			w := httptest.NewRecorder()
			New(log, svc).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
			svc.AssertExpectations(t)
		})
	}
}
