package create

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/cobusiness02/forgefyt/internal/collection"
	"github.com/cobusiness02/forgefyt/internal/http/middlewarectx"
	"github.com/cobusiness02/forgefyt/internal/lib/jwt"
	"github.com/cobusiness02/forgefyt/internal/models"
	"github.com/cobusiness02/forgefyt/internal/services/clients"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Create(ctx context.Context, owner string, req models.ClientRequest) (*models.Client, error) {
	args := m.Called(ctx, owner, req)
	c, _ := args.Get(0).(*models.Client)
	return c, args.Error(1)
}

func TestCreateHandler_ServeHTTP(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
	body := `{"name":"Anna Lee","email":"anna@example.com","goals":["Mobility"],"fitnessLevel":"beginner"}`

	tests := []struct {
		name           string
		body           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "клиент создан",
			body: body,
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, "1", mock.MatchedBy(func(req models.ClientRequest) bool {
					return req.Email == "anna@example.com" && req.FitnessLevel == models.FitnessBeginner
				})).Return(&models.Client{Base: models.Base{ID: "4", OwnerID: "1"}, Name: "Anna Lee"}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"message":"Client created successfully"`,
		},
		{
			name: "email занят",
			body: body,
			setupMock: func(m *MockService) {
				err := &collection.ConflictError{Constraint: "email", Key: "anna@example.com", Err: clients.ErrEmailTaken}
				m.On("Create", mock.Anything, "1", mock.Anything).Return(nil, fmt.Errorf("clients.Create: %w", err))
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"error":"Client already exists","message":"A client with this email already exists"}`,
		},
		{
			name:           "неверный уровень подготовки",
			body:           `{"name":"Anna Lee","email":"anna@example.com","fitnessLevel":"pro"}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"field":"body"`,
		},
		{
			name:           "нет email",
			body:           `{"name":"Anna Lee"}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"field":"email","message":"is required"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			tt.setupMock(svc)

			req := httptest.NewRequest(http.MethodPost, "/api/clients", strings.NewReader(tt.body))
			req = req.WithContext(middlewarectx.WithClaims(req.Context(), jwt.Claims{UserID: "1"}))
			w := httptest.NewRecorder()
			New(log, svc).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			svc.AssertExpectations(t)
		})
	}
}
