package update

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi"
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

func (m *MockService) Update(ctx context.Context, owner, id string, patch models.ClientPatch) (*models.Client, error) {
	args := m.Called(ctx, owner, id, patch)
	c, _ := args.Get(0).(*models.Client)
	return c, args.Error(1)
}

func TestUpdateHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))

	tests := []struct {
		name           string
		id             string
		body           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "успешное обновление",
			id:   "2",
			body: `{"phone":"+1-555-0199"}`,
			setupMock: func(m *MockService) {
				m.On("Update", mock.Anything, "1", "2", mock.MatchedBy(func(p models.ClientPatch) bool {
					return p.Phone != nil && *p.Phone == "+1-555-0199" && p.Email == nil
				})).Return(&models.Client{Base: models.Base{ID: "2"}, Phone: "+1-555-0199"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"message":"Client updated successfully"`,
		},
		{
			name: "email другого клиента",
			id:   "2",
			body: `{"email":"sarah.johnson@email.com"}`,
			setupMock: func(m *MockService) {
				m.On("Update", mock.Anything, "1", "2", mock.Anything).
					Return(nil, fmt.Errorf("clients.Update: %w", &collection.ConflictError{Constraint: "email"}))
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"error":"Email already in use","message":"Another client is already using this email"}`,
		},
		{
			name: "клиент не найден",
			id:   "99",
			body: `{"name":"Nobody"}`,
			setupMock: func(m *MockService) {
				m.On("Update", mock.Anything, "1", "99", mock.Anything).Return(nil, collection.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"error":"Client not found"}`,
		},
		{
			name:           "некорректный email",
			id:             "2",
			body:           `{"email":"not-an-email"}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"field":"email"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			tt.setupMock(svc)

			req := httptest.NewRequest(http.MethodPut, "/api/clients/"+tt.id, strings.NewReader(tt.body))
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.id)
			ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
			req = req.WithContext(middlewarectx.WithClaims(ctx, jwt.Claims{UserID: "1"}))

			w := httptest.NewRecorder()
			New(logger, svc).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			svc.AssertExpectations(t)
		})
	}
}
