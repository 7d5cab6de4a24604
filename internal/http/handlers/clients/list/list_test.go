package list

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
	"github.com/cobusiness02/forgefyt/internal/services/clients"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) List(ctx context.Context, owner string, p clients.ListParams) (collection.Page[models.Client], error) {
	args := m.Called(ctx, owner, p)
	return args.Get(0).(collection.Page[models.Client]), args.Error(1)
}

func TestListHandler_ServeHTTP(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
	page := collection.Page[models.Client]{
		Items: []models.Client{
			{Base: models.Base{ID: "1"}, Name: "Sarah Johnson"},
			{Base: models.Base{ID: "2"}, Name: "Mike Chen"},
		},
		Page: 1, Limit: 2, Total: 3, TotalPages: 2,
	}

	tests := []struct {
		name           string
		url            string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "первая страница активных",
			url:  "/api/clients?status=active&page=1&limit=2",
			setupMock: func(m *MockService) {
				m.On("List", mock.Anything, "1", mock.MatchedBy(func(p clients.ListParams) bool {
					return p.Status == "active" && *p.Page == 1 && *p.Limit == 2
				})).Return(page, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"pagination":{"page":1,"limit":2,"total":3,"pages":2}`,
		},
		{
			name: "поиск без пагинации",
			url:  "/api/clients?search=weight",
			setupMock: func(m *MockService) {
				m.On("List", mock.Anything, "1", clients.ListParams{Search: "weight"}).
					Return(collection.Page[models.Client]{Items: []models.Client{}, Page: 1, Limit: 10}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"data":[]`,
		},
		{
			name:           "лимит больше допустимого",
			url:            "/api/clients?limit=500",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"field":"limit","message":"must be at most 100"}`,
		},
		{
			name: "ошибка хранилища",
			url:  "/api/clients",
			setupMock: func(m *MockService) {
				m.On("List", mock.Anything, "1", clients.ListParams{}).
					Return(collection.Page[models.Client]{}, errors.New("db down"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"error":"Internal server error"`,
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
