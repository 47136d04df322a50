package users

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/coincrafter/backend/internal/domain"
	"github.com/coincrafter/backend/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*UserHandler, *MockService, *MockLedger) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	ledger := NewMockLedger(ctrl)
	handler := New(service, ledger)
	defer ctrl.Finish()
	return handler, service, ledger
}

func withClaims(req *http.Request, email, role string) *http.Request {
	ctx := context.WithValue(req.Context(), auth.ClaimsKey, &auth.Claims{Email: email, Role: role})
	return req.WithContext(ctx)
}

func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestMeHandler(t *testing.T) {
	handler, service, _ := NewMock(t)

	t.Run("Profile returned", func(t *testing.T) {
		service.EXPECT().GetByEmail(gomock.Any(), "jane@example.com").Return(&domain.User{
			ID: 1, Name: "Jane", Email: "jane@example.com", Role: domain.RoleWorker, Coins: 120,
		}, nil)

		req := httptest.NewRequest("GET", "/api/users/me", nil)
		req = withClaims(req, "jane@example.com", domain.RoleWorker)
		rr := httptest.NewRecorder()

		handler.Me(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp struct {
			Email string `json:"email"`
			Coins int    `json:"coins"`
		}
		err := json.NewDecoder(rr.Body).Decode(&resp)
		assert.NoError(t, err)
		assert.Equal(t, "jane@example.com", resp.Email)
		assert.Equal(t, 120, resp.Coins)
	})

	t.Run("Account missing", func(t *testing.T) {
		service.EXPECT().GetByEmail(gomock.Any(), "jane@example.com").Return(nil, domain.ErrNotFound)

		req := httptest.NewRequest("GET", "/api/users/me", nil)
		req = withClaims(req, "jane@example.com", domain.RoleWorker)
		rr := httptest.NewRecorder()

		handler.Me(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestBalanceHandler(t *testing.T) {
	handler, _, ledger := NewMock(t)

	ledger.EXPECT().Balance(gomock.Any(), "jane@example.com").Return(120, nil)

	req := httptest.NewRequest("GET", "/api/users/balance", nil)
	req = withClaims(req, "jane@example.com", domain.RoleWorker)
	rr := httptest.NewRecorder()

	handler.Balance(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Coins int `json:"coins"`
	}
	err := json.NewDecoder(rr.Body).Decode(&resp)
	assert.NoError(t, err)
	assert.Equal(t, 120, resp.Coins)
}

func TestTopWorkersHandler(t *testing.T) {
	handler, service, _ := NewMock(t)

	service.EXPECT().TopWorkers(gomock.Any()).Return([]domain.User{
		{Name: "Jane", Photo: "jane.png", Coins: 900},
		{Name: "Sam", Photo: "sam.png", Coins: 700},
	}, nil)

	req := httptest.NewRequest("GET", "/api/users/top-workers", nil)
	rr := httptest.NewRecorder()

	handler.TopWorkers(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp []struct {
		Name  string `json:"name"`
		Coins int    `json:"coins"`
	}
	err := json.NewDecoder(rr.Body).Decode(&resp)
	assert.NoError(t, err)
	assert.Len(t, resp, 2)
	assert.Equal(t, "Jane", resp[0].Name)
}

func TestUpdateRoleHandler(t *testing.T) {
	handler, service, _ := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Role updated",
			body: `{"role":"admin"}`,
			prepareMock: func() {
				service.EXPECT().UpdateRole(gomock.Any(), 5, "admin").Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "User not found",
			body: `{"role":"admin"}`,
			prepareMock: func() {
				service.EXPECT().UpdateRole(gomock.Any(), 5, "admin").Return(domain.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "Unknown role",
			body:         `{"role":"superuser"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("PATCH", "/api/admin/users/5/role", bytes.NewReader([]byte(tt.body)))
			req = withClaims(req, "admin@example.com", domain.RoleAdmin)
			req = withURLParam(req, "id", "5")
			rr := httptest.NewRecorder()

			handler.UpdateRole(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestDeleteHandler(t *testing.T) {
	handler, service, _ := NewMock(t)

	t.Run("User deleted", func(t *testing.T) {
		service.EXPECT().Delete(gomock.Any(), 5).Return(nil)

		req := httptest.NewRequest("DELETE", "/api/admin/users/5", nil)
		req = withClaims(req, "admin@example.com", domain.RoleAdmin)
		req = withURLParam(req, "id", "5")
		rr := httptest.NewRecorder()

		handler.Delete(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Invalid user id", func(t *testing.T) {
		req := httptest.NewRequest("DELETE", "/api/admin/users/abc", nil)
		req = withClaims(req, "admin@example.com", domain.RoleAdmin)
		req = withURLParam(req, "id", "abc")
		rr := httptest.NewRecorder()

		handler.Delete(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestListHandler(t *testing.T) {
	handler, service, _ := NewMock(t)

	service.EXPECT().List(gomock.Any()).Return([]domain.User{{ID: 1}, {ID: 2}}, nil)

	req := httptest.NewRequest("GET", "/api/admin/users", nil)
	req = withClaims(req, "admin@example.com", domain.RoleAdmin)
	rr := httptest.NewRecorder()

	handler.List(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}
