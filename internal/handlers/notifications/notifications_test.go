package notifications

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/coincrafter/backend/internal/domain"
	"github.com/coincrafter/backend/pkg/auth"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*NotificationHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func withClaims(req *http.Request, email, role string) *http.Request {
	ctx := context.WithValue(req.Context(), auth.ClaimsKey, &auth.Claims{Email: email, Role: role})
	return req.WithContext(ctx)
}

func TestListHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Notifications returned", func(t *testing.T) {
		service.EXPECT().List(gomock.Any(), "worker@example.com").Return([]domain.Notification{
			{ID: 2, Message: "Your submission was approved", ToEmail: "worker@example.com"},
			{ID: 1, Message: "Welcome", ToEmail: "worker@example.com"},
		}, nil)

		req := httptest.NewRequest("GET", "/api/notifications", nil)
		req = withClaims(req, "worker@example.com", domain.RoleWorker)
		rr := httptest.NewRecorder()

		handler.List(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp []struct {
			ID      int    `json:"id"`
			Message string `json:"message"`
		}
		err := json.NewDecoder(rr.Body).Decode(&resp)
		assert.NoError(t, err)
		assert.Len(t, resp, 2)
		assert.Equal(t, "Your submission was approved", resp[0].Message)
	})

	t.Run("Service error", func(t *testing.T) {
		service.EXPECT().List(gomock.Any(), "worker@example.com").Return(nil, errors.New("db error"))

		req := httptest.NewRequest("GET", "/api/notifications", nil)
		req = withClaims(req, "worker@example.com", domain.RoleWorker)
		rr := httptest.NewRecorder()

		handler.List(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}
