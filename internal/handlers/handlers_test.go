package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	_ "github.com/coincrafter/backend/docs"
	authhandlers "github.com/coincrafter/backend/internal/handlers/auth"
	notificationhandlers "github.com/coincrafter/backend/internal/handlers/notifications"
	paymenthandlers "github.com/coincrafter/backend/internal/handlers/payments"
	statshandlers "github.com/coincrafter/backend/internal/handlers/stats"
	submissionhandlers "github.com/coincrafter/backend/internal/handlers/submissions"
	taskhandlers "github.com/coincrafter/backend/internal/handlers/tasks"
	userhandlers "github.com/coincrafter/backend/internal/handlers/users"
	withdrawalhandlers "github.com/coincrafter/backend/internal/handlers/withdrawals"
	"github.com/coincrafter/backend/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := &service.Services{
		AuthService:         authhandlers.NewMockService(ctrl),
		UserService:         userhandlers.NewMockService(ctrl),
		LedgerService:       userhandlers.NewMockLedger(ctrl),
		TaskService:         taskhandlers.NewMockService(ctrl),
		SubmissionService:   submissionhandlers.NewMockService(ctrl),
		WithdrawalService:   withdrawalhandlers.NewMockService(ctrl),
		PaymentService:      paymenthandlers.NewMockService(ctrl),
		StatsService:        statshandlers.NewMockService(ctrl),
		NotificationService: notificationhandlers.NewMockService(ctrl),
	}

	h := New(services)
	assert.NotNil(t, h, "Handlers should not be nil")
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthHandler := NewMockAuthHandler(ctrl)
	mockUserHandler := NewMockUserHandler(ctrl)
	mockTaskHandler := NewMockTaskHandler(ctrl)
	mockSubmissionHandler := NewMockSubmissionHandler(ctrl)
	mockWithdrawalHandler := NewMockWithdrawalHandler(ctrl)
	mockPaymentHandler := NewMockPaymentHandler(ctrl)
	mockStatsHandler := NewMockStatsHandler(ctrl)
	mockNotificationHandler := NewMockNotificationHandler(ctrl)

	mockAuthHandler.EXPECT().Register(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()
	mockUserHandler.EXPECT().TopWorkers(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		AuthHandler:         mockAuthHandler,
		UserHandler:         mockUserHandler,
		TaskHandler:         mockTaskHandler,
		SubmissionHandler:   mockSubmissionHandler,
		WithdrawalHandler:   mockWithdrawalHandler,
		PaymentHandler:      mockPaymentHandler,
		StatsHandler:        mockStatsHandler,
		NotificationHandler: mockNotificationHandler,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"POST", "/api/auth/register", http.StatusOK},
		{"POST", "/api/auth/login", http.StatusOK},
		{"GET", "/api/users/top-workers", http.StatusOK},
		{"GET", "/api/users/me", http.StatusUnauthorized},
		{"GET", "/api/users/balance", http.StatusUnauthorized},
		{"GET", "/api/tasks/available", http.StatusUnauthorized},
		{"GET", "/api/tasks/1", http.StatusUnauthorized},
		{"GET", "/api/submissions/pending", http.StatusUnauthorized},
		{"PATCH", "/api/withdrawals/1/status", http.StatusUnauthorized},
		{"POST", "/api/payments/intent", http.StatusUnauthorized},
		{"GET", "/api/stats/admin", http.StatusUnauthorized},
		{"GET", "/api/admin/users", http.StatusUnauthorized},
		{"GET", "/api/notifications", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
