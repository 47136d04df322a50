package service

import (
	authhandlers "github.com/coincrafter/backend/internal/handlers/auth"
	notificationhandlers "github.com/coincrafter/backend/internal/handlers/notifications"
	paymenthandlers "github.com/coincrafter/backend/internal/handlers/payments"
	statshandlers "github.com/coincrafter/backend/internal/handlers/stats"
	submissionhandlers "github.com/coincrafter/backend/internal/handlers/submissions"
	taskhandlers "github.com/coincrafter/backend/internal/handlers/tasks"
	userhandlers "github.com/coincrafter/backend/internal/handlers/users"
	withdrawalhandlers "github.com/coincrafter/backend/internal/handlers/withdrawals"

	pkgauth "github.com/coincrafter/backend/pkg/auth"

	"github.com/coincrafter/backend/internal/pg"
	"github.com/coincrafter/backend/internal/repo"
	"github.com/coincrafter/backend/internal/service/authservice"
	"github.com/coincrafter/backend/internal/service/ledgerservice"
	"github.com/coincrafter/backend/internal/service/notificationservice"
	"github.com/coincrafter/backend/internal/service/paymentservice"
	"github.com/coincrafter/backend/internal/service/statsservice"
	"github.com/coincrafter/backend/internal/service/submissionservice"
	"github.com/coincrafter/backend/internal/service/taskservice"
	"github.com/coincrafter/backend/internal/service/userservice"
	"github.com/coincrafter/backend/internal/service/withdrawalservice"
)

type Services struct {
	AuthService         authhandlers.Service
	UserService         userhandlers.Service
	LedgerService       userhandlers.Ledger
	TaskService         taskhandlers.Service
	SubmissionService   submissionhandlers.Service
	WithdrawalService   withdrawalhandlers.Service
	PaymentService      paymenthandlers.Service
	StatsService        statshandlers.Service
	NotificationService notificationhandlers.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager, intents paymentservice.IntentClient) *Services {
	ledgerService := ledgerservice.New(repo.UserRepo)
	notificationService := notificationservice.New(repo.NotificationRepo)
	authService := authservice.New(repo.UserRepo, &pkgauth.HashService{}, &pkgauth.JWTService{})
	userService := userservice.New(repo.UserRepo)
	taskService := taskservice.New(repo.TaskRepo, ledgerService, txManager)
	submissionService := submissionservice.New(repo.SubmissionRepo, repo.TaskRepo, repo.UserRepo, ledgerService, notificationService, txManager)
	withdrawalService := withdrawalservice.New(repo.WithdrawalRepo, repo.UserRepo, ledgerService, notificationService, txManager)
	paymentService := paymentservice.New(repo.PaymentRepo, ledgerService, intents, txManager)
	statsService := statsservice.New(repo.TaskRepo, repo.SubmissionRepo, repo.UserRepo, repo.PaymentRepo)

	return &Services{
		AuthService:         authService,
		UserService:         userService,
		LedgerService:       ledgerService,
		TaskService:         taskService,
		SubmissionService:   submissionService,
		WithdrawalService:   withdrawalService,
		PaymentService:      paymentService,
		StatsService:        statsService,
		NotificationService: notificationService,
	}
}
