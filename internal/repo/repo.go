package repo

import (
	"github.com/coincrafter/backend/internal/pg"
	notificationrepo "github.com/coincrafter/backend/internal/repo/notification-repo"
	paymentrepo "github.com/coincrafter/backend/internal/repo/payment-repo"
	submissionrepo "github.com/coincrafter/backend/internal/repo/submission-repo"
	taskrepo "github.com/coincrafter/backend/internal/repo/task-repo"
	userrepo "github.com/coincrafter/backend/internal/repo/user-repo"
	withdrawalrepo "github.com/coincrafter/backend/internal/repo/withdrawal-repo"
)

// Repositories holds the concrete repo types: most of them back more than one
// service interface, so the narrowing happens at service construction.
type Repositories struct {
	UserRepo         *userrepo.Repository
	TaskRepo         *taskrepo.Repository
	SubmissionRepo   *submissionrepo.Repository
	PaymentRepo      *paymentrepo.Repository
	WithdrawalRepo   *withdrawalrepo.Repository
	NotificationRepo *notificationrepo.Repository
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		UserRepo:         userrepo.New(conn),
		TaskRepo:         taskrepo.New(conn),
		SubmissionRepo:   submissionrepo.New(conn),
		PaymentRepo:      paymentrepo.New(conn),
		WithdrawalRepo:   withdrawalrepo.New(conn),
		NotificationRepo: notificationrepo.New(conn),
	}
}
