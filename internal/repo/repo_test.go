package repo

import (
	"testing"

	notificationrepo "github.com/coincrafter/backend/internal/repo/notification-repo"
	paymentrepo "github.com/coincrafter/backend/internal/repo/payment-repo"
	submissionrepo "github.com/coincrafter/backend/internal/repo/submission-repo"
	taskrepo "github.com/coincrafter/backend/internal/repo/task-repo"
	userrepo "github.com/coincrafter/backend/internal/repo/user-repo"
	withdrawalrepo "github.com/coincrafter/backend/internal/repo/withdrawal-repo"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repositories, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestNew(t *testing.T) {
	repo, mock := NewMock(t)

	assert.NotNil(t, repo.UserRepo)
	assert.NotNil(t, repo.TaskRepo)
	assert.NotNil(t, repo.SubmissionRepo)
	assert.NotNil(t, repo.PaymentRepo)
	assert.NotNil(t, repo.WithdrawalRepo)
	assert.NotNil(t, repo.NotificationRepo)

	assert.IsType(t, &userrepo.Repository{}, repo.UserRepo)
	assert.IsType(t, &taskrepo.Repository{}, repo.TaskRepo)
	assert.IsType(t, &submissionrepo.Repository{}, repo.SubmissionRepo)
	assert.IsType(t, &paymentrepo.Repository{}, repo.PaymentRepo)
	assert.IsType(t, &withdrawalrepo.Repository{}, repo.WithdrawalRepo)
	assert.IsType(t, &notificationrepo.Repository{}, repo.NotificationRepo)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}
