package withdrawalrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/coincrafter/backend/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

var withdrawalColumns = []string{"id", "worker_email", "worker_name", "withdrawal_coin", "withdrawal_amount", "payment_system", "account_number", "status", "requested_at"}

func TestRepository_Save(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	insertQuery := `
			INSERT INTO withdrawals (worker_email, worker_name, withdrawal_coin, withdrawal_amount, payment_system, account_number, status)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id, requested_at
		`

	wd := &domain.Withdrawal{
		WorkerEmail:   "worker@example.com",
		WorkerName:    "Jane",
		Coins:         100,
		Amount:        5,
		PaymentSystem: "paypal",
		AccountNumber: "acct-123",
		Status:        domain.WithdrawalStatusPending,
	}

	t.Run("Save withdrawal successfully", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(insertQuery)).
			WithArgs("worker@example.com", "Jane", 100, float64(5), "paypal", "acct-123", domain.WithdrawalStatusPending).
			WillReturnRows(pgxmock.NewRows([]string{"id", "requested_at"}).AddRow(9, now))

		saved, err := repo.Save(context.Background(), wd)
		assert.NoError(t, err)
		assert.Equal(t, 9, saved.ID)
		assert.Equal(t, now, saved.RequestedAt)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(insertQuery)).
			WithArgs("worker@example.com", "Jane", 100, float64(5), "paypal", "acct-123", domain.WithdrawalStatusPending).
			WillReturnError(errors.New("database error"))

		saved, err := repo.Save(context.Background(), wd)
		assert.Error(t, err)
		assert.Nil(t, saved)
	})
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	findQuery := `
        SELECT id, worker_email, worker_name, withdrawal_coin, withdrawal_amount, payment_system, account_number, status, requested_at
        FROM withdrawals
        WHERE id = $1
    `

	t.Run("Withdrawal found", func(t *testing.T) {
		rows := pgxmock.NewRows(withdrawalColumns).
			AddRow(9, "worker@example.com", "Jane", 100, float64(5), "paypal", "acct-123", "pending", now)
		mock.ExpectQuery(regexp.QuoteMeta(findQuery)).
			WithArgs(9).
			WillReturnRows(rows)

		wd, err := repo.FindByID(context.Background(), 9)
		assert.NoError(t, err)
		assert.Equal(t, 9, wd.ID)
		assert.Equal(t, 100, wd.Coins)
	})

	t.Run("Withdrawal not found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(findQuery)).
			WithArgs(9).
			WillReturnError(pgx.ErrNoRows)

		wd, err := repo.FindByID(context.Background(), 9)
		assert.NoError(t, err)
		assert.Nil(t, wd)
	})
}

func TestRepository_FindByStatus(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	statusQuery := `
        SELECT id, worker_email, worker_name, withdrawal_coin, withdrawal_amount, payment_system, account_number, status, requested_at
        FROM withdrawals
        WHERE status = $1
        ORDER BY requested_at ASC
    `

	rows := pgxmock.NewRows(withdrawalColumns).
		AddRow(9, "worker@example.com", "Jane", 100, float64(5), "paypal", "acct-123", "pending", now)
	mock.ExpectQuery(regexp.QuoteMeta(statusQuery)).
		WithArgs("pending").
		WillReturnRows(rows)

	withdrawals, err := repo.FindByStatus(context.Background(), "pending")
	assert.NoError(t, err)
	assert.Len(t, withdrawals, 1)
	assert.Equal(t, "pending", withdrawals[0].Status)
}

func TestRepository_UpdateStatusIfPending(t *testing.T) {
	repo, mock := NewMock(t)

	updateQuery := `
			UPDATE withdrawals
			SET status = $1
			WHERE id = $2 AND status = 'pending'
		`

	tests := []struct {
		name         string
		mockSetup    func()
		expectErr    bool
		rowsAffected int64
	}{
		{
			name: "Pending withdrawal moves",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(updateQuery)).
					WithArgs("approved", 9).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			rowsAffected: 1,
		},
		{
			name: "Already decided",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(updateQuery)).
					WithArgs("approved", 9).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			rowsAffected: 0,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(updateQuery)).
					WithArgs("approved", 9).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			affected, err := repo.UpdateStatusIfPending(context.Background(), 9, "approved")
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.rowsAffected, affected)
			}
		})
	}
}
