package paymentrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/coincrafter/backend/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
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

func TestRepository_Save(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	insertQuery := `
			INSERT INTO payments (email, amount, transaction_id, coins)
			VALUES ($1, $2, $3, $4)
			RETURNING id, date
		`

	newPayment := func() *domain.Payment {
		return &domain.Payment{
			Email:         "buyer@example.com",
			Amount:        10,
			TransactionID: "txn_123",
			Coins:         150,
		}
	}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr error
	}{
		{
			name: "Save payment successfully",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(insertQuery)).
					WithArgs("buyer@example.com", float64(10), "txn_123", 150).
					WillReturnRows(pgxmock.NewRows([]string{"id", "date"}).AddRow(3, now))
			},
		},
		{
			name: "Duplicate transaction id",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(insertQuery)).
					WithArgs("buyer@example.com", float64(10), "txn_123", 150).
					WillReturnError(&pgconn.PgError{Code: "23505"})
			},
			expectErr: domain.ErrConflict,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(insertQuery)).
					WithArgs("buyer@example.com", float64(10), "txn_123", 150).
					WillReturnError(errors.New("database error"))
			},
			expectErr: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			saved, err := repo.Save(context.Background(), newPayment())
			if tt.expectErr != nil {
				assert.Error(t, err)
				assert.ErrorContains(t, err, tt.expectErr.Error())
				assert.Nil(t, saved)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 3, saved.ID)
				assert.Equal(t, now, saved.Date)
			}
		})
	}
}

func TestRepository_FindByTransactionID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	findQuery := `
        SELECT id, email, amount, transaction_id, coins, date
        FROM payments
        WHERE transaction_id = $1
    `

	t.Run("Payment found", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id", "email", "amount", "transaction_id", "coins", "date"}).
			AddRow(3, "buyer@example.com", float64(10), "txn_123", 150, now)
		mock.ExpectQuery(regexp.QuoteMeta(findQuery)).
			WithArgs("txn_123").
			WillReturnRows(rows)

		payment, err := repo.FindByTransactionID(context.Background(), "txn_123")
		assert.NoError(t, err)
		assert.Equal(t, 3, payment.ID)
		assert.Equal(t, "txn_123", payment.TransactionID)
	})

	t.Run("Payment not found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(findQuery)).
			WithArgs("txn_123").
			WillReturnError(pgx.ErrNoRows)

		payment, err := repo.FindByTransactionID(context.Background(), "txn_123")
		assert.NoError(t, err)
		assert.Nil(t, payment)
	})
}

func TestRepository_FindByEmail(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	listQuery := `
        SELECT id, email, amount, transaction_id, coins, date
        FROM payments
        WHERE email = $1
        ORDER BY date DESC
    `

	rows := pgxmock.NewRows([]string{"id", "email", "amount", "transaction_id", "coins", "date"}).
		AddRow(3, "buyer@example.com", float64(10), "txn_123", 150, now).
		AddRow(2, "buyer@example.com", float64(1), "txn_122", 10, now)
	mock.ExpectQuery(regexp.QuoteMeta(listQuery)).
		WithArgs("buyer@example.com").
		WillReturnRows(rows)

	payments, err := repo.FindByEmail(context.Background(), "buyer@example.com")
	assert.NoError(t, err)
	assert.Len(t, payments, 2)
	assert.Equal(t, "txn_123", payments[0].TransactionID)
}

func TestRepository_SumAmounts(t *testing.T) {
	repo, mock := NewMock(t)

	sumQuery := `
        SELECT COALESCE(SUM(amount), 0)
        FROM payments
    `

	mock.ExpectQuery(regexp.QuoteMeta(sumQuery)).
		WillReturnRows(pgxmock.NewRows([]string{"coalesce"}).AddRow(215.5))

	total, err := repo.SumAmounts(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 215.5, total)
}
