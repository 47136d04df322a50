package paymentrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/coincrafter/backend/internal/domain"
	"github.com/coincrafter/backend/internal/pg"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

const uniqueViolation = "23505"

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// Save inserts a completed charge record. A duplicate transaction id maps to
// ErrConflict so retried webhooks cannot double-credit.
func (r *Repository) Save(ctx context.Context, payment *domain.Payment) (*domain.Payment, error) {
	query := `
		INSERT INTO payments (email, amount, transaction_id, coins)
		VALUES ($1, $2, $3, $4)
		RETURNING id, date
	`
	err := r.db.QueryRow(ctx, query, payment.Email, payment.Amount, payment.TransactionID, payment.Coins).
		Scan(&payment.ID, &payment.Date)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, fmt.Errorf("transaction %s already recorded: %w", payment.TransactionID, domain.ErrConflict)
		}
		zap.L().Error("can't save payment", zap.Error(err))
		return nil, err
	}
	return payment, nil
}

func (r *Repository) FindByTransactionID(ctx context.Context, transactionID string) (*domain.Payment, error) {
	query := `
        SELECT id, email, amount, transaction_id, coins, date
        FROM payments
        WHERE transaction_id = $1
    `
	var payment domain.Payment
	err := r.db.QueryRow(ctx, query, transactionID).Scan(
		&payment.ID, &payment.Email, &payment.Amount, &payment.TransactionID, &payment.Coins, &payment.Date)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find payment", zap.Error(err))
		return nil, err
	}
	return &payment, nil
}

func (r *Repository) FindByEmail(ctx context.Context, email string) ([]domain.Payment, error) {
	query := `
        SELECT id, email, amount, transaction_id, coins, date
        FROM payments
        WHERE email = $1
        ORDER BY date DESC
    `
	rows, err := r.db.Query(ctx, query, email)
	if err != nil {
		zap.L().Error("can't get payments", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		var payment domain.Payment
		err := rows.Scan(&payment.ID, &payment.Email, &payment.Amount, &payment.TransactionID, &payment.Coins, &payment.Date)
		if err != nil {
			zap.L().Error("can't scan payment row", zap.Error(err))
			return nil, err
		}
		payments = append(payments, payment)
	}
	return payments, nil
}

func (r *Repository) SumAmounts(ctx context.Context) (float64, error) {
	query := `
        SELECT COALESCE(SUM(amount), 0)
        FROM payments
    `
	var total float64
	if err := r.db.QueryRow(ctx, query).Scan(&total); err != nil {
		zap.L().Error("can't sum payments", zap.Error(err))
		return 0, err
	}
	return total, nil
}
