package withdrawalrepo

import (
	"context"
	"errors"

	"github.com/coincrafter/backend/internal/domain"
	"github.com/coincrafter/backend/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Save(ctx context.Context, withdrawal *domain.Withdrawal) (*domain.Withdrawal, error) {
	query := `
		INSERT INTO withdrawals (worker_email, worker_name, withdrawal_coin, withdrawal_amount, payment_system, account_number, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, requested_at
	`
	err := r.db.QueryRow(ctx, query,
		withdrawal.WorkerEmail, withdrawal.WorkerName, withdrawal.Coins, withdrawal.Amount,
		withdrawal.PaymentSystem, withdrawal.AccountNumber, withdrawal.Status).
		Scan(&withdrawal.ID, &withdrawal.RequestedAt)
	if err != nil {
		zap.L().Error("can't save withdrawal", zap.Error(err))
		return nil, err
	}
	return withdrawal, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Withdrawal, error) {
	query := `
        SELECT id, worker_email, worker_name, withdrawal_coin, withdrawal_amount, payment_system, account_number, status, requested_at
        FROM withdrawals
        WHERE id = $1
    `
	var wd domain.Withdrawal
	err := r.db.QueryRow(ctx, query, id).Scan(
		&wd.ID, &wd.WorkerEmail, &wd.WorkerName, &wd.Coins, &wd.Amount,
		&wd.PaymentSystem, &wd.AccountNumber, &wd.Status, &wd.RequestedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find withdrawal", zap.Error(err))
		return nil, err
	}
	return &wd, nil
}

func (r *Repository) FindByWorker(ctx context.Context, email string) ([]domain.Withdrawal, error) {
	query := `
        SELECT id, worker_email, worker_name, withdrawal_coin, withdrawal_amount, payment_system, account_number, status, requested_at
        FROM withdrawals
        WHERE worker_email = $1
        ORDER BY requested_at DESC
    `
	return r.queryWithdrawals(ctx, query, email)
}

func (r *Repository) FindByStatus(ctx context.Context, status string) ([]domain.Withdrawal, error) {
	query := `
        SELECT id, worker_email, worker_name, withdrawal_coin, withdrawal_amount, payment_system, account_number, status, requested_at
        FROM withdrawals
        WHERE status = $1
        ORDER BY requested_at ASC
    `
	return r.queryWithdrawals(ctx, query, status)
}

func (r *Repository) queryWithdrawals(ctx context.Context, query string, args ...interface{}) ([]domain.Withdrawal, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get withdrawals", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var withdrawals []domain.Withdrawal
	for rows.Next() {
		var wd domain.Withdrawal
		err := rows.Scan(
			&wd.ID, &wd.WorkerEmail, &wd.WorkerName, &wd.Coins, &wd.Amount,
			&wd.PaymentSystem, &wd.AccountNumber, &wd.Status, &wd.RequestedAt)
		if err != nil {
			zap.L().Error("can't scan withdrawal row", zap.Error(err))
			return nil, err
		}
		withdrawals = append(withdrawals, wd)
	}
	return withdrawals, nil
}

// UpdateStatusIfPending moves the withdrawal only if it is still pending, so
// two concurrent approvals cannot both debit the worker.
func (r *Repository) UpdateStatusIfPending(ctx context.Context, id int, status string) (int64, error) {
	query := `
		UPDATE withdrawals
		SET status = $1
		WHERE id = $2 AND status = 'pending'
	`
	tag, err := r.db.Exec(ctx, query, status, id)
	if err != nil {
		zap.L().Error("can't update withdrawal status", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}
