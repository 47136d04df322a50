package submissionrepo

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

func (r *Repository) Save(ctx context.Context, sub *domain.Submission) (*domain.Submission, error) {
	query := `
		INSERT INTO submissions (task_id, task_title, worker_email, worker_name, buyer_email, payable_amount, details, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, submitted_at
	`
	err := r.db.QueryRow(ctx, query,
		sub.TaskID, sub.TaskTitle, sub.WorkerEmail, sub.WorkerName, sub.BuyerEmail,
		sub.PayableAmount, sub.Details, sub.Status).
		Scan(&sub.ID, &sub.SubmittedAt)
	if err != nil {
		zap.L().Error("can't save submission", zap.Error(err))
		return nil, err
	}
	return sub, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Submission, error) {
	query := `
        SELECT id, task_id, task_title, worker_email, worker_name, buyer_email, payable_amount, details, status, submitted_at
        FROM submissions
        WHERE id = $1
    `
	var sub domain.Submission
	err := r.db.QueryRow(ctx, query, id).Scan(
		&sub.ID, &sub.TaskID, &sub.TaskTitle, &sub.WorkerEmail, &sub.WorkerName,
		&sub.BuyerEmail, &sub.PayableAmount, &sub.Details, &sub.Status, &sub.SubmittedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find submission", zap.Error(err))
		return nil, err
	}
	return &sub, nil
}

func (r *Repository) FindByWorker(ctx context.Context, email string) ([]domain.Submission, error) {
	query := `
        SELECT id, task_id, task_title, worker_email, worker_name, buyer_email, payable_amount, details, status, submitted_at
        FROM submissions
        WHERE worker_email = $1
        ORDER BY submitted_at DESC
    `
	return r.querySubmissions(ctx, query, email)
}

func (r *Repository) FindPendingByBuyer(ctx context.Context, email string) ([]domain.Submission, error) {
	query := `
        SELECT id, task_id, task_title, worker_email, worker_name, buyer_email, payable_amount, details, status, submitted_at
        FROM submissions
        WHERE buyer_email = $1 AND status = 'pending'
        ORDER BY submitted_at DESC
    `
	return r.querySubmissions(ctx, query, email)
}

func (r *Repository) querySubmissions(ctx context.Context, query string, args ...interface{}) ([]domain.Submission, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get submissions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var subs []domain.Submission
	for rows.Next() {
		var sub domain.Submission
		err := rows.Scan(
			&sub.ID, &sub.TaskID, &sub.TaskTitle, &sub.WorkerEmail, &sub.WorkerName,
			&sub.BuyerEmail, &sub.PayableAmount, &sub.Details, &sub.Status, &sub.SubmittedAt)
		if err != nil {
			zap.L().Error("can't scan submission row", zap.Error(err))
			return nil, err
		}
		subs = append(subs, sub)
	}
	return subs, nil
}

// UpdateStatusIfPending is the compare-and-swap guard for the submission state
// machine: the row moves only if it is still pending. Zero rows affected means
// a concurrent transition won.
func (r *Repository) UpdateStatusIfPending(ctx context.Context, id int, status string) (int64, error) {
	query := `
		UPDATE submissions
		SET status = $1
		WHERE id = $2 AND status = 'pending'
	`
	tag, err := r.db.Exec(ctx, query, status, id)
	if err != nil {
		zap.L().Error("can't update submission status", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *Repository) CountByWorkerAndStatus(ctx context.Context, email string) (map[string]int, error) {
	query := `
        SELECT status, COUNT(*)
        FROM submissions
        WHERE worker_email = $1
        GROUP BY status
    `
	rows, err := r.db.Query(ctx, query, email)
	if err != nil {
		zap.L().Error("can't count submissions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			zap.L().Error("can't scan submission count row", zap.Error(err))
			return nil, err
		}
		counts[status] = count
	}
	return counts, nil
}

func (r *Repository) SumApprovedByWorker(ctx context.Context, email string) (int, error) {
	query := `
        SELECT COALESCE(SUM(payable_amount), 0)
        FROM submissions
        WHERE worker_email = $1 AND status = 'approved'
    `
	var total int
	if err := r.db.QueryRow(ctx, query, email).Scan(&total); err != nil {
		zap.L().Error("can't sum worker earnings", zap.Error(err))
		return 0, err
	}
	return total, nil
}

func (r *Repository) SumApprovedByBuyer(ctx context.Context, email string) (int, error) {
	query := `
        SELECT COALESCE(SUM(payable_amount), 0)
        FROM submissions
        WHERE buyer_email = $1 AND status = 'approved'
    `
	var total int
	if err := r.db.QueryRow(ctx, query, email).Scan(&total); err != nil {
		zap.L().Error("can't sum buyer payouts", zap.Error(err))
		return 0, err
	}
	return total, nil
}
