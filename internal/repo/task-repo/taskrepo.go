package taskrepo

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

func (r *Repository) Save(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	query := `
		INSERT INTO tasks (title, detail, created_by, required_workers, payable_amount, completion_date, submission_info, image_url, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query,
		task.Title, task.Detail, task.CreatedBy, task.RequiredWorkers, task.PayableAmount,
		task.CompletionDate, task.SubmissionInfo, task.ImageURL, task.Status).
		Scan(&task.ID, &task.CreatedAt)
	if err != nil {
		zap.L().Error("can't save task", zap.Error(err))
		return nil, err
	}
	return task, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Task, error) {
	query := `
        SELECT id, title, detail, created_by, required_workers, payable_amount, completion_date, submission_info, image_url, status, created_at
        FROM tasks
        WHERE id = $1
    `
	var task domain.Task
	err := r.db.QueryRow(ctx, query, id).Scan(
		&task.ID, &task.Title, &task.Detail, &task.CreatedBy, &task.RequiredWorkers,
		&task.PayableAmount, &task.CompletionDate, &task.SubmissionInfo, &task.ImageURL,
		&task.Status, &task.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find task", zap.Error(err))
		return nil, err
	}
	return &task, nil
}

func (r *Repository) FindByCreator(ctx context.Context, email string) ([]domain.Task, error) {
	query := `
        SELECT id, title, detail, created_by, required_workers, payable_amount, completion_date, submission_info, image_url, status, created_at
        FROM tasks
        WHERE created_by = $1
        ORDER BY created_at DESC
    `
	return r.queryTasks(ctx, query, email)
}

// FindAvailable returns tasks that can still accept workers, soonest deadline
// first. The ordering is a user-facing prioritization contract.
func (r *Repository) FindAvailable(ctx context.Context) ([]domain.Task, error) {
	query := `
        SELECT id, title, detail, created_by, required_workers, payable_amount, completion_date, submission_info, image_url, status, created_at
        FROM tasks
        WHERE required_workers > 0
        ORDER BY completion_date ASC
    `
	return r.queryTasks(ctx, query)
}

func (r *Repository) queryTasks(ctx context.Context, query string, args ...interface{}) ([]domain.Task, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get tasks", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var tasks []domain.Task
	for rows.Next() {
		var task domain.Task
		err := rows.Scan(
			&task.ID, &task.Title, &task.Detail, &task.CreatedBy, &task.RequiredWorkers,
			&task.PayableAmount, &task.CompletionDate, &task.SubmissionInfo, &task.ImageURL,
			&task.Status, &task.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan task row", zap.Error(err))
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

func (r *Repository) UpdateFields(ctx context.Context, id int, title, detail, submissionInfo string) (int64, error) {
	query := `
		UPDATE tasks
		SET title = COALESCE(NULLIF($1, ''), title),
		    detail = COALESCE(NULLIF($2, ''), detail),
		    submission_info = COALESCE(NULLIF($3, ''), submission_info)
		WHERE id = $4
	`
	tag, err := r.db.Exec(ctx, query, title, detail, submissionInfo, id)
	if err != nil {
		zap.L().Error("can't update task", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *Repository) Delete(ctx context.Context, id int) (int64, error) {
	query := `
		DELETE FROM tasks
		WHERE id = $1
	`
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("can't delete task", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// AdjustRequiredWorkers applies a single atomic increment to the task's
// remaining capacity. The guard keeps capacity from going negative under
// concurrent claims.
func (r *Repository) AdjustRequiredWorkers(ctx context.Context, id, delta int) (int64, error) {
	query := `
		UPDATE tasks
		SET required_workers = required_workers + $1
		WHERE id = $2 AND required_workers + $1 >= 0
	`
	tag, err := r.db.Exec(ctx, query, delta, id)
	if err != nil {
		zap.L().Error("can't adjust required workers", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// CompleteIfExhausted marks a pending task completed once its capacity is gone.
func (r *Repository) CompleteIfExhausted(ctx context.Context, id int) (int64, error) {
	query := `
		UPDATE tasks
		SET status = 'completed'
		WHERE id = $1 AND required_workers = 0 AND status = 'pending'
	`
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("can't complete task", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *Repository) CountByCreator(ctx context.Context, email string) (int, error) {
	query := `
        SELECT COUNT(*)
        FROM tasks
        WHERE created_by = $1
    `
	var count int
	if err := r.db.QueryRow(ctx, query, email).Scan(&count); err != nil {
		zap.L().Error("can't count tasks", zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (r *Repository) SumPendingSlotsByCreator(ctx context.Context, email string) (int, error) {
	query := `
        SELECT COALESCE(SUM(required_workers), 0)
        FROM tasks
        WHERE created_by = $1
    `
	var total int
	if err := r.db.QueryRow(ctx, query, email).Scan(&total); err != nil {
		zap.L().Error("can't sum pending slots", zap.Error(err))
		return 0, err
	}
	return total, nil
}
