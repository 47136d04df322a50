package taskservice

import (
	"context"
	"fmt"

	"github.com/coincrafter/backend/internal/domain"
	"github.com/coincrafter/backend/internal/pg"
	"go.uber.org/zap"
)

//go:generate mockgen -source=taskservice.go -destination=mock_taskservice.go -package=taskservice

type TaskRepo interface {
	Save(ctx context.Context, task *domain.Task) (*domain.Task, error)
	FindByID(ctx context.Context, id int) (*domain.Task, error)
	FindByCreator(ctx context.Context, email string) ([]domain.Task, error)
	FindAvailable(ctx context.Context) ([]domain.Task, error)
	UpdateFields(ctx context.Context, id int, title, detail, submissionInfo string) (int64, error)
	Delete(ctx context.Context, id int) (int64, error)
}

type Ledger interface {
	Credit(ctx context.Context, email string, amount int) (int, error)
	Debit(ctx context.Context, email string, amount int) (int, error)
}

type Service struct {
	taskRepo  TaskRepo
	ledger    Ledger
	txManager pg.TXManager
}

func New(taskRepo TaskRepo, ledger Ledger, txManager pg.TXManager) *Service {
	return &Service{
		taskRepo:  taskRepo,
		ledger:    ledger,
		txManager: txManager,
	}
}

// Create debits the buyer by required_workers * payable_amount and inserts the
// task. Debit and insert share one transaction: an insufficient balance aborts
// with no task persisted, and a failed insert rolls the debit back.
func (s *Service) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	cost := task.RequiredWorkers * task.PayableAmount
	task.Status = domain.TaskStatusPending

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := s.ledger.Debit(ctx, task.CreatedBy, cost); err != nil {
			return err
		}
		if _, err := s.taskRepo.Save(ctx, task); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		zap.L().Error("can't create task", zap.String("buyer", task.CreatedBy), zap.Int("cost", cost), zap.Error(err))
		return nil, err
	}

	zap.L().Info("task created", zap.Int("taskID", task.ID), zap.String("buyer", task.CreatedBy), zap.Int("escrow", cost))
	return task, nil
}

func (s *Service) Update(ctx context.Context, taskID int, requesterEmail, title, detail, submissionInfo string) (int64, error) {
	task, err := s.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		return 0, err
	}
	if task == nil {
		return 0, fmt.Errorf("task %d: %w", taskID, domain.ErrNotFound)
	}
	if task.CreatedBy != requesterEmail {
		return 0, fmt.Errorf("task %d is not owned by %s: %w", taskID, requesterEmail, domain.ErrForbidden)
	}

	updated, err := s.taskRepo.UpdateFields(ctx, taskID, title, detail, submissionInfo)
	if err != nil {
		zap.L().Error("can't update task", zap.Int("taskID", taskID), zap.Error(err))
		return 0, err
	}
	return updated, nil
}

// Delete removes the task and, unless it already completed, refunds the
// remaining escrow (required_workers * payable_amount) to its creator. The
// refund always goes to the creator even when an admin deletes.
func (s *Service) Delete(ctx context.Context, taskID int, requesterEmail, requesterRole string) (int, error) {
	var refund int
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		task, err := s.taskRepo.FindByID(ctx, taskID)
		if err != nil {
			return err
		}
		if task == nil {
			return fmt.Errorf("task %d: %w", taskID, domain.ErrNotFound)
		}
		if requesterRole != domain.RoleAdmin && task.CreatedBy != requesterEmail {
			return fmt.Errorf("task %d is not owned by %s: %w", taskID, requesterEmail, domain.ErrForbidden)
		}

		if _, err := s.taskRepo.Delete(ctx, taskID); err != nil {
			return err
		}
		if task.Status != domain.TaskStatusCompleted {
			refund = task.Escrow()
			if refund > 0 {
				if _, err := s.ledger.Credit(ctx, task.CreatedBy, refund); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	zap.L().Info("task deleted", zap.Int("taskID", taskID), zap.Int("refund", refund))
	return refund, nil
}

func (s *Service) Get(ctx context.Context, taskID int) (*domain.Task, error) {
	task, err := s.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, fmt.Errorf("task %d: %w", taskID, domain.ErrNotFound)
	}
	return task, nil
}

func (s *Service) ListAvailable(ctx context.Context) ([]domain.Task, error) {
	tasks, err := s.taskRepo.FindAvailable(ctx)
	if err != nil {
		zap.L().Error("failed to list available tasks", zap.Error(err))
		return nil, err
	}
	return tasks, nil
}

func (s *Service) ListMine(ctx context.Context, buyerEmail string) ([]domain.Task, error) {
	tasks, err := s.taskRepo.FindByCreator(ctx, buyerEmail)
	if err != nil {
		zap.L().Error("failed to list buyer tasks", zap.Error(err))
		return nil, err
	}
	return tasks, nil
}
