package submissionservice

import (
	"context"
	"fmt"

	"github.com/coincrafter/backend/internal/domain"
	"github.com/coincrafter/backend/internal/pg"
	"go.uber.org/zap"
)

//go:generate mockgen -source=submissionservice.go -destination=mock_submissionservice.go -package=submissionservice

type SubmissionRepo interface {
	Save(ctx context.Context, sub *domain.Submission) (*domain.Submission, error)
	FindByID(ctx context.Context, id int) (*domain.Submission, error)
	FindByWorker(ctx context.Context, email string) ([]domain.Submission, error)
	FindPendingByBuyer(ctx context.Context, email string) ([]domain.Submission, error)
	UpdateStatusIfPending(ctx context.Context, id int, status string) (int64, error)
}

type TaskRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Task, error)
	AdjustRequiredWorkers(ctx context.Context, id, delta int) (int64, error)
	CompleteIfExhausted(ctx context.Context, id int) (int64, error)
}

type UserRepo interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindEmailsByRole(ctx context.Context, role string) ([]string, error)
}

type Ledger interface {
	Credit(ctx context.Context, email string, amount int) (int, error)
}

type Notifier interface {
	Notify(ctx context.Context, message, toEmail, actionRoute string)
}

type Service struct {
	submissionRepo SubmissionRepo
	taskRepo       TaskRepo
	userRepo       UserRepo
	ledger         Ledger
	notifier       Notifier
	txManager      pg.TXManager
}

func New(submissionRepo SubmissionRepo, taskRepo TaskRepo, userRepo UserRepo, ledger Ledger, notifier Notifier, txManager pg.TXManager) *Service {
	return &Service{
		submissionRepo: submissionRepo,
		taskRepo:       taskRepo,
		userRepo:       userRepo,
		ledger:         ledger,
		notifier:       notifier,
		txManager:      txManager,
	}
}

// Submit claims one of the task's open slots and records a pending submission.
// The claim is an atomic conditional decrement, so concurrent workers cannot
// oversubscribe a task. No coins move here: the escrow has been held since
// task creation.
func (s *Service) Submit(ctx context.Context, taskID int, workerEmail, details string) (*domain.Submission, error) {
	var sub *domain.Submission
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		task, err := s.taskRepo.FindByID(ctx, taskID)
		if err != nil {
			return err
		}
		if task == nil {
			return fmt.Errorf("task %d: %w", taskID, domain.ErrNotFound)
		}

		worker, err := s.userRepo.FindByEmail(ctx, workerEmail)
		if err != nil {
			return err
		}
		if worker == nil {
			return fmt.Errorf("worker %s: %w", workerEmail, domain.ErrUserNotFound)
		}

		claimed, err := s.taskRepo.AdjustRequiredWorkers(ctx, taskID, -1)
		if err != nil {
			return err
		}
		if claimed == 0 {
			return fmt.Errorf("task %d has no remaining worker slots: %w", taskID, domain.ErrConflict)
		}

		sub, err = s.submissionRepo.Save(ctx, &domain.Submission{
			TaskID:        taskID,
			TaskTitle:     task.Title,
			WorkerEmail:   workerEmail,
			WorkerName:    worker.Name,
			BuyerEmail:    task.CreatedBy,
			PayableAmount: task.PayableAmount,
			Details:       details,
			Status:        domain.SubmissionStatusPending,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	s.notifier.Notify(ctx,
		fmt.Sprintf("%s submitted work for your task %q", sub.WorkerName, sub.TaskTitle),
		sub.BuyerEmail, "/dashboard/task-review")

	zap.L().Info("submission created", zap.Int("submissionID", sub.ID), zap.Int("taskID", taskID), zap.String("worker", workerEmail))
	return sub, nil
}

// Approve moves a pending submission to approved and credits the worker by the
// submission's payable amount. The status flip is a compare-and-swap and runs
// in the same transaction as the credit, so two concurrent approvals cannot
// both pay out and a failed credit leaves the submission pending.
func (s *Service) Approve(ctx context.Context, submissionID int, actorEmail string) error {
	var sub *domain.Submission
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		sub, err = s.authorize(ctx, submissionID, actorEmail)
		if err != nil {
			return err
		}
		if !sub.CanTransition(domain.SubmissionStatusApproved) {
			return fmt.Errorf("submission %d is %s: %w", submissionID, sub.Status, domain.ErrInvalidTransition)
		}

		moved, err := s.submissionRepo.UpdateStatusIfPending(ctx, submissionID, domain.SubmissionStatusApproved)
		if err != nil {
			return err
		}
		if moved == 0 {
			return fmt.Errorf("submission %d already decided: %w", submissionID, domain.ErrInvalidTransition)
		}

		if _, err := s.ledger.Credit(ctx, sub.WorkerEmail, sub.PayableAmount); err != nil {
			return err
		}
		if _, err := s.taskRepo.CompleteIfExhausted(ctx, sub.TaskID); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.notifier.Notify(ctx,
		fmt.Sprintf("You have earned %d coins from %s for %q", sub.PayableAmount, sub.BuyerEmail, sub.TaskTitle),
		sub.WorkerEmail, "/dashboard/worker-home")
	s.notifier.Notify(ctx,
		fmt.Sprintf("You approved %s's submission for %q", sub.WorkerName, sub.TaskTitle),
		sub.BuyerEmail, "/dashboard/task-review")
	s.notifyAdmins(ctx,
		fmt.Sprintf("%s approved a submission for %q, %d coins paid to %s", sub.BuyerEmail, sub.TaskTitle, sub.PayableAmount, sub.WorkerEmail),
		"/dashboard/admin-home")

	zap.L().Info("submission approved", zap.Int("submissionID", submissionID), zap.String("worker", sub.WorkerEmail), zap.Int("payable", sub.PayableAmount))
	return nil
}

// Reject moves a pending submission to rejected and frees the claimed slot by
// incrementing the task's required_workers. No coins move: the escrow stays
// with the task for a future approval or a delete-time refund.
func (s *Service) Reject(ctx context.Context, submissionID int, actorEmail string) error {
	var sub *domain.Submission
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		sub, err = s.authorize(ctx, submissionID, actorEmail)
		if err != nil {
			return err
		}
		if !sub.CanTransition(domain.SubmissionStatusRejected) {
			return fmt.Errorf("submission %d is %s: %w", submissionID, sub.Status, domain.ErrInvalidTransition)
		}

		moved, err := s.submissionRepo.UpdateStatusIfPending(ctx, submissionID, domain.SubmissionStatusRejected)
		if err != nil {
			return err
		}
		if moved == 0 {
			return fmt.Errorf("submission %d already decided: %w", submissionID, domain.ErrInvalidTransition)
		}

		if _, err := s.taskRepo.AdjustRequiredWorkers(ctx, sub.TaskID, 1); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.notifier.Notify(ctx,
		fmt.Sprintf("Your submission for %q was rejected by %s", sub.TaskTitle, sub.BuyerEmail),
		sub.WorkerEmail, "/dashboard/my-submissions")
	s.notifier.Notify(ctx,
		fmt.Sprintf("You rejected %s's submission for %q", sub.WorkerName, sub.TaskTitle),
		sub.BuyerEmail, "/dashboard/task-review")
	s.notifyAdmins(ctx,
		fmt.Sprintf("%s rejected a submission for %q", sub.BuyerEmail, sub.TaskTitle),
		"/dashboard/admin-home")

	zap.L().Info("submission rejected", zap.Int("submissionID", submissionID), zap.Int("taskID", sub.TaskID))
	return nil
}

// authorize loads the submission and verifies the actor owns the parent task.
// The buyer email stamped on the submission is cross-checked against the task
// record when the task still exists.
func (s *Service) authorize(ctx context.Context, submissionID int, actorEmail string) (*domain.Submission, error) {
	sub, err := s.submissionRepo.FindByID(ctx, submissionID)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, fmt.Errorf("submission %d: %w", submissionID, domain.ErrNotFound)
	}
	if sub.BuyerEmail != actorEmail {
		return nil, fmt.Errorf("submission %d does not belong to %s: %w", submissionID, actorEmail, domain.ErrForbidden)
	}

	task, err := s.taskRepo.FindByID(ctx, sub.TaskID)
	if err != nil {
		return nil, err
	}
	if task != nil && task.CreatedBy != actorEmail {
		return nil, fmt.Errorf("task %d is not owned by %s: %w", sub.TaskID, actorEmail, domain.ErrForbidden)
	}
	return sub, nil
}

func (s *Service) notifyAdmins(ctx context.Context, message, actionRoute string) {
	admins, err := s.userRepo.FindEmailsByRole(ctx, domain.RoleAdmin)
	if err != nil {
		zap.L().Error("can't resolve admin recipients", zap.Error(err))
		return
	}
	for _, email := range admins {
		s.notifier.Notify(ctx, message, email, actionRoute)
	}
}

func (s *Service) ListMine(ctx context.Context, workerEmail string) ([]domain.Submission, error) {
	subs, err := s.submissionRepo.FindByWorker(ctx, workerEmail)
	if err != nil {
		zap.L().Error("failed to list worker submissions", zap.Error(err))
		return nil, err
	}
	return subs, nil
}

func (s *Service) ListPendingForBuyer(ctx context.Context, buyerEmail string) ([]domain.Submission, error) {
	subs, err := s.submissionRepo.FindPendingByBuyer(ctx, buyerEmail)
	if err != nil {
		zap.L().Error("failed to list pending submissions", zap.Error(err))
		return nil, err
	}
	return subs, nil
}
