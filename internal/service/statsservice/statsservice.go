package statsservice

import (
	"context"

	"github.com/coincrafter/backend/internal/domain"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=statsservice.go -destination=mock_statsservice.go -package=statsservice

type TaskRepo interface {
	CountByCreator(ctx context.Context, email string) (int, error)
	SumPendingSlotsByCreator(ctx context.Context, email string) (int, error)
}

type SubmissionRepo interface {
	CountByWorkerAndStatus(ctx context.Context, email string) (map[string]int, error)
	SumApprovedByWorker(ctx context.Context, email string) (int, error)
	SumApprovedByBuyer(ctx context.Context, email string) (int, error)
}

type UserRepo interface {
	CountByRole(ctx context.Context) (map[string]int, error)
	SumCoins(ctx context.Context) (int, error)
}

type PaymentRepo interface {
	SumAmounts(ctx context.Context) (float64, error)
}

type BuyerStats struct {
	TaskCount    int
	PendingSlots int
	TotalPaid    int
}

type WorkerStats struct {
	Total    int
	Pending  int
	Approved int
	Rejected int
	Earnings int
}

type AdminStats struct {
	BuyerCount    int
	WorkerCount   int
	AdminCount    int
	TotalCoins    int
	TotalPayments float64
}

type Service struct {
	taskRepo       TaskRepo
	submissionRepo SubmissionRepo
	userRepo       UserRepo
	paymentRepo    PaymentRepo
}

func New(taskRepo TaskRepo, submissionRepo SubmissionRepo, userRepo UserRepo, paymentRepo PaymentRepo) *Service {
	return &Service{
		taskRepo:       taskRepo,
		submissionRepo: submissionRepo,
		userRepo:       userRepo,
		paymentRepo:    paymentRepo,
	}
}

func (s *Service) BuyerStats(ctx context.Context, email string) (*BuyerStats, error) {
	stats := &BuyerStats{}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		stats.TaskCount, err = s.taskRepo.CountByCreator(ctx, email)
		return err
	})
	g.Go(func() error {
		var err error
		stats.PendingSlots, err = s.taskRepo.SumPendingSlotsByCreator(ctx, email)
		return err
	})
	g.Go(func() error {
		var err error
		stats.TotalPaid, err = s.submissionRepo.SumApprovedByBuyer(ctx, email)
		return err
	})

	if err := g.Wait(); err != nil {
		zap.L().Error("failed to compute buyer stats", zap.Error(err))
		return nil, err
	}
	return stats, nil
}

func (s *Service) WorkerStats(ctx context.Context, email string) (*WorkerStats, error) {
	counts, err := s.submissionRepo.CountByWorkerAndStatus(ctx, email)
	if err != nil {
		zap.L().Error("failed to count submissions", zap.Error(err))
		return nil, err
	}
	earnings, err := s.submissionRepo.SumApprovedByWorker(ctx, email)
	if err != nil {
		zap.L().Error("failed to sum earnings", zap.Error(err))
		return nil, err
	}

	stats := &WorkerStats{
		Pending:  counts[domain.SubmissionStatusPending],
		Approved: counts[domain.SubmissionStatusApproved],
		Rejected: counts[domain.SubmissionStatusRejected],
		Earnings: earnings,
	}
	stats.Total = stats.Pending + stats.Approved + stats.Rejected
	return stats, nil
}

func (s *Service) AdminStats(ctx context.Context) (*AdminStats, error) {
	stats := &AdminStats{}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		counts, err := s.userRepo.CountByRole(ctx)
		if err != nil {
			return err
		}
		stats.BuyerCount = counts[domain.RoleBuyer]
		stats.WorkerCount = counts[domain.RoleWorker]
		stats.AdminCount = counts[domain.RoleAdmin]
		return nil
	})
	g.Go(func() error {
		var err error
		stats.TotalCoins, err = s.userRepo.SumCoins(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		stats.TotalPayments, err = s.paymentRepo.SumAmounts(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		zap.L().Error("failed to compute admin stats", zap.Error(err))
		return nil, err
	}
	return stats, nil
}
