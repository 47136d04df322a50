package withdrawalservice

import (
	"context"
	"fmt"

	"github.com/coincrafter/backend/internal/domain"
	"github.com/coincrafter/backend/internal/pg"
	"go.uber.org/zap"
)

//go:generate mockgen -source=withdrawalservice.go -destination=mock_withdrawalservice.go -package=withdrawalservice

// CoinsPerUnit is the cash-out rate: 20 coins redeem for 1 currency unit.
const CoinsPerUnit = 20

type WithdrawalRepo interface {
	Save(ctx context.Context, withdrawal *domain.Withdrawal) (*domain.Withdrawal, error)
	FindByID(ctx context.Context, id int) (*domain.Withdrawal, error)
	FindByWorker(ctx context.Context, email string) ([]domain.Withdrawal, error)
	FindByStatus(ctx context.Context, status string) ([]domain.Withdrawal, error)
	UpdateStatusIfPending(ctx context.Context, id int, status string) (int64, error)
}

type UserRepo interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}

type Ledger interface {
	Debit(ctx context.Context, email string, amount int) (int, error)
}

type Notifier interface {
	Notify(ctx context.Context, message, toEmail, actionRoute string)
}

type Service struct {
	withdrawalRepo WithdrawalRepo
	userRepo       UserRepo
	ledger         Ledger
	notifier       Notifier
	txManager      pg.TXManager
}

func New(withdrawalRepo WithdrawalRepo, userRepo UserRepo, ledger Ledger, notifier Notifier, txManager pg.TXManager) *Service {
	return &Service{
		withdrawalRepo: withdrawalRepo,
		userRepo:       userRepo,
		ledger:         ledger,
		notifier:       notifier,
		txManager:      txManager,
	}
}

// Request records a pending withdrawal. Coins are not debited until an admin
// approves, but a request beyond the current balance is rejected up front.
func (s *Service) Request(ctx context.Context, workerEmail string, coins int, paymentSystem, accountNumber string) (*domain.Withdrawal, error) {
	worker, err := s.userRepo.FindByEmail(ctx, workerEmail)
	if err != nil {
		return nil, err
	}
	if worker == nil {
		return nil, fmt.Errorf("worker %s: %w", workerEmail, domain.ErrUserNotFound)
	}
	if coins > worker.Coins {
		return nil, fmt.Errorf("requested %d coins, have %d: %w", coins, worker.Coins, domain.ErrInsufficientBalance)
	}

	withdrawal, err := s.withdrawalRepo.Save(ctx, &domain.Withdrawal{
		WorkerEmail:   workerEmail,
		WorkerName:    worker.Name,
		Coins:         coins,
		Amount:        float64(coins) / CoinsPerUnit,
		PaymentSystem: paymentSystem,
		AccountNumber: accountNumber,
		Status:        domain.WithdrawalStatusPending,
	})
	if err != nil {
		zap.L().Error("can't create withdrawal record", zap.Error(err))
		return nil, err
	}

	zap.L().Info("withdrawal requested", zap.Int("withdrawalID", withdrawal.ID), zap.String("worker", workerEmail), zap.Int("coins", coins))
	return withdrawal, nil
}

// Approve debits the worker and marks the withdrawal approved in one
// transaction. If the worker's balance no longer covers the amount, the
// debit fails, the status flip rolls back, and the withdrawal stays pending.
func (s *Service) Approve(ctx context.Context, withdrawalID int, adminEmail string) error {
	var wd *domain.Withdrawal
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		wd, err = s.withdrawalRepo.FindByID(ctx, withdrawalID)
		if err != nil {
			return err
		}
		if wd == nil {
			return fmt.Errorf("withdrawal %d: %w", withdrawalID, domain.ErrNotFound)
		}
		if !wd.CanTransition(domain.WithdrawalStatusApproved) {
			return fmt.Errorf("withdrawal %d is %s: %w", withdrawalID, wd.Status, domain.ErrInvalidTransition)
		}

		moved, err := s.withdrawalRepo.UpdateStatusIfPending(ctx, withdrawalID, domain.WithdrawalStatusApproved)
		if err != nil {
			return err
		}
		if moved == 0 {
			return fmt.Errorf("withdrawal %d already decided: %w", withdrawalID, domain.ErrInvalidTransition)
		}

		if _, err := s.ledger.Debit(ctx, wd.WorkerEmail, wd.Coins); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.notifier.Notify(ctx,
		fmt.Sprintf("Your withdrawal of %d coins has been approved", wd.Coins),
		wd.WorkerEmail, "/dashboard/withdrawals")
	s.notifier.Notify(ctx,
		fmt.Sprintf("Withdrawal %d approved, %d coins paid out to %s", wd.ID, wd.Coins, wd.WorkerEmail),
		adminEmail, "/dashboard/admin-home")

	zap.L().Info("withdrawal approved", zap.Int("withdrawalID", withdrawalID), zap.String("worker", wd.WorkerEmail), zap.Int("coins", wd.Coins))
	return nil
}

func (s *Service) ListMine(ctx context.Context, workerEmail string) ([]domain.Withdrawal, error) {
	withdrawals, err := s.withdrawalRepo.FindByWorker(ctx, workerEmail)
	if err != nil {
		zap.L().Error("failed to fetch withdrawals", zap.Error(err))
		return nil, err
	}
	return withdrawals, nil
}

func (s *Service) ListPending(ctx context.Context) ([]domain.Withdrawal, error) {
	withdrawals, err := s.withdrawalRepo.FindByStatus(ctx, domain.WithdrawalStatusPending)
	if err != nil {
		zap.L().Error("failed to fetch pending withdrawals", zap.Error(err))
		return nil, err
	}
	return withdrawals, nil
}
