package ledgerservice

import (
	"context"
	"fmt"

	"github.com/coincrafter/backend/internal/domain"
	"go.uber.org/zap"
)

//go:generate mockgen -source=ledgerservice.go -destination=mock_ledgerservice.go -package=ledgerservice

type LedgerRepo interface {
	AdjustCoins(ctx context.Context, email string, delta int) (int, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}

// Service is the coin ledger. Every financial transition goes through Credit
// or Debit, which the repository applies as a single atomic increment with a
// non-negative guard. The ledger never reads a balance to write it back.
type Service struct {
	repo LedgerRepo
}

func New(repo LedgerRepo) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) Credit(ctx context.Context, email string, amount int) (int, error) {
	if amount <= 0 {
		return 0, fmt.Errorf("%w: credit amount must be positive", domain.ErrValidation)
	}
	coins, err := s.repo.AdjustCoins(ctx, email, amount)
	if err != nil {
		zap.L().Error("failed to credit coins", zap.String("email", email), zap.Int("amount", amount), zap.Error(err))
		return 0, err
	}
	return coins, nil
}

func (s *Service) Debit(ctx context.Context, email string, amount int) (int, error) {
	if amount <= 0 {
		return 0, fmt.Errorf("%w: debit amount must be positive", domain.ErrValidation)
	}
	coins, err := s.repo.AdjustCoins(ctx, email, -amount)
	if err != nil {
		zap.L().Error("failed to debit coins", zap.String("email", email), zap.Int("amount", amount), zap.Error(err))
		return 0, err
	}
	return coins, nil
}

func (s *Service) Balance(ctx context.Context, email string) (int, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		zap.L().Error("failed to get balance", zap.Error(err))
		return 0, err
	}
	if user == nil {
		return 0, fmt.Errorf("account %s: %w", email, domain.ErrUserNotFound)
	}
	return user.Coins, nil
}
