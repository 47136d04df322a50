package userservice

import (
	"context"
	"fmt"

	"github.com/coincrafter/backend/internal/domain"
	"go.uber.org/zap"
)

//go:generate mockgen -source=userservice.go -destination=mock_userservice.go -package=userservice

type UserRepo interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id int) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	UpdateRole(ctx context.Context, id int, role string) (int64, error)
	Delete(ctx context.Context, id int) (int64, error)
	TopWorkers(ctx context.Context, limit int) ([]domain.User, error)
}

const topWorkersLimit = 6

type Service struct {
	userRepo UserRepo
}

func New(userRepo UserRepo) *Service {
	return &Service{
		userRepo: userRepo,
	}
}

func (s *Service) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		zap.L().Error("failed to get user", zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user %s: %w", email, domain.ErrNotFound)
	}
	return user, nil
}

func (s *Service) List(ctx context.Context) ([]domain.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		zap.L().Error("failed to list users", zap.Error(err))
		return nil, err
	}
	return users, nil
}

func (s *Service) UpdateRole(ctx context.Context, id int, role string) error {
	updated, err := s.userRepo.UpdateRole(ctx, id, role)
	if err != nil {
		zap.L().Error("failed to update role", zap.Int("userID", id), zap.Error(err))
		return err
	}
	if updated == 0 {
		return fmt.Errorf("user %d: %w", id, domain.ErrNotFound)
	}
	zap.L().Info("user role updated", zap.Int("userID", id), zap.String("role", role))
	return nil
}

// TopWorkers is the public leaderboard: the six richest workers, name, photo
// and coins only.
func (s *Service) TopWorkers(ctx context.Context) ([]domain.User, error) {
	workers, err := s.userRepo.TopWorkers(ctx, topWorkersLimit)
	if err != nil {
		zap.L().Error("failed to fetch top workers", zap.Error(err))
		return nil, err
	}
	return workers, nil
}

// Delete removes the user record only. Tasks and submissions keep their email
// references as historical records.
func (s *Service) Delete(ctx context.Context, id int) error {
	deleted, err := s.userRepo.Delete(ctx, id)
	if err != nil {
		zap.L().Error("failed to delete user", zap.Int("userID", id), zap.Error(err))
		return err
	}
	if deleted == 0 {
		return fmt.Errorf("user %d: %w", id, domain.ErrNotFound)
	}
	zap.L().Info("user deleted", zap.Int("userID", id))
	return nil
}
