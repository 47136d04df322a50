package notificationservice

import (
	"context"

	"github.com/coincrafter/backend/internal/domain"
	"go.uber.org/zap"
)

//go:generate mockgen -source=notificationservice.go -destination=mock_notificationservice.go -package=notificationservice

type NotificationRepo interface {
	Save(ctx context.Context, notification *domain.Notification) (*domain.Notification, error)
	FindByRecipient(ctx context.Context, email string) ([]domain.Notification, error)
}

type Service struct {
	repo NotificationRepo
}

func New(repo NotificationRepo) *Service {
	return &Service{
		repo: repo,
	}
}

// Notify appends an event record for the recipient. Delivery is polling-based;
// a failed insert is logged and not propagated to the triggering transition.
func (s *Service) Notify(ctx context.Context, message, toEmail, actionRoute string) {
	_, err := s.repo.Save(ctx, &domain.Notification{
		Message:     message,
		ToEmail:     toEmail,
		ActionRoute: actionRoute,
	})
	if err != nil {
		zap.L().Error("failed to save notification", zap.String("to", toEmail), zap.Error(err))
	}
}

func (s *Service) List(ctx context.Context, email string) ([]domain.Notification, error) {
	notifications, err := s.repo.FindByRecipient(ctx, email)
	if err != nil {
		zap.L().Error("failed to fetch notifications", zap.Error(err))
		return nil, err
	}
	return notifications, nil
}
