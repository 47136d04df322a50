package notificationrepo

import (
	"context"

	"github.com/coincrafter/backend/internal/domain"
	"github.com/coincrafter/backend/internal/pg"
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

func (r *Repository) Save(ctx context.Context, notification *domain.Notification) (*domain.Notification, error) {
	query := `
		INSERT INTO notifications (message, to_email, action_route)
		VALUES ($1, $2, $3)
		RETURNING id, time
	`
	err := r.db.QueryRow(ctx, query, notification.Message, notification.ToEmail, notification.ActionRoute).
		Scan(&notification.ID, &notification.Time)
	if err != nil {
		zap.L().Error("can't save notification", zap.Error(err))
		return nil, err
	}
	return notification, nil
}

func (r *Repository) FindByRecipient(ctx context.Context, email string) ([]domain.Notification, error) {
	query := `
        SELECT id, message, to_email, action_route, time
        FROM notifications
        WHERE to_email = $1
        ORDER BY time DESC
    `
	rows, err := r.db.Query(ctx, query, email)
	if err != nil {
		zap.L().Error("can't get notifications", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var notifications []domain.Notification
	for rows.Next() {
		var n domain.Notification
		if err := rows.Scan(&n.ID, &n.Message, &n.ToEmail, &n.ActionRoute, &n.Time); err != nil {
			zap.L().Error("can't scan notification row", zap.Error(err))
			return nil, err
		}
		notifications = append(notifications, n)
	}
	return notifications, nil
}
