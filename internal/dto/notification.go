package dto

import (
	"time"

	"github.com/coincrafter/backend/internal/domain"
)

type NotificationResponseDTO struct {
	ID          int       `json:"id" example:"5"`
	Message     string    `json:"message" example:"You have earned 5 coins from buyer@example.com"`
	ActionRoute string    `json:"action_route" example:"/dashboard/worker-home"`
	Time        time.Time `json:"time"`
}

func NewNotificationResponseDTO(n *domain.Notification) NotificationResponseDTO {
	return NotificationResponseDTO{
		ID:          n.ID,
		Message:     n.Message,
		ActionRoute: n.ActionRoute,
		Time:        n.Time,
	}
}
