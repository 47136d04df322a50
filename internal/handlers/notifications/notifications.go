package notifications

import (
	"context"
	"net/http"

	"github.com/coincrafter/backend/internal/domain"
	"github.com/coincrafter/backend/internal/dto"
	"github.com/coincrafter/backend/pkg/auth"
	"github.com/coincrafter/backend/pkg/utils"
)

//go:generate mockgen -source=notifications.go -destination=mock_notifications.go -package=notifications

type Service interface {
	List(ctx context.Context, email string) ([]domain.Notification, error)
}

type NotificationHandler struct {
	notificationService Service
}

func New(notificationService Service) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
	}
}

// List godoc
//
//	@Summary		List own notifications
//	@Description	Event records addressed to the authenticated user, newest first.
//	@Tags			Notifications
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.NotificationResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/notifications [get]
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	claims, _ := auth.FromContext(r.Context())

	notifications, err := h.notificationService.List(r.Context(), claims.Email)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	response := make([]dto.NotificationResponseDTO, len(notifications))
	for i := range notifications {
		response[i] = dto.NewNotificationResponseDTO(&notifications[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
