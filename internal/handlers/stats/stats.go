package stats

import (
	"context"
	"net/http"

	"github.com/coincrafter/backend/internal/dto"
	"github.com/coincrafter/backend/internal/service/statsservice"
	"github.com/coincrafter/backend/pkg/auth"
	"github.com/coincrafter/backend/pkg/utils"
)

//go:generate mockgen -source=stats.go -destination=mock_stats.go -package=stats

type Service interface {
	BuyerStats(ctx context.Context, email string) (*statsservice.BuyerStats, error)
	WorkerStats(ctx context.Context, email string) (*statsservice.WorkerStats, error)
	AdminStats(ctx context.Context) (*statsservice.AdminStats, error)
}

type StatsHandler struct {
	statsService Service
}

func New(statsService Service) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
	}
}

// Buyer godoc
//
//	@Summary		Buyer dashboard stats
//	@Description	Task count, pending worker slots and total coins paid out across the buyer's tasks.
//	@Tags			Stats
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.BuyerStatsResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/stats/buyer [get]
func (h *StatsHandler) Buyer(w http.ResponseWriter, r *http.Request) {
	claims, _ := auth.FromContext(r.Context())

	stats, err := h.statsService.BuyerStats(r.Context(), claims.Email)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BuyerStatsResponseDTO{
		TaskCount:    stats.TaskCount,
		PendingSlots: stats.PendingSlots,
		TotalPaid:    stats.TotalPaid,
	})
}

// Worker godoc
//
//	@Summary		Worker dashboard stats
//	@Description	Submission counts by status and total approved earnings.
//	@Tags			Stats
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.WorkerStatsResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/stats/worker [get]
func (h *StatsHandler) Worker(w http.ResponseWriter, r *http.Request) {
	claims, _ := auth.FromContext(r.Context())

	stats, err := h.statsService.WorkerStats(r.Context(), claims.Email)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.WorkerStatsResponseDTO{
		TotalSubmissions:    stats.Total,
		PendingSubmissions:  stats.Pending,
		ApprovedSubmissions: stats.Approved,
		RejectedSubmissions: stats.Rejected,
		TotalEarnings:       stats.Earnings,
	})
}

// Admin godoc
//
//	@Summary		Platform stats
//	@Description	User counts per role, total coins in circulation and total payment volume.
//	@Tags			Stats
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.AdminStatsResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Admin only"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/stats/admin [get]
func (h *StatsHandler) Admin(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsService.AdminStats(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.AdminStatsResponseDTO{
		BuyerCount:    stats.BuyerCount,
		WorkerCount:   stats.WorkerCount,
		AdminCount:    stats.AdminCount,
		TotalCoins:    stats.TotalCoins,
		TotalPayments: stats.TotalPayments,
	})
}
