package withdrawals

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/coincrafter/backend/internal/domain"
	"github.com/coincrafter/backend/internal/dto"
	"github.com/coincrafter/backend/pkg/auth"
	"github.com/coincrafter/backend/pkg/utils"
	"github.com/go-chi/chi/v5"
)

//go:generate mockgen -source=withdrawals.go -destination=mock_withdrawals.go -package=withdrawals

type Service interface {
	Request(ctx context.Context, workerEmail string, coins int, paymentSystem, accountNumber string) (*domain.Withdrawal, error)
	Approve(ctx context.Context, withdrawalID int, adminEmail string) error
	ListMine(ctx context.Context, workerEmail string) ([]domain.Withdrawal, error)
	ListPending(ctx context.Context) ([]domain.Withdrawal, error)
}

type WithdrawalHandler struct {
	withdrawalService Service
}

func New(withdrawalService Service) *WithdrawalHandler {
	return &WithdrawalHandler{
		withdrawalService: withdrawalService,
	}
}

// Create godoc
//
//	@Summary		Request a withdrawal
//	@Description	Record a pending cash-out request. Coins are debited on admin approval at 20 coins per currency unit.
//	@Tags			Withdrawals
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateWithdrawalRequestDTO	true	"Withdrawal payload"
//	@Success		201		{object}	dto.CreateWithdrawalResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid payload or insufficient balance"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/withdrawals [post]
func (h *WithdrawalHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims, _ := auth.FromContext(r.Context())

	var req dto.CreateWithdrawalRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	withdrawal, err := h.withdrawalService.Request(r.Context(), claims.Email, req.Coins, req.PaymentSystem, req.AccountNumber)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInsufficientBalance):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrUserNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.CreateWithdrawalResponseDTO{
		ID:     withdrawal.ID,
		Amount: withdrawal.Amount,
	})
}

// Approve godoc
//
//	@Summary		Approve a withdrawal
//	@Description	Debit the worker and mark the withdrawal approved. An uncovered balance leaves the request pending.
//	@Tags			Withdrawals
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Withdrawal ID"
//	@Success		200	{object}	dto.ApproveWithdrawalResponseDTO
//	@Failure		400	{object}	utils.Response	"Already decided or balance no longer covers the amount"
//	@Failure		404	{object}	utils.Response	"Withdrawal not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/withdrawals/{id}/status [patch]
func (h *WithdrawalHandler) Approve(w http.ResponseWriter, r *http.Request) {
	claims, _ := auth.FromContext(r.Context())

	withdrawalID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid withdrawal id")
		return
	}

	if err := h.withdrawalService.Approve(r.Context(), withdrawalID, claims.Email); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, domain.ErrInvalidTransition), errors.Is(err, domain.ErrInsufficientBalance):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ApproveWithdrawalResponseDTO{
		Approved: true,
		Updated:  1,
	})
}

// ListMine godoc
//
//	@Summary		List own withdrawals
//	@Description	Withdrawal requests made by the authenticated worker, most recent first.
//	@Tags			Withdrawals
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.WithdrawalResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/withdrawals [get]
func (h *WithdrawalHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	claims, _ := auth.FromContext(r.Context())

	withdrawals, err := h.withdrawalService.ListMine(r.Context(), claims.Email)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, withdrawalListResponse(withdrawals))
}

// ListPending godoc
//
//	@Summary		List pending withdrawals
//	@Description	All pending withdrawal requests, oldest first.
//	@Tags			Withdrawals
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.WithdrawalResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/withdrawals/pending [get]
func (h *WithdrawalHandler) ListPending(w http.ResponseWriter, r *http.Request) {
	withdrawals, err := h.withdrawalService.ListPending(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, withdrawalListResponse(withdrawals))
}

func withdrawalListResponse(withdrawals []domain.Withdrawal) []dto.WithdrawalResponseDTO {
	response := make([]dto.WithdrawalResponseDTO, len(withdrawals))
	for i := range withdrawals {
		response[i] = dto.NewWithdrawalResponseDTO(&withdrawals[i])
	}
	return response
}
