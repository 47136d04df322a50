package payments

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/coincrafter/backend/internal/domain"
	"github.com/coincrafter/backend/internal/dto"
	"github.com/coincrafter/backend/pkg/auth"
	"github.com/coincrafter/backend/pkg/utils"
)

//go:generate mockgen -source=payments.go -destination=mock_payments.go -package=payments

type Service interface {
	CreateIntent(ctx context.Context, email string, coins int) (string, float64, error)
	Record(ctx context.Context, email string, amount float64, transactionID string, coins int) (*domain.Payment, error)
	ListMine(ctx context.Context, email string) ([]domain.Payment, error)
}

type PaymentHandler struct {
	paymentService Service
}

func New(paymentService Service) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

// CreateIntent godoc
//
//	@Summary		Create a payment intent
//	@Description	Start a coin pack purchase with the payment processor and return the client secret.
//	@Tags			Payments
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateIntentRequestDTO	true	"Coin pack size"
//	@Success		200		{object}	dto.CreateIntentResponseDTO
//	@Failure		400		{object}	utils.Response	"Unknown coin pack"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/payments/intent [post]
func (h *PaymentHandler) CreateIntent(w http.ResponseWriter, r *http.Request) {
	claims, _ := auth.FromContext(r.Context())

	var req dto.CreateIntentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	secret, amount, err := h.paymentService.CreateIntent(r.Context(), claims.Email, req.Coins)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CreateIntentResponseDTO{
		ClientSecret: secret,
		Amount:       amount,
	})
}

// Record godoc
//
//	@Summary		Record a completed payment
//	@Description	Persist a completed charge and credit the purchased coins. Retries with the same transaction id are rejected without a double credit.
//	@Tags			Payments
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RecordPaymentRequestDTO	true	"Completed charge"
//	@Success		201		{object}	dto.RecordPaymentResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid payload"
//	@Failure		409		{object}	utils.Response	"Transaction already recorded"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/payments [post]
func (h *PaymentHandler) Record(w http.ResponseWriter, r *http.Request) {
	claims, _ := auth.FromContext(r.Context())

	var req dto.RecordPaymentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	payment, err := h.paymentService.Record(r.Context(), claims.Email, req.Amount, req.TransactionID, req.Coins)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrConflict):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, domain.ErrUserNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.RecordPaymentResponseDTO{
		Recorded: true,
		Coins:    payment.Coins,
	})
}

// ListMine godoc
//
//	@Summary		List own payments
//	@Description	Completed coin purchases of the authenticated user, most recent first.
//	@Tags			Payments
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.PaymentResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/payments [get]
func (h *PaymentHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	claims, _ := auth.FromContext(r.Context())

	payments, err := h.paymentService.ListMine(r.Context(), claims.Email)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	response := make([]dto.PaymentResponseDTO, len(payments))
	for i := range payments {
		response[i] = dto.NewPaymentResponseDTO(&payments[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
