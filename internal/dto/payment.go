package dto

import (
	"fmt"
	"time"

	"github.com/coincrafter/backend/internal/domain"
)

type CreateIntentRequestDTO struct {
	Coins int `json:"coins" example:"150"`
}

func (r *CreateIntentRequestDTO) Validate() error {
	if r.Coins <= 0 {
		return fmt.Errorf("%w: coins must be positive", domain.ErrValidation)
	}
	return nil
}

type CreateIntentResponseDTO struct {
	ClientSecret string  `json:"client_secret" example:"pi_3Nx_secret_abc"`
	Amount       float64 `json:"amount" example:"10"`
}

type RecordPaymentRequestDTO struct {
	Amount        float64 `json:"amount" example:"10"`
	TransactionID string  `json:"transaction_id" example:"pi_3NxYz2"`
	Coins         int     `json:"coins" example:"150"`
}

func (r *RecordPaymentRequestDTO) Validate() error {
	if r.TransactionID == "" {
		return fmt.Errorf("%w: transaction_id is required", domain.ErrValidation)
	}
	if r.Coins <= 0 || r.Amount <= 0 {
		return fmt.Errorf("%w: amount and coins must be positive", domain.ErrValidation)
	}
	return nil
}

type RecordPaymentResponseDTO struct {
	Recorded bool `json:"recorded"`
	Coins    int  `json:"coins" example:"150"`
}

type PaymentResponseDTO struct {
	ID            int       `json:"id" example:"11"`
	Email         string    `json:"email" example:"buyer@example.com"`
	Amount        float64   `json:"amount" example:"10"`
	TransactionID string    `json:"transaction_id" example:"pi_3NxYz2"`
	Coins         int       `json:"coins" example:"150"`
	Date          time.Time `json:"date"`
}

func NewPaymentResponseDTO(p *domain.Payment) PaymentResponseDTO {
	return PaymentResponseDTO{
		ID:            p.ID,
		Email:         p.Email,
		Amount:        p.Amount,
		TransactionID: p.TransactionID,
		Coins:         p.Coins,
		Date:          p.Date,
	}
}
