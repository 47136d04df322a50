package dto

import (
	"fmt"
	"time"

	"github.com/coincrafter/backend/internal/domain"
)

type CreateWithdrawalRequestDTO struct {
	Coins         int    `json:"withdrawal_coin" example:"200"`
	PaymentSystem string `json:"payment_system" example:"paypal"`
	AccountNumber string `json:"account_number" example:"jane@paypal.example.com"`
}

func (r *CreateWithdrawalRequestDTO) Validate() error {
	if r.Coins <= 0 {
		return fmt.Errorf("%w: withdrawal_coin must be positive", domain.ErrValidation)
	}
	if r.PaymentSystem == "" || r.AccountNumber == "" {
		return fmt.Errorf("%w: payment_system and account_number are required", domain.ErrValidation)
	}
	return nil
}

type CreateWithdrawalResponseDTO struct {
	ID     int     `json:"id" example:"3"`
	Amount float64 `json:"withdrawal_amount" example:"10"`
}

type ApproveWithdrawalResponseDTO struct {
	Approved bool `json:"approved"`
	Updated  int  `json:"updated" example:"1"`
}

type WithdrawalResponseDTO struct {
	ID            int       `json:"id" example:"3"`
	WorkerEmail   string    `json:"worker_email" example:"worker@example.com"`
	WorkerName    string    `json:"worker_name"`
	Coins         int       `json:"withdrawal_coin" example:"200"`
	Amount        float64   `json:"withdrawal_amount" example:"10"`
	PaymentSystem string    `json:"payment_system" example:"paypal"`
	AccountNumber string    `json:"account_number"`
	Status        string    `json:"status" example:"pending"`
	RequestedAt   time.Time `json:"requested_at"`
}

func NewWithdrawalResponseDTO(wd *domain.Withdrawal) WithdrawalResponseDTO {
	return WithdrawalResponseDTO{
		ID:            wd.ID,
		WorkerEmail:   wd.WorkerEmail,
		WorkerName:    wd.WorkerName,
		Coins:         wd.Coins,
		Amount:        wd.Amount,
		PaymentSystem: wd.PaymentSystem,
		AccountNumber: wd.AccountNumber,
		Status:        wd.Status,
		RequestedAt:   wd.RequestedAt,
	}
}
