package dto

import (
	"fmt"
	"time"

	"github.com/coincrafter/backend/internal/domain"
)

type CreateSubmissionRequestDTO struct {
	TaskID  int    `json:"task_id" example:"42"`
	Details string `json:"details" example:"Here is the screenshot: https://..."`
}

func (r *CreateSubmissionRequestDTO) Validate() error {
	if r.TaskID <= 0 {
		return fmt.Errorf("%w: task_id is required", domain.ErrValidation)
	}
	if r.Details == "" {
		return fmt.Errorf("%w: details are required", domain.ErrValidation)
	}
	return nil
}

type CreateSubmissionResponseDTO struct {
	ID int `json:"id" example:"7"`
}

type UpdateSubmissionStatusRequestDTO struct {
	Status string `json:"status" example:"approved"`
}

func (r *UpdateSubmissionStatusRequestDTO) Validate() error {
	if r.Status != domain.SubmissionStatusApproved && r.Status != domain.SubmissionStatusRejected {
		return fmt.Errorf("%w: status must be approved or rejected", domain.ErrValidation)
	}
	return nil
}

type UpdateSubmissionStatusResponseDTO struct {
	Success bool   `json:"success"`
	Status  string `json:"status" example:"approved"`
}

type SubmissionResponseDTO struct {
	ID            int       `json:"id" example:"7"`
	TaskID        int       `json:"task_id" example:"42"`
	TaskTitle     string    `json:"task_title"`
	WorkerEmail   string    `json:"worker_email" example:"worker@example.com"`
	WorkerName    string    `json:"worker_name"`
	BuyerEmail    string    `json:"buyer_email" example:"buyer@example.com"`
	PayableAmount int       `json:"payable_amount" example:"5"`
	Details       string    `json:"details"`
	Status        string    `json:"status" example:"pending"`
	SubmittedAt   time.Time `json:"submitted_at"`
}

func NewSubmissionResponseDTO(sub *domain.Submission) SubmissionResponseDTO {
	return SubmissionResponseDTO{
		ID:            sub.ID,
		TaskID:        sub.TaskID,
		TaskTitle:     sub.TaskTitle,
		WorkerEmail:   sub.WorkerEmail,
		WorkerName:    sub.WorkerName,
		BuyerEmail:    sub.BuyerEmail,
		PayableAmount: sub.PayableAmount,
		Details:       sub.Details,
		Status:        sub.Status,
		SubmittedAt:   sub.SubmittedAt,
	}
}
