package dto

import (
	"fmt"
	"time"

	"github.com/coincrafter/backend/internal/domain"
)

type CreateTaskRequestDTO struct {
	Title           string    `json:"title" example:"Watch my video and comment"`
	Detail          string    `json:"detail" example:"Watch the full video and leave a meaningful comment"`
	RequiredWorkers int       `json:"required_workers" example:"20"`
	PayableAmount   int       `json:"payable_amount" example:"5"`
	CompletionDate  time.Time `json:"completion_date" example:"2026-10-01T00:00:00Z"`
	SubmissionInfo  string    `json:"submission_info" example:"Screenshot of your comment"`
	ImageURL        string    `json:"image_url,omitempty"`
}

func (r *CreateTaskRequestDTO) Validate() error {
	if r.Title == "" || r.Detail == "" {
		return fmt.Errorf("%w: title and detail are required", domain.ErrValidation)
	}
	if r.RequiredWorkers <= 0 {
		return fmt.Errorf("%w: required_workers must be positive", domain.ErrValidation)
	}
	if r.PayableAmount <= 0 {
		return fmt.Errorf("%w: payable_amount must be positive", domain.ErrValidation)
	}
	if r.CompletionDate.IsZero() {
		return fmt.Errorf("%w: completion_date is required", domain.ErrValidation)
	}
	return nil
}

type CreateTaskResponseDTO struct {
	ID   int `json:"id" example:"42"`
	Cost int `json:"cost" example:"100"`
}

type UpdateTaskRequestDTO struct {
	Title          string `json:"title,omitempty"`
	Detail         string `json:"detail,omitempty"`
	SubmissionInfo string `json:"submission_info,omitempty"`
}

func (r *UpdateTaskRequestDTO) Validate() error {
	if r.Title == "" && r.Detail == "" && r.SubmissionInfo == "" {
		return fmt.Errorf("%w: nothing to update", domain.ErrValidation)
	}
	return nil
}

type DeleteTaskResponseDTO struct {
	Deleted      bool `json:"deleted"`
	RefillAmount int  `json:"refill_amount" example:"100"`
}

type TaskResponseDTO struct {
	ID              int       `json:"id" example:"42"`
	Title           string    `json:"title"`
	Detail          string    `json:"detail"`
	CreatedBy       string    `json:"created_by" example:"buyer@example.com"`
	RequiredWorkers int       `json:"required_workers" example:"20"`
	PayableAmount   int       `json:"payable_amount" example:"5"`
	CompletionDate  time.Time `json:"completion_date"`
	SubmissionInfo  string    `json:"submission_info"`
	ImageURL        string    `json:"image_url,omitempty"`
	Status          string    `json:"status" example:"pending"`
	CreatedAt       time.Time `json:"created_at"`
}

func NewTaskResponseDTO(task *domain.Task) TaskResponseDTO {
	return TaskResponseDTO{
		ID:              task.ID,
		Title:           task.Title,
		Detail:          task.Detail,
		CreatedBy:       task.CreatedBy,
		RequiredWorkers: task.RequiredWorkers,
		PayableAmount:   task.PayableAmount,
		CompletionDate:  task.CompletionDate,
		SubmissionInfo:  task.SubmissionInfo,
		ImageURL:        task.ImageURL,
		Status:          task.Status,
		CreatedAt:       task.CreatedAt,
	}
}
