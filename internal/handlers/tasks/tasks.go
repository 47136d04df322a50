package tasks

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

//go:generate mockgen -source=tasks.go -destination=mock_tasks.go -package=tasks

type Service interface {
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)
	Update(ctx context.Context, taskID int, requesterEmail, title, detail, submissionInfo string) (int64, error)
	Delete(ctx context.Context, taskID int, requesterEmail, requesterRole string) (int, error)
	Get(ctx context.Context, taskID int) (*domain.Task, error)
	ListAvailable(ctx context.Context) ([]domain.Task, error)
	ListMine(ctx context.Context, buyerEmail string) ([]domain.Task, error)
}

type TaskHandler struct {
	taskService Service
}

func New(taskService Service) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// Create godoc
//
//	@Summary		Create a task
//	@Description	Create a task and debit the buyer by required_workers * payable_amount.
//	@Tags			Tasks
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateTaskRequestDTO	true	"Task payload"
//	@Success		201		{object}	dto.CreateTaskResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid payload or insufficient balance"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"Buyer account not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/tasks [post]
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims, _ := auth.FromContext(r.Context())

	var req dto.CreateTaskRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	task, err := h.taskService.Create(r.Context(), &domain.Task{
		Title:           req.Title,
		Detail:          req.Detail,
		CreatedBy:       claims.Email,
		RequiredWorkers: req.RequiredWorkers,
		PayableAmount:   req.PayableAmount,
		CompletionDate:  req.CompletionDate,
		SubmissionInfo:  req.SubmissionInfo,
		ImageURL:        req.ImageURL,
	})
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
	utils.RespondWithJSON(w, http.StatusCreated, dto.CreateTaskResponseDTO{
		ID:   task.ID,
		Cost: task.RequiredWorkers * task.PayableAmount,
	})
}

// Update godoc
//
//	@Summary		Update a task
//	@Description	Update title, detail or submission info of an owned task.
//	@Tags			Tasks
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Task ID"
//	@Param			request	body		dto.UpdateTaskRequestDTO	true	"Mutable fields"
//	@Success		200		{object}	utils.Response
//	@Failure		400		{object}	utils.Response	"Invalid payload"
//	@Failure		403		{object}	utils.Response	"Not the task owner"
//	@Failure		404		{object}	utils.Response	"Task not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/tasks/{id} [patch]
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	claims, _ := auth.FromContext(r.Context())

	taskID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid task id")
		return
	}

	var req dto.UpdateTaskRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := h.taskService.Update(r.Context(), taskID, claims.Email, req.Title, req.Detail, req.SubmissionInfo); err != nil {
		respondWithTaskError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Task updated"})
}

// Delete godoc
//
//	@Summary		Delete a task
//	@Description	Delete an owned task (or any task as admin). Non-completed tasks refund the remaining escrow to the creator.
//	@Tags			Tasks
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Task ID"
//	@Success		200	{object}	dto.DeleteTaskResponseDTO
//	@Failure		403	{object}	utils.Response	"Not the task owner"
//	@Failure		404	{object}	utils.Response	"Task not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/tasks/{id} [delete]
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	claims, _ := auth.FromContext(r.Context())

	taskID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid task id")
		return
	}

	refund, err := h.taskService.Delete(r.Context(), taskID, claims.Email, claims.Role)
	if err != nil {
		respondWithTaskError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.DeleteTaskResponseDTO{
		Deleted:      true,
		RefillAmount: refund,
	})
}

// Get godoc
//
//	@Summary		Get a task
//	@Tags			Tasks
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Task ID"
//	@Success		200	{object}	dto.TaskResponseDTO
//	@Failure		404	{object}	utils.Response	"Task not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/tasks/{id} [get]
func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	taskID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid task id")
		return
	}

	task, err := h.taskService.Get(r.Context(), taskID)
	if err != nil {
		respondWithTaskError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewTaskResponseDTO(task))
}

// ListAvailable godoc
//
//	@Summary		List available tasks
//	@Description	Tasks with remaining worker slots, soonest deadline first.
//	@Tags			Tasks
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.TaskResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/tasks/available [get]
func (h *TaskHandler) ListAvailable(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.taskService.ListAvailable(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, taskListResponse(tasks))
}

// ListMine godoc
//
//	@Summary		List own tasks
//	@Description	Tasks created by the authenticated buyer, most recent first.
//	@Tags			Tasks
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.TaskResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/tasks [get]
func (h *TaskHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	claims, _ := auth.FromContext(r.Context())

	tasks, err := h.taskService.ListMine(r.Context(), claims.Email)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, taskListResponse(tasks))
}

func taskListResponse(tasks []domain.Task) []dto.TaskResponseDTO {
	response := make([]dto.TaskResponseDTO, len(tasks))
	for i := range tasks {
		response[i] = dto.NewTaskResponseDTO(&tasks[i])
	}
	return response
}

func respondWithTaskError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrForbidden):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, domain.ErrUserNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
