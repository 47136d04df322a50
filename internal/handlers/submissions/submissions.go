package submissions

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

//go:generate mockgen -source=submissions.go -destination=mock_submissions.go -package=submissions

type Service interface {
	Submit(ctx context.Context, taskID int, workerEmail, details string) (*domain.Submission, error)
	Approve(ctx context.Context, submissionID int, actorEmail string) error
	Reject(ctx context.Context, submissionID int, actorEmail string) error
	ListMine(ctx context.Context, workerEmail string) ([]domain.Submission, error)
	ListPendingForBuyer(ctx context.Context, buyerEmail string) ([]domain.Submission, error)
}

type SubmissionHandler struct {
	submissionService Service
}

func New(submissionService Service) *SubmissionHandler {
	return &SubmissionHandler{
		submissionService: submissionService,
	}
}

// Create godoc
//
//	@Summary		Submit work for a task
//	@Description	Claim one of the task's open worker slots and record a pending submission.
//	@Tags			Submissions
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateSubmissionRequestDTO	true	"Submission payload"
//	@Success		201		{object}	dto.CreateSubmissionResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid payload"
//	@Failure		404		{object}	utils.Response	"Task not found"
//	@Failure		409		{object}	utils.Response	"No remaining worker slots"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/submissions [post]
func (h *SubmissionHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims, _ := auth.FromContext(r.Context())

	var req dto.CreateSubmissionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	sub, err := h.submissionService.Submit(r.Context(), req.TaskID, claims.Email, req.Details)
	if err != nil {
		respondWithSubmissionError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.CreateSubmissionResponseDTO{ID: sub.ID})
}

// UpdateStatus godoc
//
//	@Summary		Approve or reject a submission
//	@Description	Approving pays the worker the task's payable amount; rejecting frees the claimed slot.
//	@Tags			Submissions
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int										true	"Submission ID"
//	@Param			request	body		dto.UpdateSubmissionStatusRequestDTO	true	"Target status"
//	@Success		200		{object}	dto.UpdateSubmissionStatusResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid payload or submission already decided"
//	@Failure		403		{object}	utils.Response	"Not the task owner"
//	@Failure		404		{object}	utils.Response	"Submission not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/submissions/{id}/status [patch]
func (h *SubmissionHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	claims, _ := auth.FromContext(r.Context())

	submissionID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid submission id")
		return
	}

	var req dto.UpdateSubmissionStatusRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	if req.Status == domain.SubmissionStatusApproved {
		err = h.submissionService.Approve(r.Context(), submissionID, claims.Email)
	} else {
		err = h.submissionService.Reject(r.Context(), submissionID, claims.Email)
	}
	if err != nil {
		respondWithSubmissionError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.UpdateSubmissionStatusResponseDTO{
		Success: true,
		Status:  req.Status,
	})
}

// ListMine godoc
//
//	@Summary		List own submissions
//	@Description	Submissions made by the authenticated worker, most recent first.
//	@Tags			Submissions
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.SubmissionResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/submissions [get]
func (h *SubmissionHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	claims, _ := auth.FromContext(r.Context())

	subs, err := h.submissionService.ListMine(r.Context(), claims.Email)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, submissionListResponse(subs))
}

// ListPending godoc
//
//	@Summary		List pending submissions for review
//	@Description	Pending submissions against the authenticated buyer's tasks.
//	@Tags			Submissions
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.SubmissionResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/submissions/pending [get]
func (h *SubmissionHandler) ListPending(w http.ResponseWriter, r *http.Request) {
	claims, _ := auth.FromContext(r.Context())

	subs, err := h.submissionService.ListPendingForBuyer(r.Context(), claims.Email)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, submissionListResponse(subs))
}

func submissionListResponse(subs []domain.Submission) []dto.SubmissionResponseDTO {
	response := make([]dto.SubmissionResponseDTO, len(subs))
	for i := range subs {
		response[i] = dto.NewSubmissionResponseDTO(&subs[i])
	}
	return response
}

func respondWithSubmissionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrForbidden):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, domain.ErrInvalidTransition):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrConflict):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
