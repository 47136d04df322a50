package users

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

//go:generate mockgen -source=users.go -destination=mock_users.go -package=users

type Service interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	UpdateRole(ctx context.Context, id int, role string) error
	TopWorkers(ctx context.Context) ([]domain.User, error)
	Delete(ctx context.Context, id int) error
}

type Ledger interface {
	Balance(ctx context.Context, email string) (int, error)
}

type UserHandler struct {
	userService Service
	ledger      Ledger
}

func New(userService Service, ledger Ledger) *UserHandler {
	return &UserHandler{
		userService: userService,
		ledger:      ledger,
	}
}

// Me godoc
//
//	@Summary		Get own profile
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.UserResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"User not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/users/me [get]
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims, _ := auth.FromContext(r.Context())

	user, err := h.userService.GetByEmail(r.Context(), claims.Email)
	if err != nil {
		respondWithUserError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, userResponse(user))
}

// Balance godoc
//
//	@Summary		Get own coin balance
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.BalanceResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"User not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/users/balance [get]
func (h *UserHandler) Balance(w http.ResponseWriter, r *http.Request) {
	claims, _ := auth.FromContext(r.Context())

	coins, err := h.ledger.Balance(r.Context(), claims.Email)
	if err != nil {
		respondWithUserError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{Coins: coins})
}

// TopWorkers godoc
//
//	@Summary		Public worker leaderboard
//	@Description	The six workers with the most coins. Name, photo and coins only.
//	@Tags			Users
//	@Produce		json
//	@Success		200	{array}		dto.TopWorkerDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/users/top-workers [get]
func (h *UserHandler) TopWorkers(w http.ResponseWriter, r *http.Request) {
	workers, err := h.userService.TopWorkers(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	response := make([]dto.TopWorkerDTO, len(workers))
	for i, worker := range workers {
		response[i] = dto.TopWorkerDTO{
			Name:  worker.Name,
			Photo: worker.Photo,
			Coins: worker.Coins,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// List godoc
//
//	@Summary		List all users
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.UserResponseDTO
//	@Failure		403	{object}	utils.Response	"Admin only"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/users [get]
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.List(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	response := make([]dto.UserResponseDTO, len(users))
	for i := range users {
		response[i] = userResponse(&users[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// UpdateRole godoc
//
//	@Summary		Change a user's role
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"User ID"
//	@Param			request	body		dto.UpdateRoleRequestDTO	true	"New role"
//	@Success		200		{object}	utils.Response
//	@Failure		400		{object}	utils.Response	"Unknown role"
//	@Failure		403		{object}	utils.Response	"Admin only"
//	@Failure		404		{object}	utils.Response	"User not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/users/{id}/role [patch]
func (h *UserHandler) UpdateRole(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	var req dto.UpdateRoleRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.userService.UpdateRole(r.Context(), userID, req.Role); err != nil {
		respondWithUserError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Role updated"})
}

// Delete godoc
//
//	@Summary		Delete a user
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"User ID"
//	@Success		200	{object}	utils.Response
//	@Failure		403	{object}	utils.Response	"Admin only"
//	@Failure		404	{object}	utils.Response	"User not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/users/{id} [delete]
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	if err := h.userService.Delete(r.Context(), userID); err != nil {
		respondWithUserError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "User deleted"})
}

func userResponse(user *domain.User) dto.UserResponseDTO {
	return dto.UserResponseDTO{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Photo: user.Photo,
		Role:  user.Role,
		Coins: user.Coins,
	}
}

func respondWithUserError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
