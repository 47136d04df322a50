package dto

import (
	"fmt"

	"github.com/coincrafter/backend/internal/domain"
)

type UserResponseDTO struct {
	ID    int    `json:"id" example:"1"`
	Name  string `json:"name" example:"Jane Doe"`
	Email string `json:"email" example:"jane@example.com"`
	Photo string `json:"photo,omitempty"`
	Role  string `json:"role" example:"worker"`
	Coins int    `json:"coins" example:"120"`
}

type BalanceResponseDTO struct {
	Coins int `json:"coins" example:"120"`
}

type UpdateRoleRequestDTO struct {
	Role string `json:"role" example:"admin"`
}

func (r *UpdateRoleRequestDTO) Validate() error {
	switch r.Role {
	case domain.RoleBuyer, domain.RoleWorker, domain.RoleAdmin:
		return nil
	}
	return fmt.Errorf("%w: unknown role %q", domain.ErrValidation, r.Role)
}

type TopWorkerDTO struct {
	Name  string `json:"name" example:"Jane Doe"`
	Photo string `json:"photo,omitempty"`
	Coins int    `json:"coins" example:"870"`
}
