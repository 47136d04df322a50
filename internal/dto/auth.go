package dto

import (
	"fmt"
	"strings"

	"github.com/coincrafter/backend/internal/domain"
)

type RegisterRequestDTO struct {
	Name     string `json:"name" example:"Jane Doe"`
	Email    string `json:"email" example:"jane@example.com"`
	Password string `json:"password" example:"s3cret-pass"`
	Photo    string `json:"photo,omitempty" example:"https://img.example.com/jane.png"`
	Role     string `json:"role" example:"worker"`
}

func (r *RegisterRequestDTO) Validate() error {
	if r.Email == "" || !strings.Contains(r.Email, "@") {
		return fmt.Errorf("%w: valid email is required", domain.ErrValidation)
	}
	if len(r.Password) < 6 {
		return fmt.Errorf("%w: password must be at least 6 characters", domain.ErrValidation)
	}
	if r.Role != domain.RoleBuyer && r.Role != domain.RoleWorker {
		return fmt.Errorf("%w: role must be buyer or worker", domain.ErrValidation)
	}
	return nil
}

type RegisterResponseDTO struct {
	Message string `json:"message"`
	Role    string `json:"role"`
	Coins   int    `json:"coins"`
}

type LoginRequestDTO struct {
	Email    string `json:"email" example:"jane@example.com"`
	Password string `json:"password" example:"s3cret-pass"`
}

func (r *LoginRequestDTO) Validate() error {
	if r.Email == "" || r.Password == "" {
		return fmt.Errorf("%w: email and password are required", domain.ErrValidation)
	}
	return nil
}

type LoginResponseDTO struct {
	Message string `json:"message"`
	Role    string `json:"role"`
}
