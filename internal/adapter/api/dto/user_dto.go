package dto

import (
	"time"

	"github.com/hugohenrick/gestor-pme/internal/domain/user"
)

// CreateUserRequest representa os dados para cadastro de um funcionário
type CreateUserRequest struct {
	FullName   string `json:"full_name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=6"`
	Role       string `json:"role" binding:"required,role"`
	Department string `json:"department"`
	Position   string `json:"position"`
	Phone      string `json:"phone"`
	Active     *bool  `json:"active"`
}

// UpdateUserRequest representa os dados para atualização de um funcionário.
// Senha vazia mantém a atual.
type UpdateUserRequest struct {
	FullName   string `json:"full_name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"omitempty,min=6"`
	Role       string `json:"role" binding:"required,role"`
	Department string `json:"department"`
	Position   string `json:"position"`
	Phone      string `json:"phone"`
	PhotoURL   string `json:"photo_url"`
	Active     *bool  `json:"active"`
}

// SetupAdminRequest cria o primeiro administrador
type SetupAdminRequest struct {
	FullName string `json:"full_name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// UserResponse representa a resposta com dados de um usuário
type UserResponse struct {
	ID          string           `json:"id"`
	FullName    string           `json:"full_name"`
	Email       string           `json:"email"`
	Role        string           `json:"role"`
	RoleLabel   string           `json:"role_label"`
	Department  string           `json:"department"`
	Position    string           `json:"position"`
	Phone       string           `json:"phone"`
	PhotoURL    string           `json:"photo_url"`
	Theme       string           `json:"theme"`
	CompanyData user.CompanyData `json:"company_data"`
	Active      bool             `json:"active"`
	LastLoginAt *time.Time       `json:"last_login_at,omitempty"`
	CreatedDate time.Time        `json:"created_date"`
	UpdatedDate time.Time        `json:"updated_date"`
}

// ToUserResponse converte um usuário do domínio para DTO de resposta
func ToUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		FullName:    u.FullName,
		Email:       u.Email,
		Role:        string(u.Role),
		RoleLabel:   u.Role.Label(),
		Department:  string(u.Department),
		Position:    u.Position,
		Phone:       u.Phone,
		PhotoURL:    u.PhotoURL,
		Theme:       string(u.Theme),
		CompanyData: u.CompanyData,
		Active:      u.Active,
		LastLoginAt: u.LastLoginAt,
		CreatedDate: u.CreatedDate,
		UpdatedDate: u.UpdatedDate,
	}
}

// ToUserResponses converte uma lista de usuários
func ToUserResponses(users []*user.User) []UserResponse {
	out := make([]UserResponse, len(users))
	for i, u := range users {
		out[i] = ToUserResponse(u)
	}
	return out
}
