package dto

import (
	"time"

	"github.com/hugohenrick/gestor-pme/internal/navigation"
)

// LoginRequest representa os dados para login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse representa a resposta de login bem-sucedido
type LoginResponse struct {
	User         UserResponse `json:"user"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	ExpiresAt    time.Time    `json:"expires_at"`
}

// RefreshTokenRequest representa os dados para renovação de token
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// SessionResponse é a sessão exibida pelo cliente: usuário, função, tema e menu
type SessionResponse struct {
	User       UserResponse      `json:"user"`
	Role       string            `json:"role"`
	RoleLabel  string            `json:"role_label"`
	Theme      string            `json:"theme"`
	Navigation []navigation.Item `json:"navigation"`
}

// ProfileRequest são os campos que o próprio usuário pode alterar.
// Nome, email e função não fazem parte da requisição e são ignorados se enviados.
type ProfileRequest struct {
	Department *string `json:"department"`
	Position   *string `json:"position"`
	Phone      *string `json:"phone"`
	PhotoURL   *string `json:"photo_url"`
	Theme      *string `json:"theme" binding:"omitempty,oneof=claro escuro"`
}

// ChangePasswordRequest representa os dados para alteração de senha
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=6"`
}

// CompanyDataRequest representa os dados da empresa nas configurações
type CompanyDataRequest struct {
	Name     string `json:"name"`
	Document string `json:"document"`
	Phone    string `json:"phone"`
	Email    string `json:"email" binding:"omitempty,email"`
	Address  string `json:"address"`
	LogoURL  string `json:"logo_url"`
}

// ThemeResponse devolve o tema após a troca
type ThemeResponse struct {
	Theme string `json:"theme"`
}
