// Package session transporta o usuário autenticado pelo context.Context da requisição.
package session

import (
	"context"
	"time"

	"github.com/hugohenrick/gestor-pme/internal/domain/user"
)

type contextKey string

const sessionKey contextKey = "session"

// Session resume o usuário autenticado e o token em uso
type Session struct {
	UserID    string
	Email     string
	Name      string
	Role      user.Role
	TokenID   string
	ExpiresAt time.Time
}

// IsAdmin informa se a sessão pertence a um administrador
func (s *Session) IsAdmin() bool {
	return s != nil && s.Role == user.RoleAdministrator
}

// WithSession guarda a sessão no contexto
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionKey, s)
}

// FromContext obtém a sessão do contexto
func FromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(sessionKey).(*Session)
	return s, ok && s != nil
}
