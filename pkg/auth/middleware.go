package auth

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/gestor-pme/internal/adapter/api/dto"
	"github.com/hugohenrick/gestor-pme/internal/domain/user"
	"github.com/hugohenrick/gestor-pme/internal/navigation"
	"github.com/hugohenrick/gestor-pme/pkg/session"
)

var errMissingHeader = errors.New("o cabeçalho Authorization não foi fornecido")

// BearerToken extrai o token do cabeçalho "Authorization: Bearer <token>"
func BearerToken(c *gin.Context) (string, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", errMissingHeader
	}
	tokenParts := strings.Split(authHeader, " ")
	if len(tokenParts) != 2 || tokenParts[0] != "Bearer" || tokenParts[1] == "" {
		return "", ErrInvalidToken
	}
	return tokenParts[1], nil
}

// JWTAuthMiddleware cria um middleware para autenticação JWT.
// Com revoked nil a lista de revogação não é consultada.
func JWTAuthMiddleware(jwtService *JWTService, revoked RevocationStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := BearerToken(c)
		if err != nil {
			message := "Formato de token inválido"
			if errors.Is(err, errMissingHeader) {
				message = "Autenticação requerida"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, message, err.Error()))
			return
		}

		claims, err := jwtService.ValidateToken(token)
		if err != nil {
			message := "Token inválido"
			if errors.Is(err, ErrExpiredToken) {
				message = "Token expirado"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, message, err.Error()))
			return
		}

		if revoked != nil {
			isRevoked, err := revoked.IsRevoked(c.Request.Context(), claims.ID)
			if err != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao validar sessão", err.Error()))
				return
			}
			if isRevoked {
				c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "Sessão encerrada", ErrRevokedToken.Error()))
				return
			}
		}

		// "admin" em tokens antigos vira administrador
		role, err := user.ParseRole(claims.Role)
		if err != nil {
			role = ""
		}

		var expiresAt time.Time
		if claims.ExpiresAt != nil {
			expiresAt = claims.ExpiresAt.Time
		}
		sess := &session.Session{
			UserID:    claims.UserID,
			Email:     claims.Email,
			Name:      claims.Name,
			Role:      role,
			TokenID:   claims.ID,
			ExpiresAt: expiresAt,
		}

		c.Set("user_id", sess.UserID)
		c.Set("user_email", sess.Email)
		c.Set("user_name", sess.Name)
		c.Set("user_role", string(sess.Role))
		c.Request = c.Request.WithContext(session.WithSession(c.Request.Context(), sess))

		c.Next()
	}
}

// RoleAuthMiddleware cria um middleware para verificação de papel/função do usuário
func RoleAuthMiddleware(roles ...user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := GetCurrentUser(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "Autenticação requerida", ""))
			return
		}

		for _, r := range roles {
			if sess.Role == r {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(
			http.StatusForbidden,
			"Acesso negado",
			"Você não tem permissão para acessar este recurso",
		))
	}
}

// RequirePage aplica a tabela de navegação: só passa quem pode ver a página
func RequirePage(page navigation.Page) gin.HandlerFunc {
	return RoleAuthMiddleware(navigation.RolesFor(page)...)
}

// GetCurrentUser obtém a sessão do usuário atual
func GetCurrentUser(c *gin.Context) (*session.Session, bool) {
	return session.FromContext(c.Request.Context())
}
