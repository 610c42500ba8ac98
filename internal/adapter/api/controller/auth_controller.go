package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/gestor-pme/internal/adapter/api/dto"
	"github.com/hugohenrick/gestor-pme/internal/domain/user"
	"github.com/hugohenrick/gestor-pme/internal/navigation"
	"github.com/hugohenrick/gestor-pme/pkg/auth"
	"github.com/hugohenrick/gestor-pme/pkg/logger"
)

// AuthController gerencia as requisições relacionadas à autenticação e à sessão do usuário
type AuthController struct {
	userRepository user.Repository
	jwtService     *auth.JWTService
	revoked        auth.RevocationStore
	logger         logger.Logger
}

// NewAuthController cria uma nova instância de AuthController
func NewAuthController(userRepository user.Repository, jwtService *auth.JWTService, revoked auth.RevocationStore, logger logger.Logger) *AuthController {
	return &AuthController{
		userRepository: userRepository,
		jwtService:     jwtService,
		revoked:        revoked,
		logger:         logger,
	}
}

// Login autentica um usuário e retorna um token JWT
// @Summary Autentica um usuário
// @Description Verifica as credenciais do usuário e retorna um token JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Credenciais de login"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 429 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var request dto.LoginRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	u, err := c.userRepository.FindByEmail(ctx.Request.Context(), request.Email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "Credenciais inválidas", "Email ou senha incorretos"))
			return
		}
		c.logger.Error("erro ao buscar usuário no login", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao autenticar usuário", err.Error()))
		return
	}

	if !u.CheckPassword(request.Password) {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "Credenciais inválidas", "Email ou senha incorretos"))
		return
	}

	if !u.IsActive() {
		ctx.JSON(http.StatusForbidden, dto.NewErrorResponse(http.StatusForbidden, "Usuário inativo", "Sua conta está desativada ou bloqueada"))
		return
	}

	c.issue(ctx, u)
}

// RefreshToken renova um token JWT
// @Summary Renova um token JWT
// @Description Emite um novo token a partir de um token assinado por esta API, mesmo que expirado
// @Tags auth
// @Accept json
// @Produce json
// @Param refresh body dto.RefreshTokenRequest true "Token a ser renovado"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/refresh [post]
func (c *AuthController) RefreshToken(ctx *gin.Context) {
	var request dto.RefreshTokenRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	claims, err := c.jwtService.ParseAllowExpired(request.RefreshToken)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "Token inválido", err.Error()))
		return
	}

	if c.revoked != nil {
		revoked, err := c.revoked.IsRevoked(ctx.Request.Context(), claims.ID)
		if err != nil {
			c.logger.Error("erro ao consultar tokens revogados", "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao renovar token", err.Error()))
			return
		}
		if revoked {
			ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "Sessão encerrada", auth.ErrRevokedToken.Error()))
			return
		}
	}

	u, err := c.userRepository.FindByID(ctx.Request.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "Token inválido", err.Error()))
			return
		}
		c.logger.Error("erro ao buscar usuário na renovação", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao renovar token", err.Error()))
		return
	}
	if !u.IsActive() {
		ctx.JSON(http.StatusForbidden, dto.NewErrorResponse(http.StatusForbidden, "Usuário inativo", "Sua conta está desativada ou bloqueada"))
		return
	}

	// o token antigo deixa de valer
	if c.revoked != nil && claims.ExpiresAt != nil {
		if err := c.revoked.Revoke(ctx.Request.Context(), claims.ID, claims.ExpiresAt.Time); err != nil {
			c.logger.Warn("erro ao revogar token renovado", "error", err, "user_id", u.ID)
		}
	}

	c.issue(ctx, u)
}

func (c *AuthController) issue(ctx *gin.Context, u *user.User) {
	token, expiresAt, err := c.jwtService.GenerateToken(u)
	if err != nil {
		c.logger.Error("erro ao gerar token", "error", err, "user_id", u.ID)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao gerar token", err.Error()))
		return
	}

	if err := c.userRepository.UpdateLastLogin(ctx.Request.Context(), u.ID); err != nil {
		c.logger.Warn("erro ao atualizar último login", "error", err, "user_id", u.ID)
	}

	// o refresh token é o próprio token de acesso
	ctx.JSON(http.StatusOK, dto.LoginResponse{
		User:         dto.ToUserResponse(u),
		AccessToken:  token,
		RefreshToken: token,
		ExpiresAt:    expiresAt,
	})
}

// Logout encerra a sessão atual
// @Summary Encerra a sessão
// @Description Revoga o token atual até a sua expiração
// @Tags auth
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	sess, ok := auth.GetCurrentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "Autenticação requerida", ""))
		return
	}

	if c.revoked != nil {
		if err := c.revoked.Revoke(ctx.Request.Context(), sess.TokenID, sess.ExpiresAt); err != nil {
			c.logger.Error("erro ao revogar token", "error", err, "user_id", sess.UserID)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao encerrar sessão", err.Error()))
			return
		}
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Sessão encerrada", nil))
}

// currentUser carrega o usuário da sessão; em caso de falha a resposta já foi escrita
func (c *AuthController) currentUser(ctx *gin.Context) (*user.User, bool) {
	sess, ok := auth.GetCurrentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "Autenticação requerida", ""))
		return nil, false
	}
	u, err := c.userRepository.FindByID(ctx.Request.Context(), sess.UserID)
	if err != nil {
		respondError(ctx, c.logger, "erro ao buscar usuário", err)
		return nil, false
	}
	return u, true
}

// Me retorna a sessão do usuário autenticado
// @Summary Sessão atual
// @Description Retorna o usuário, a função, o tema e o menu visível
// @Tags auth
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.SessionResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	u, ok := c.currentUser(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, sessionResponse(u))
}

func sessionResponse(u *user.User) dto.SessionResponse {
	return dto.SessionResponse{
		User:       dto.ToUserResponse(u),
		Role:       string(u.Role),
		RoleLabel:  u.Role.Label(),
		Theme:      string(u.Theme),
		Navigation: navigation.Visible(u.Role),
	}
}

// UpdateMe atualiza os dados do próprio usuário
// @Summary Atualizar meus dados
// @Description Altera departamento, cargo, telefone, foto e tema. Nome, email e função não são alterados.
// @Tags auth
// @Accept json
// @Produce json
// @Security Bearer
// @Param profile body dto.ProfileRequest true "Dados do perfil"
// @Success 200 {object} dto.SessionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/me [put]
func (c *AuthController) UpdateMe(ctx *gin.Context) {
	var req dto.ProfileRequest
	if !bindJSON(ctx, &req) {
		return
	}
	u, ok := c.currentUser(ctx)
	if !ok {
		return
	}

	update := user.ProfileUpdate{Position: req.Position, Phone: req.Phone, PhotoURL: req.PhotoURL}
	if req.Department != nil {
		d := user.Department(*req.Department)
		update.Department = &d
	}
	if req.Theme != nil {
		t := user.Theme(*req.Theme)
		update.Theme = &t
	}
	if err := u.ApplyProfile(update); err != nil {
		badRequest(ctx, "dados inválidos", err)
		return
	}

	if err := c.userRepository.Update(ctx.Request.Context(), u); err != nil {
		respondError(ctx, c.logger, "erro ao atualizar perfil", err)
		return
	}
	ctx.JSON(http.StatusOK, sessionResponse(u))
}

// ToggleTheme alterna o tema entre claro e escuro
// @Summary Alternar tema
// @Tags auth
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.ThemeResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/me/theme [patch]
func (c *AuthController) ToggleTheme(ctx *gin.Context) {
	u, ok := c.currentUser(ctx)
	if !ok {
		return
	}
	theme := u.ToggleTheme()
	if err := c.userRepository.Update(ctx.Request.Context(), u); err != nil {
		respondError(ctx, c.logger, "erro ao salvar tema", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ThemeResponse{Theme: string(theme)})
}

// UpdateCompany substitui os dados da empresa
// @Summary Dados da empresa
// @Tags auth
// @Accept json
// @Produce json
// @Security Bearer
// @Param company body dto.CompanyDataRequest true "Dados da empresa"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/me/company [put]
func (c *AuthController) UpdateCompany(ctx *gin.Context) {
	var req dto.CompanyDataRequest
	if !bindJSON(ctx, &req) {
		return
	}
	u, ok := c.currentUser(ctx)
	if !ok {
		return
	}
	u.SetCompanyData(user.CompanyData{
		Name:     req.Name,
		Document: req.Document,
		Phone:    req.Phone,
		Email:    req.Email,
		Address:  req.Address,
		LogoURL:  req.LogoURL,
	})
	if err := c.userRepository.Update(ctx.Request.Context(), u); err != nil {
		respondError(ctx, c.logger, "erro ao salvar dados da empresa", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToUserResponse(u))
}

// ChangePassword altera a senha do próprio usuário
// @Summary Alterar senha
// @Tags auth
// @Accept json
// @Produce json
// @Security Bearer
// @Param password body dto.ChangePasswordRequest true "Senha atual e nova senha"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/me/password [put]
func (c *AuthController) ChangePassword(ctx *gin.Context) {
	var req dto.ChangePasswordRequest
	if !bindJSON(ctx, &req) {
		return
	}
	u, ok := c.currentUser(ctx)
	if !ok {
		return
	}
	if !u.CheckPassword(req.CurrentPassword) {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Senha atual incorreta", ""))
		return
	}
	if err := u.SetPassword(req.NewPassword); err != nil {
		badRequest(ctx, "senha inválida", err)
		return
	}
	if err := c.userRepository.Update(ctx.Request.Context(), u); err != nil {
		respondError(ctx, c.logger, "erro ao alterar senha", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Senha alterada com sucesso", nil))
}
