package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/gestor-pme/internal/adapter/api/dto"
	"github.com/hugohenrick/gestor-pme/internal/domain/entity"
	"github.com/hugohenrick/gestor-pme/internal/domain/user"
	"github.com/hugohenrick/gestor-pme/pkg/logger"
)

// UserController gerencia o cadastro de funcionários
type UserController struct {
	userRepository user.Repository
	logger         logger.Logger
}

// NewUserController cria uma nova instância de UserController
func NewUserController(userRepository user.Repository, logger logger.Logger) *UserController {
	return &UserController{
		userRepository: userRepository,
		logger:         logger,
	}
}

// Create cadastra um novo funcionário
// @Summary Criar usuário
// @Description Cadastra um funcionário com função e senha
// @Tags users
// @Accept json
// @Produce json
// @Security Bearer
// @Param user body dto.CreateUserRequest true "Dados do usuário"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /users [post]
func (c *UserController) Create(ctx *gin.Context) {
	var req dto.CreateUserRequest
	if !bindJSON(ctx, &req) {
		return
	}

	role, _ := user.ParseRole(req.Role)
	u, err := user.NewUser(req.FullName, req.Email, role, req.Password)
	if err != nil {
		badRequest(ctx, "erro ao criar usuário", err)
		return
	}
	u.Department = user.Department(req.Department)
	u.Position = req.Position
	u.Phone = req.Phone
	if req.Active != nil {
		u.Active = *req.Active
	}
	if err := u.Validate(); err != nil {
		badRequest(ctx, "erro ao criar usuário", err)
		return
	}

	if err := c.userRepository.Create(ctx.Request.Context(), u); err != nil {
		respondError(ctx, c.logger, "erro ao salvar usuário", err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.ToUserResponse(u))
}

// GetByID retorna um usuário pelo ID
// @Summary Buscar usuário
// @Tags users
// @Produce json
// @Security Bearer
// @Param id path string true "ID do usuário"
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /users/{id} [get]
func (c *UserController) GetByID(ctx *gin.Context) {
	u, err := c.userRepository.FindByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, "erro ao buscar usuário", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToUserResponse(u))
}

// List retorna os usuários
// @Summary Listar usuários
// @Description Lista os funcionários com busca por nome ou email e filtro por função
// @Tags users
// @Produce json
// @Security Bearer
// @Param sort query string false "Ordenação, ex.: -created_date"
// @Param search query string false "Busca por nome ou email"
// @Param role query string false "Filtro por função"
// @Success 200 {array} dto.UserResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /users [get]
func (c *UserController) List(ctx *gin.Context) {
	users, err := c.userRepository.List(ctx.Request.Context(), listOptions(ctx))
	if err != nil {
		respondError(ctx, c.logger, "erro ao listar usuários", err)
		return
	}

	if r := ctx.Query("role"); r != "" && r != "all" {
		role, err := user.ParseRole(r)
		if err != nil {
			badRequest(ctx, "função inválida", err)
			return
		}
		users = entity.Filter(users, string(role), func(u *user.User, want string) bool {
			return string(u.Role) == want
		})
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponses(users))
}

// Update atualiza um funcionário
// @Summary Atualizar usuário
// @Description Atualiza os dados do funcionário. Senha vazia mantém a atual.
// @Tags users
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "ID do usuário"
// @Param user body dto.UpdateUserRequest true "Dados do usuário"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /users/{id} [put]
func (c *UserController) Update(ctx *gin.Context) {
	var req dto.UpdateUserRequest
	if !bindJSON(ctx, &req) {
		return
	}

	u, err := c.userRepository.FindByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, "erro ao buscar usuário", err)
		return
	}

	role, _ := user.ParseRole(req.Role)
	u.FullName = req.FullName
	u.Email = req.Email
	u.Role = role
	u.Department = user.Department(req.Department)
	u.Position = req.Position
	u.Phone = req.Phone
	u.PhotoURL = req.PhotoURL
	if req.Active != nil {
		u.Active = *req.Active
	}
	if req.Password != "" {
		if err := u.SetPassword(req.Password); err != nil {
			badRequest(ctx, "senha inválida", err)
			return
		}
	}
	u.UpdatedDate = time.Now()
	if err := u.Validate(); err != nil {
		badRequest(ctx, "dados inválidos", err)
		return
	}

	if err := c.userRepository.Update(ctx.Request.Context(), u); err != nil {
		respondError(ctx, c.logger, "erro ao atualizar usuário", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToUserResponse(u))
}

// CreateAdminUser cria o primeiro administrador do sistema
// @Summary Criar administrador inicial
// @Description Disponível apenas enquanto nenhum usuário estiver cadastrado
// @Tags setup
// @Accept json
// @Produce json
// @Param user body dto.SetupAdminRequest true "Dados do administrador"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /setup/admin [post]
func (c *UserController) CreateAdminUser(ctx *gin.Context) {
	var req dto.SetupAdminRequest
	if !bindJSON(ctx, &req) {
		return
	}

	existing, err := c.userRepository.List(ctx.Request.Context(), entity.ListOptions{})
	if err != nil {
		respondError(ctx, c.logger, "erro ao verificar usuários existentes", err)
		return
	}
	if len(existing) > 0 {
		ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "Usuário administrador já existe", "Já existe pelo menos um usuário cadastrado"))
		return
	}

	u, err := user.NewUser(req.FullName, req.Email, user.RoleAdministrator, req.Password)
	if err != nil {
		badRequest(ctx, "erro ao criar usuário", err)
		return
	}
	if err := c.userRepository.Create(ctx.Request.Context(), u); err != nil {
		respondError(ctx, c.logger, "erro ao salvar usuário", err)
		return
	}

	c.logger.Info("administrador inicial criado", "user_id", u.ID)
	ctx.JSON(http.StatusCreated, dto.ToUserResponse(u))
}
