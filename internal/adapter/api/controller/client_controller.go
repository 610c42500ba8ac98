package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/gestor-pme/internal/adapter/api/dto"
	"github.com/hugohenrick/gestor-pme/internal/domain/client"
	"github.com/hugohenrick/gestor-pme/internal/domain/entity"
	"github.com/hugohenrick/gestor-pme/pkg/logger"
)

// ClientController gerencia as requisições relacionadas a clientes
type ClientController struct {
	clientRepo client.Repository
	logger     logger.Logger
	now        Clock
}

// NewClientController cria uma nova instância de ClientController
func NewClientController(clientRepo client.Repository, logger logger.Logger) *ClientController {
	return &ClientController{
		clientRepo: clientRepo,
		logger:     logger,
		now:        time.Now,
	}
}

// Create cria um novo cliente
// @Summary Criar cliente
// @Description Cria um novo cliente no sistema
// @Tags clients
// @Accept json
// @Produce json
// @Security Bearer
// @Param client body dto.ClientRequest true "Dados do cliente"
// @Success 201 {object} dto.ClientResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /clients [post]
func (c *ClientController) Create(ctx *gin.Context) {
	var req dto.ClientRequest
	if !bindJSON(ctx, &req) {
		return
	}

	cl, err := client.NewClient(req.Name, client.Type(req.Type))
	if err != nil {
		badRequest(ctx, "erro ao criar cliente", err)
		return
	}
	if !c.apply(ctx, cl, req) {
		return
	}

	if err := c.clientRepo.Create(ctx.Request.Context(), cl); err != nil {
		respondError(ctx, c.logger, "erro ao salvar cliente", err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.ToClientResponse(cl))
}

func (c *ClientController) apply(ctx *gin.Context, cl *client.Client, req dto.ClientRequest) bool {
	birth, err := dto.ParseDate(req.BirthDate, c.now().Location())
	if err != nil {
		badRequest(ctx, "data de nascimento inválida", err)
		return false
	}
	if err := cl.Update(req.Name, req.Document, req.Email, req.Phone, client.Type(req.Type), birth, req.Address, req.Notes); err != nil {
		badRequest(ctx, "dados do cliente inválidos", err)
		return false
	}
	return true
}

// Get retorna um cliente pelo ID
// @Summary Buscar cliente
// @Tags clients
// @Produce json
// @Security Bearer
// @Param id path string true "ID do cliente"
// @Success 200 {object} dto.ClientResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /clients/{id} [get]
func (c *ClientController) Get(ctx *gin.Context) {
	cl, err := c.clientRepo.FindByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, "erro ao buscar cliente", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToClientResponse(cl))
}

// List retorna a lista de clientes
// @Summary Listar clientes
// @Description Lista os clientes com busca por nome ou documento
// @Tags clients
// @Produce json
// @Security Bearer
// @Param sort query string false "Ordenação, ex.: -created_date ou name"
// @Param search query string false "Busca por nome ou documento"
// @Success 200 {array} dto.ClientResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /clients [get]
func (c *ClientController) List(ctx *gin.Context) {
	clients, err := c.clientRepo.List(ctx.Request.Context(), listOptions(ctx))
	if err != nil {
		respondError(ctx, c.logger, "erro ao listar clientes", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToClientResponses(clients))
}

// Update atualiza um cliente
// @Summary Atualizar cliente
// @Tags clients
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "ID do cliente"
// @Param client body dto.ClientRequest true "Dados do cliente"
// @Success 200 {object} dto.ClientResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /clients/{id} [put]
func (c *ClientController) Update(ctx *gin.Context) {
	var req dto.ClientRequest
	if !bindJSON(ctx, &req) {
		return
	}

	cl, err := c.clientRepo.FindByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, "erro ao buscar cliente", err)
		return
	}
	if !c.apply(ctx, cl, req) {
		return
	}

	if err := c.clientRepo.Update(ctx.Request.Context(), cl); err != nil {
		respondError(ctx, c.logger, "erro ao atualizar cliente", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToClientResponse(cl))
}

// Delete remove um cliente
// @Summary Remover cliente
// @Tags clients
// @Produce json
// @Security Bearer
// @Param id path string true "ID do cliente"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /clients/{id} [delete]
func (c *ClientController) Delete(ctx *gin.Context) {
	if err := c.clientRepo.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		respondError(ctx, c.logger, "erro ao remover cliente", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Cliente removido com sucesso", nil))
}

// Birthdays lista os aniversários dos próximos meses
// @Summary Aniversariantes
// @Description Clientes com aniversário nos próximos 3 meses, do mais próximo ao mais distante
// @Tags clients
// @Produce json
// @Security Bearer
// @Success 200 {array} client.Birthday
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /clients/birthdays [get]
func (c *ClientController) Birthdays(ctx *gin.Context) {
	clients, err := c.clientRepo.List(ctx.Request.Context(), entity.ListOptions{})
	if err != nil {
		respondError(ctx, c.logger, "erro ao listar clientes", err)
		return
	}
	ctx.JSON(http.StatusOK, client.UpcomingBirthdays(clients, c.now(), client.BirthdayWindowMonths))
}
