package controller

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/gestor-pme/internal/adapter/api/dto"
	"github.com/hugohenrick/gestor-pme/internal/domain/client"
	"github.com/hugohenrick/gestor-pme/internal/domain/entity"
	"github.com/hugohenrick/gestor-pme/internal/domain/sale"
	"github.com/hugohenrick/gestor-pme/pkg/logger"
)

// SaleController gerencia as vendas registradas
type SaleController struct {
	saleRepo   sale.Repository
	clientRepo client.Repository
	logger     logger.Logger
}

// NewSaleController cria uma nova instância de SaleController
func NewSaleController(saleRepo sale.Repository, clientRepo client.Repository, logger logger.Logger) *SaleController {
	return &SaleController{
		saleRepo:   saleRepo,
		clientRepo: clientRepo,
		logger:     logger,
	}
}

func (c *SaleController) clientIndex(ctx context.Context) (map[string]*client.Client, error) {
	clients, err := c.clientRepo.List(ctx, entity.ListOptions{})
	if err != nil {
		return nil, err
	}
	return entity.IndexBy(clients, func(cl *client.Client) string { return cl.ID }), nil
}

func toSaleResponse(s *sale.Sale, clients map[string]*client.Client) dto.SaleResponse {
	return dto.SaleResponse{
		Sale:               s,
		PaymentMethodLabel: s.PaymentMethod.Label(),
		ClientName:         client.NameOf(clients, s.ClientID),
	}
}

// Create registra uma venda
// @Summary Registrar venda
// @Description O total é a soma de preço x quantidade dos itens
// @Tags sales
// @Accept json
// @Produce json
// @Security Bearer
// @Param sale body dto.SaleRequest true "Dados da venda"
// @Success 201 {object} dto.SaleResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales [post]
func (c *SaleController) Create(ctx *gin.Context) {
	var req dto.SaleRequest
	if !bindJSON(ctx, &req) {
		return
	}

	s, err := sale.NewSale(req.ClientID, req.SaleItems(), sale.PaymentMethod(req.PaymentMethod), int(req.Installments))
	if err != nil {
		badRequest(ctx, "erro ao registrar venda", err)
		return
	}
	if req.Status != "" {
		s.Status = sale.Status(req.Status)
	}

	if err := c.saleRepo.Create(ctx.Request.Context(), s); err != nil {
		respondError(ctx, c.logger, "erro ao salvar venda", err)
		return
	}
	c.respond(ctx, http.StatusCreated, s)
}

func (c *SaleController) respond(ctx *gin.Context, code int, s *sale.Sale) {
	clients, err := c.clientIndex(ctx.Request.Context())
	if err != nil {
		respondError(ctx, c.logger, "erro ao carregar clientes", err)
		return
	}
	ctx.JSON(code, toSaleResponse(s, clients))
}

// Get retorna uma venda pelo ID
// @Summary Buscar venda
// @Tags sales
// @Produce json
// @Security Bearer
// @Param id path string true "ID da venda"
// @Success 200 {object} dto.SaleResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /sales/{id} [get]
func (c *SaleController) Get(ctx *gin.Context) {
	s, err := c.saleRepo.FindByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, "erro ao buscar venda", err)
		return
	}
	c.respond(ctx, http.StatusOK, s)
}

// List retorna as vendas
// @Summary Listar vendas
// @Tags sales
// @Produce json
// @Security Bearer
// @Param sort query string false "Ordenação, ex.: -created_date ou -total"
// @Success 200 {array} dto.SaleResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales [get]
func (c *SaleController) List(ctx *gin.Context) {
	sales, err := c.saleRepo.List(ctx.Request.Context(), listOptions(ctx))
	if err != nil {
		respondError(ctx, c.logger, "erro ao listar vendas", err)
		return
	}
	clients, err := c.clientIndex(ctx.Request.Context())
	if err != nil {
		respondError(ctx, c.logger, "erro ao carregar clientes", err)
		return
	}

	out := make([]dto.SaleResponse, len(sales))
	for i, s := range sales {
		out[i] = toSaleResponse(s, clients)
	}
	ctx.JSON(http.StatusOK, out)
}

// Update atualiza uma venda
// @Summary Atualizar venda
// @Tags sales
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "ID da venda"
// @Param sale body dto.SaleRequest true "Dados da venda"
// @Success 200 {object} dto.SaleResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales/{id} [put]
func (c *SaleController) Update(ctx *gin.Context) {
	var req dto.SaleRequest
	if !bindJSON(ctx, &req) {
		return
	}

	s, err := c.saleRepo.FindByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, "erro ao buscar venda", err)
		return
	}

	method := sale.PaymentMethod(req.PaymentMethod)
	installments, err := sale.NormalizeInstallments(method, int(req.Installments))
	if err != nil {
		badRequest(ctx, "dados da venda inválidos", err)
		return
	}
	s.ClientID = req.ClientID
	s.Items = req.SaleItems()
	s.PaymentMethod = method
	s.Installments = installments
	if req.Status != "" {
		s.Status = sale.Status(req.Status)
	}
	s.Recalculate()

	if err := c.saleRepo.Update(ctx.Request.Context(), s); err != nil {
		respondError(ctx, c.logger, "erro ao atualizar venda", err)
		return
	}
	c.respond(ctx, http.StatusOK, s)
}
