package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/gestor-pme/internal/adapter/api/dto"
	"github.com/hugohenrick/gestor-pme/internal/domain/client"
	"github.com/hugohenrick/gestor-pme/internal/domain/product"
	"github.com/hugohenrick/gestor-pme/internal/domain/serviceorder"
	"github.com/hugohenrick/gestor-pme/internal/domain/servicetype"
	"github.com/hugohenrick/gestor-pme/pkg/logger"
)

// ServiceOrderController gerencia as ordens de serviço
type ServiceOrderController struct {
	orderRepo       serviceorder.Repository
	clientRepo      client.Repository
	serviceTypeRepo servicetype.Repository
	productRepo     product.Repository
	logger          logger.Logger
	now             Clock
}

// NewServiceOrderController cria uma nova instância de ServiceOrderController
func NewServiceOrderController(
	orderRepo serviceorder.Repository,
	clientRepo client.Repository,
	serviceTypeRepo servicetype.Repository,
	productRepo product.Repository,
	logger logger.Logger,
) *ServiceOrderController {
	return &ServiceOrderController{
		orderRepo:       orderRepo,
		clientRepo:      clientRepo,
		serviceTypeRepo: serviceTypeRepo,
		productRepo:     productRepo,
		logger:          logger,
		now:             time.Now,
	}
}

func toServiceOrderResponse(o *serviceorder.ServiceOrder, n *names) dto.ServiceOrderResponse {
	return dto.ServiceOrderResponse{
		ServiceOrder:    o,
		StatusView:      o.Status.View(),
		ClientName:      n.client(o.ClientID),
		ServiceTypeName: n.serviceType(o.ServiceTypeID),
		Total:           o.Total(),
	}
}

func (c *ServiceOrderController) respond(ctx *gin.Context, code int, o *serviceorder.ServiceOrder) {
	n, err := loadNames(ctx.Request.Context(), c.clientRepo, c.serviceTypeRepo)
	if err != nil {
		respondError(ctx, c.logger, "erro ao carregar cadastros", err)
		return
	}
	ctx.JSON(code, toServiceOrderResponse(o, n))
}

// apply copia a requisição para a ordem. Trocar o tipo de serviço redefine descrição e preço;
// valores enviados explicitamente prevalecem.
func (c *ServiceOrderController) apply(ctx *gin.Context, o *serviceorder.ServiceOrder, req dto.ServiceOrderRequest) bool {
	scheduled, err := serviceorder.CombineSchedule(req.ScheduledDate, req.ScheduledTime, c.now().Location())
	if err != nil {
		badRequest(ctx, "data de agendamento inválida", err)
		return false
	}

	if req.ServiceTypeID == "" {
		o.ServiceTypeID = ""
	} else if req.ServiceTypeID != o.ServiceTypeID {
		st, err := c.serviceTypeRepo.FindByID(ctx.Request.Context(), req.ServiceTypeID)
		if err != nil {
			respondError(ctx, c.logger, "erro ao buscar tipo de serviço", err)
			return false
		}
		o.ApplyServiceType(st)
	}
	if req.Description != "" {
		o.Description = req.Description
	}
	if req.Price != nil {
		o.Price = req.Price.Value()
	}

	o.ClientID = req.ClientID
	o.Status = serviceorder.Status(req.Status)
	o.ScheduledDate = scheduled
	o.ClientItem = req.ClientItem
	o.TechnicianNotes = req.TechnicianNotes

	o.Products = []serviceorder.Product{}
	for _, line := range req.Products {
		price := line.Price.Ptr()
		if price == nil {
			p, err := c.productRepo.FindByID(ctx.Request.Context(), line.ProductID)
			if err != nil {
				respondError(ctx, c.logger, "erro ao buscar produto", err)
				return false
			}
			price = &p.Price
		}
		o.AddProduct(line.ProductID, *price, line.Quantity.Value())
	}

	o.Normalize()
	if err := o.Validate(); err != nil {
		badRequest(ctx, "dados da ordem de serviço inválidos", err)
		return false
	}
	o.UpdatedDate = time.Now()
	return true
}

// Create abre uma ordem de serviço
// @Summary Criar ordem de serviço
// @Description O número é gerado em sequência. A data e a hora são combinadas no agendamento.
// @Tags service-orders
// @Accept json
// @Produce json
// @Security Bearer
// @Param order body dto.ServiceOrderRequest true "Dados da ordem"
// @Success 201 {object} dto.ServiceOrderResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /service-orders [post]
func (c *ServiceOrderController) Create(ctx *gin.Context) {
	var req dto.ServiceOrderRequest
	if !bindJSON(ctx, &req) {
		return
	}

	o, err := serviceorder.NewServiceOrder(req.ClientID)
	if err != nil {
		badRequest(ctx, "erro ao criar ordem de serviço", err)
		return
	}
	if !c.apply(ctx, o, req) {
		return
	}
	number, err := c.orderRepo.NextNumber(ctx.Request.Context())
	if err != nil {
		respondError(ctx, c.logger, "erro ao gerar número da ordem", err)
		return
	}
	o.Number = number

	if err := c.orderRepo.Create(ctx.Request.Context(), o); err != nil {
		respondError(ctx, c.logger, "erro ao salvar ordem de serviço", err)
		return
	}
	c.logger.Info("ordem de serviço aberta", "order_id", o.ID, "number", o.Number)
	c.respond(ctx, http.StatusCreated, o)
}

// Get retorna uma ordem de serviço pelo ID
// @Summary Buscar ordem de serviço
// @Tags service-orders
// @Produce json
// @Security Bearer
// @Param id path string true "ID da ordem"
// @Success 200 {object} dto.ServiceOrderResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /service-orders/{id} [get]
func (c *ServiceOrderController) Get(ctx *gin.Context) {
	o, err := c.orderRepo.FindByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, "erro ao buscar ordem de serviço", err)
		return
	}
	c.respond(ctx, http.StatusOK, o)
}

// List retorna as ordens de serviço
// @Summary Listar ordens de serviço
// @Tags service-orders
// @Produce json
// @Security Bearer
// @Param sort query string false "Ordenação, ex.: -created_date ou number"
// @Success 200 {array} dto.ServiceOrderResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /service-orders [get]
func (c *ServiceOrderController) List(ctx *gin.Context) {
	orders, err := c.orderRepo.List(ctx.Request.Context(), listOptions(ctx))
	if err != nil {
		respondError(ctx, c.logger, "erro ao listar ordens de serviço", err)
		return
	}
	n, err := loadNames(ctx.Request.Context(), c.clientRepo, c.serviceTypeRepo)
	if err != nil {
		respondError(ctx, c.logger, "erro ao carregar cadastros", err)
		return
	}

	out := make([]dto.ServiceOrderResponse, len(orders))
	for i, o := range orders {
		out[i] = toServiceOrderResponse(o, n)
	}
	ctx.JSON(http.StatusOK, out)
}

// Update atualiza uma ordem de serviço
// @Summary Atualizar ordem de serviço
// @Description O número da ordem não é alterado
// @Tags service-orders
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "ID da ordem"
// @Param order body dto.ServiceOrderRequest true "Dados da ordem"
// @Success 200 {object} dto.ServiceOrderResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /service-orders/{id} [put]
func (c *ServiceOrderController) Update(ctx *gin.Context) {
	var req dto.ServiceOrderRequest
	if !bindJSON(ctx, &req) {
		return
	}

	o, err := c.orderRepo.FindByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, "erro ao buscar ordem de serviço", err)
		return
	}
	if !c.apply(ctx, o, req) {
		return
	}

	if err := c.orderRepo.Update(ctx.Request.Context(), o); err != nil {
		respondError(ctx, c.logger, "erro ao atualizar ordem de serviço", err)
		return
	}
	c.respond(ctx, http.StatusOK, o)
}

// Delete remove uma ordem de serviço
// @Summary Remover ordem de serviço
// @Tags service-orders
// @Produce json
// @Security Bearer
// @Param id path string true "ID da ordem"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /service-orders/{id} [delete]
func (c *ServiceOrderController) Delete(ctx *gin.Context) {
	if err := c.orderRepo.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		respondError(ctx, c.logger, "erro ao remover ordem de serviço", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Ordem de serviço removida com sucesso", nil))
}

// Print devolve o aviso de impressão da ordem
// @Summary Imprimir ordem de serviço
// @Tags service-orders
// @Produce json
// @Security Bearer
// @Param id path string true "ID da ordem"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /service-orders/{id}/print [get]
func (c *ServiceOrderController) Print(ctx *gin.Context) {
	o, err := c.orderRepo.FindByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, "erro ao buscar ordem de serviço", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Impressão de ordem de serviço em desenvolvimento", gin.H{"id": o.ID, "number": o.Number}))
}
