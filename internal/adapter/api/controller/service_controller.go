package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/gestor-pme/internal/adapter/api/dto"
	"github.com/hugohenrick/gestor-pme/internal/domain/client"
	"github.com/hugohenrick/gestor-pme/internal/domain/service"
	"github.com/hugohenrick/gestor-pme/internal/domain/servicetype"
	"github.com/hugohenrick/gestor-pme/pkg/logger"
)

// ServiceController gerencia os serviços agendados
type ServiceController struct {
	serviceRepo     service.Repository
	clientRepo      client.Repository
	serviceTypeRepo servicetype.Repository
	logger          logger.Logger
	now             Clock
}

// NewServiceController cria uma nova instância de ServiceController
func NewServiceController(serviceRepo service.Repository, clientRepo client.Repository, serviceTypeRepo servicetype.Repository, logger logger.Logger) *ServiceController {
	return &ServiceController{
		serviceRepo:     serviceRepo,
		clientRepo:      clientRepo,
		serviceTypeRepo: serviceTypeRepo,
		logger:          logger,
		now:             time.Now,
	}
}

func toServiceResponse(s *service.Service, n *names) dto.ServiceResponse {
	return dto.ServiceResponse{
		Service:         s,
		StatusView:      s.Status.View(),
		ClientName:      n.client(s.ClientID),
		ServiceTypeName: n.serviceType(s.ServiceTypeID),
	}
}

func (c *ServiceController) respond(ctx *gin.Context, code int, s *service.Service) {
	n, err := loadNames(ctx.Request.Context(), c.clientRepo, c.serviceTypeRepo)
	if err != nil {
		respondError(ctx, c.logger, "erro ao carregar cadastros", err)
		return
	}
	ctx.JSON(code, toServiceResponse(s, n))
}

// apply copia a requisição para o serviço. O tipo escolhido preenche descrição e preço vazios.
func (c *ServiceController) apply(ctx *gin.Context, s *service.Service, req dto.ServiceRequest) bool {
	scheduled, err := dto.ParseDate(req.ScheduledDate, c.now().Location())
	if err != nil {
		badRequest(ctx, "data de agendamento inválida", err)
		return false
	}
	s.ClientID = req.ClientID
	s.ScheduledDate = scheduled
	s.Description = req.Description
	s.Price = req.Price.Value()
	s.Notes = req.Notes
	s.Status = service.Status(req.Status)
	s.ServiceTypeID = req.ServiceTypeID
	s.Normalize()

	if req.ServiceTypeID != "" {
		st, err := c.serviceTypeRepo.FindByID(ctx.Request.Context(), req.ServiceTypeID)
		if err != nil {
			respondError(ctx, c.logger, "erro ao buscar tipo de serviço", err)
			return false
		}
		s.ApplyServiceType(st)
	}
	if err := s.Validate(); err != nil {
		badRequest(ctx, "dados do serviço inválidos", err)
		return false
	}
	s.UpdatedDate = time.Now()
	return true
}

// Create agenda um serviço
// @Summary Criar serviço
// @Tags services
// @Accept json
// @Produce json
// @Security Bearer
// @Param service body dto.ServiceRequest true "Dados do serviço"
// @Success 201 {object} dto.ServiceResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /services [post]
func (c *ServiceController) Create(ctx *gin.Context) {
	var req dto.ServiceRequest
	if !bindJSON(ctx, &req) {
		return
	}

	s, err := service.NewService(req.ClientID, nil)
	if err != nil {
		badRequest(ctx, "erro ao criar serviço", err)
		return
	}
	if !c.apply(ctx, s, req) {
		return
	}

	if err := c.serviceRepo.Create(ctx.Request.Context(), s); err != nil {
		respondError(ctx, c.logger, "erro ao salvar serviço", err)
		return
	}
	c.respond(ctx, http.StatusCreated, s)
}

// Get retorna um serviço pelo ID
// @Summary Buscar serviço
// @Tags services
// @Produce json
// @Security Bearer
// @Param id path string true "ID do serviço"
// @Success 200 {object} dto.ServiceResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /services/{id} [get]
func (c *ServiceController) Get(ctx *gin.Context) {
	s, err := c.serviceRepo.FindByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, "erro ao buscar serviço", err)
		return
	}
	c.respond(ctx, http.StatusOK, s)
}

// List retorna os serviços
// @Summary Listar serviços
// @Tags services
// @Produce json
// @Security Bearer
// @Param sort query string false "Ordenação, ex.: -scheduled_date"
// @Success 200 {array} dto.ServiceResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /services [get]
func (c *ServiceController) List(ctx *gin.Context) {
	services, err := c.serviceRepo.List(ctx.Request.Context(), listOptions(ctx))
	if err != nil {
		respondError(ctx, c.logger, "erro ao listar serviços", err)
		return
	}
	n, err := loadNames(ctx.Request.Context(), c.clientRepo, c.serviceTypeRepo)
	if err != nil {
		respondError(ctx, c.logger, "erro ao carregar cadastros", err)
		return
	}

	out := make([]dto.ServiceResponse, len(services))
	for i, s := range services {
		out[i] = toServiceResponse(s, n)
	}
	ctx.JSON(http.StatusOK, out)
}

// Update atualiza um serviço
// @Summary Atualizar serviço
// @Tags services
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "ID do serviço"
// @Param service body dto.ServiceRequest true "Dados do serviço"
// @Success 200 {object} dto.ServiceResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /services/{id} [put]
func (c *ServiceController) Update(ctx *gin.Context) {
	var req dto.ServiceRequest
	if !bindJSON(ctx, &req) {
		return
	}

	s, err := c.serviceRepo.FindByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, "erro ao buscar serviço", err)
		return
	}
	if !c.apply(ctx, s, req) {
		return
	}

	if err := c.serviceRepo.Update(ctx.Request.Context(), s); err != nil {
		respondError(ctx, c.logger, "erro ao atualizar serviço", err)
		return
	}
	c.respond(ctx, http.StatusOK, s)
}

// Delete remove um serviço
// @Summary Remover serviço
// @Tags services
// @Produce json
// @Security Bearer
// @Param id path string true "ID do serviço"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /services/{id} [delete]
func (c *ServiceController) Delete(ctx *gin.Context) {
	if err := c.serviceRepo.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		respondError(ctx, c.logger, "erro ao remover serviço", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Serviço removido com sucesso", nil))
}
