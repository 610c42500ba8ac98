package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/gestor-pme/internal/adapter/api/dto"
	"github.com/hugohenrick/gestor-pme/internal/domain/servicetype"
	"github.com/hugohenrick/gestor-pme/pkg/logger"
)

// ServiceTypeController gerencia os tipos de serviço
type ServiceTypeController struct {
	serviceTypeRepo servicetype.Repository
	logger          logger.Logger
}

// NewServiceTypeController cria uma nova instância de ServiceTypeController
func NewServiceTypeController(serviceTypeRepo servicetype.Repository, logger logger.Logger) *ServiceTypeController {
	return &ServiceTypeController{serviceTypeRepo: serviceTypeRepo, logger: logger}
}

// Create cria um tipo de serviço
// @Summary Criar tipo de serviço
// @Tags service-types
// @Accept json
// @Produce json
// @Security Bearer
// @Param service_type body dto.ServiceTypeRequest true "Dados do tipo de serviço"
// @Success 201 {object} servicetype.ServiceType
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /service-types [post]
func (c *ServiceTypeController) Create(ctx *gin.Context) {
	var req dto.ServiceTypeRequest
	if !bindJSON(ctx, &req) {
		return
	}

	st, err := servicetype.NewServiceType(req.Name, req.BasePrice.Value())
	if err != nil {
		badRequest(ctx, "erro ao criar tipo de serviço", err)
		return
	}
	req.Apply(st)

	if err := c.serviceTypeRepo.Create(ctx.Request.Context(), st); err != nil {
		respondError(ctx, c.logger, "erro ao salvar tipo de serviço", err)
		return
	}
	ctx.JSON(http.StatusCreated, st)
}

// Get retorna um tipo de serviço pelo ID
// @Summary Buscar tipo de serviço
// @Tags service-types
// @Produce json
// @Security Bearer
// @Param id path string true "ID do tipo de serviço"
// @Success 200 {object} servicetype.ServiceType
// @Failure 404 {object} dto.ErrorResponse
// @Router /service-types/{id} [get]
func (c *ServiceTypeController) Get(ctx *gin.Context) {
	st, err := c.serviceTypeRepo.FindByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, "erro ao buscar tipo de serviço", err)
		return
	}
	ctx.JSON(http.StatusOK, st)
}

// List retorna os tipos de serviço
// @Summary Listar tipos de serviço
// @Tags service-types
// @Produce json
// @Security Bearer
// @Param sort query string false "Ordenação, ex.: name"
// @Param search query string false "Busca por nome ou categoria"
// @Success 200 {array} servicetype.ServiceType
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /service-types [get]
func (c *ServiceTypeController) List(ctx *gin.Context) {
	types, err := c.serviceTypeRepo.List(ctx.Request.Context(), listOptions(ctx))
	if err != nil {
		respondError(ctx, c.logger, "erro ao listar tipos de serviço", err)
		return
	}
	ctx.JSON(http.StatusOK, types)
}

// Update atualiza um tipo de serviço
// @Summary Atualizar tipo de serviço
// @Tags service-types
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "ID do tipo de serviço"
// @Param service_type body dto.ServiceTypeRequest true "Dados do tipo de serviço"
// @Success 200 {object} servicetype.ServiceType
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /service-types/{id} [put]
func (c *ServiceTypeController) Update(ctx *gin.Context) {
	var req dto.ServiceTypeRequest
	if !bindJSON(ctx, &req) {
		return
	}

	st, err := c.serviceTypeRepo.FindByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, "erro ao buscar tipo de serviço", err)
		return
	}
	req.Apply(st)
	st.UpdatedDate = time.Now()
	if err := st.Validate(); err != nil {
		badRequest(ctx, "dados do tipo de serviço inválidos", err)
		return
	}

	if err := c.serviceTypeRepo.Update(ctx.Request.Context(), st); err != nil {
		respondError(ctx, c.logger, "erro ao atualizar tipo de serviço", err)
		return
	}
	ctx.JSON(http.StatusOK, st)
}

// Delete remove um tipo de serviço
// @Summary Remover tipo de serviço
// @Tags service-types
// @Produce json
// @Security Bearer
// @Param id path string true "ID do tipo de serviço"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /service-types/{id} [delete]
func (c *ServiceTypeController) Delete(ctx *gin.Context) {
	if err := c.serviceTypeRepo.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		respondError(ctx, c.logger, "erro ao remover tipo de serviço", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Tipo de serviço removido com sucesso", nil))
}
