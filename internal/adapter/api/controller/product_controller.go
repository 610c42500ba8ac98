package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/gestor-pme/internal/adapter/api/dto"
	"github.com/hugohenrick/gestor-pme/internal/domain/product"
	"github.com/hugohenrick/gestor-pme/pkg/logger"
)

// ProductController gerencia o catálogo de produtos
type ProductController struct {
	productRepo product.Repository
	logger      logger.Logger
}

// NewProductController cria uma nova instância de ProductController
func NewProductController(productRepo product.Repository, logger logger.Logger) *ProductController {
	return &ProductController{
		productRepo: productRepo,
		logger:      logger,
	}
}

// Create cria um novo produto
// @Summary Criar produto
// @Description Preço, custo e estoque inválidos são gravados como 0
// @Tags products
// @Accept json
// @Produce json
// @Security Bearer
// @Param product body dto.ProductRequest true "Dados do produto"
// @Success 201 {object} product.Product
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products [post]
func (c *ProductController) Create(ctx *gin.Context) {
	var req dto.ProductRequest
	if !bindJSON(ctx, &req) {
		return
	}

	p, err := product.NewProduct(req.Name, req.Price.Value())
	if err != nil {
		badRequest(ctx, "erro ao criar produto", err)
		return
	}
	req.Apply(p)
	if err := p.Validate(); err != nil {
		badRequest(ctx, "erro ao criar produto", err)
		return
	}

	if err := c.productRepo.Create(ctx.Request.Context(), p); err != nil {
		respondError(ctx, c.logger, "erro ao salvar produto", err)
		return
	}
	ctx.JSON(http.StatusCreated, p)
}

// Get retorna um produto pelo ID
// @Summary Buscar produto
// @Tags products
// @Produce json
// @Security Bearer
// @Param id path string true "ID do produto"
// @Success 200 {object} product.Product
// @Failure 404 {object} dto.ErrorResponse
// @Router /products/{id} [get]
func (c *ProductController) Get(ctx *gin.Context) {
	p, err := c.productRepo.FindByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, "erro ao buscar produto", err)
		return
	}
	ctx.JSON(http.StatusOK, p)
}

// List retorna os produtos
// @Summary Listar produtos
// @Description Busca por nome, SKU, descrição ou código de barras
// @Tags products
// @Produce json
// @Security Bearer
// @Param sort query string false "Ordenação, ex.: name ou -price"
// @Param search query string false "Texto de busca"
// @Success 200 {array} product.Product
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products [get]
func (c *ProductController) List(ctx *gin.Context) {
	products, err := c.productRepo.List(ctx.Request.Context(), listOptions(ctx))
	if err != nil {
		respondError(ctx, c.logger, "erro ao listar produtos", err)
		return
	}
	ctx.JSON(http.StatusOK, products)
}

// Update atualiza um produto
// @Summary Atualizar produto
// @Tags products
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "ID do produto"
// @Param product body dto.ProductRequest true "Dados do produto"
// @Success 200 {object} product.Product
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products/{id} [put]
func (c *ProductController) Update(ctx *gin.Context) {
	var req dto.ProductRequest
	if !bindJSON(ctx, &req) {
		return
	}

	p, err := c.productRepo.FindByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, "erro ao buscar produto", err)
		return
	}
	req.Apply(p)
	if err := p.Validate(); err != nil {
		badRequest(ctx, "dados do produto inválidos", err)
		return
	}

	if err := c.productRepo.Update(ctx.Request.Context(), p); err != nil {
		respondError(ctx, c.logger, "erro ao atualizar produto", err)
		return
	}
	ctx.JSON(http.StatusOK, p)
}

// Delete remove um produto
// @Summary Remover produto
// @Tags products
// @Produce json
// @Security Bearer
// @Param id path string true "ID do produto"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products/{id} [delete]
func (c *ProductController) Delete(ctx *gin.Context) {
	if err := c.productRepo.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		respondError(ctx, c.logger, "erro ao remover produto", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Produto removido com sucesso", nil))
}
