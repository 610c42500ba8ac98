package controller

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/gestor-pme/internal/adapter/api/dto"
	"github.com/hugohenrick/gestor-pme/internal/domain/product"
	"github.com/hugohenrick/gestor-pme/internal/domain/sale"
	"github.com/hugohenrick/gestor-pme/internal/pos"
	"github.com/hugohenrick/gestor-pme/pkg/auth"
	"github.com/hugohenrick/gestor-pme/pkg/logger"
)

// POSService são as operações do PDV usadas pelo controller
type POSService interface {
	GetCart(ctx context.Context, operatorID string) (*pos.Cart, error)
	AddProduct(ctx context.Context, operatorID, productID string) (*pos.Cart, error)
	AddByCode(ctx context.Context, operatorID, code string) (*pos.Cart, error)
	UpdateQuantity(ctx context.Context, operatorID, productID string, quantity float64) (*pos.Cart, error)
	RemoveItem(ctx context.Context, operatorID, productID string) (*pos.Cart, error)
	ClearCart(ctx context.Context, operatorID string) error
	FinalizeSale(ctx context.Context, operatorID string, co pos.Checkout) (*sale.Sale, error)
	SearchProducts(ctx context.Context, search string) ([]*product.Product, error)
}

var _ POSService = (*pos.Service)(nil)

// POSController atende o ponto de venda. Cada operador tem o próprio carrinho.
type POSController struct {
	pos    POSService
	logger logger.Logger
}

// NewPOSController cria uma nova instância de POSController
func NewPOSController(service POSService, logger logger.Logger) *POSController {
	return &POSController{pos: service, logger: logger}
}

func operatorID(ctx *gin.Context) (string, bool) {
	sess, ok := auth.GetCurrentUser(ctx)
	if !ok || sess.UserID == "" {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "Autenticação requerida", ""))
		return "", false
	}
	return sess.UserID, true
}

func (c *POSController) cartResult(ctx *gin.Context, cart *pos.Cart, err error) {
	if err != nil {
		respondError(ctx, c.logger, "erro ao atualizar carrinho", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToCartResponse(cart))
}

// GetCart retorna o carrinho do operador
// @Summary Carrinho atual
// @Tags pos
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.CartResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /pos/cart [get]
func (c *POSController) GetCart(ctx *gin.Context) {
	op, ok := operatorID(ctx)
	if !ok {
		return
	}
	cart, err := c.pos.GetCart(ctx.Request.Context(), op)
	c.cartResult(ctx, cart, err)
}

// AddItem inclui um produto do catálogo
// @Summary Adicionar produto ao carrinho
// @Description Um produto já presente tem a quantidade incrementada
// @Tags pos
// @Accept json
// @Produce json
// @Security Bearer
// @Param item body dto.AddItemRequest true "Produto"
// @Success 200 {object} dto.CartResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /pos/cart/items [post]
func (c *POSController) AddItem(ctx *gin.Context) {
	var req dto.AddItemRequest
	if !bindJSON(ctx, &req) {
		return
	}
	op, ok := operatorID(ctx)
	if !ok {
		return
	}
	cart, err := c.pos.AddProduct(ctx.Request.Context(), op, req.ProductID)
	c.cartResult(ctx, cart, err)
}

// Scan inclui o produto pelo código de barras ou SKU
// @Summary Ler código
// @Tags pos
// @Accept json
// @Produce json
// @Security Bearer
// @Param scan body dto.ScanRequest true "Código lido"
// @Success 200 {object} dto.CartResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /pos/cart/scan [post]
func (c *POSController) Scan(ctx *gin.Context) {
	var req dto.ScanRequest
	if !bindJSON(ctx, &req) {
		return
	}
	op, ok := operatorID(ctx)
	if !ok {
		return
	}
	cart, err := c.pos.AddByCode(ctx.Request.Context(), op, req.Code)
	c.cartResult(ctx, cart, err)
}

// UpdateQuantity altera a quantidade de uma linha
// @Summary Alterar quantidade
// @Description Quantidades menores que 1 viram 1
// @Tags pos
// @Accept json
// @Produce json
// @Security Bearer
// @Param product_id path string true "ID do produto"
// @Param quantity body dto.QuantityRequest true "Quantidade"
// @Success 200 {object} dto.CartResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /pos/cart/items/{product_id} [put]
func (c *POSController) UpdateQuantity(ctx *gin.Context) {
	var req dto.QuantityRequest
	if !bindJSON(ctx, &req) {
		return
	}
	op, ok := operatorID(ctx)
	if !ok {
		return
	}
	cart, err := c.pos.UpdateQuantity(ctx.Request.Context(), op, ctx.Param("product_id"), req.Quantity.Value())
	c.cartResult(ctx, cart, err)
}

// RemoveItem retira uma linha do carrinho
// @Summary Remover item
// @Tags pos
// @Produce json
// @Security Bearer
// @Param product_id path string true "ID do produto"
// @Success 200 {object} dto.CartResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /pos/cart/items/{product_id} [delete]
func (c *POSController) RemoveItem(ctx *gin.Context) {
	op, ok := operatorID(ctx)
	if !ok {
		return
	}
	cart, err := c.pos.RemoveItem(ctx.Request.Context(), op, ctx.Param("product_id"))
	c.cartResult(ctx, cart, err)
}

// ClearCart esvazia o carrinho
// @Summary Limpar carrinho
// @Tags pos
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.CartResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /pos/cart [delete]
func (c *POSController) ClearCart(ctx *gin.Context) {
	op, ok := operatorID(ctx)
	if !ok {
		return
	}
	if err := c.pos.ClearCart(ctx.Request.Context(), op); err != nil {
		respondError(ctx, c.logger, "erro ao limpar carrinho", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToCartResponse(pos.NewCart()))
}

// Checkout finaliza a venda com o carrinho atual
// @Summary Finalizar venda
// @Description Exige carrinho com itens, cliente e forma de pagamento. Parcelas apenas no cartão de crédito.
// @Tags pos
// @Accept json
// @Produce json
// @Security Bearer
// @Param checkout body dto.CheckoutRequest true "Dados da finalização"
// @Success 201 {object} sale.Sale
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /pos/checkout [post]
func (c *POSController) Checkout(ctx *gin.Context) {
	var req dto.CheckoutRequest
	if !bindJSON(ctx, &req) {
		return
	}
	op, ok := operatorID(ctx)
	if !ok {
		return
	}
	s, err := c.pos.FinalizeSale(ctx.Request.Context(), op, req.Checkout())
	if err != nil {
		respondError(ctx, c.logger, "erro ao finalizar venda", err)
		return
	}
	ctx.JSON(http.StatusCreated, s)
}

// SearchProducts busca produtos para o PDV
// @Summary Buscar produtos no PDV
// @Tags pos
// @Produce json
// @Security Bearer
// @Param q query string false "Nome, SKU ou código de barras"
// @Success 200 {array} product.Product
// @Failure 500 {object} dto.ErrorResponse
// @Router /pos/products/search [get]
func (c *POSController) SearchProducts(ctx *gin.Context) {
	products, err := c.pos.SearchProducts(ctx.Request.Context(), ctx.Query("q"))
	if err != nil {
		respondError(ctx, c.logger, "erro ao buscar produtos", err)
		return
	}
	ctx.JSON(http.StatusOK, products)
}

// PaymentMethods lista as formas de pagamento do PDV
// @Summary Formas de pagamento
// @Tags pos
// @Produce json
// @Security Bearer
// @Success 200 {array} dto.PaymentMethodOption
// @Router /pos/payment-methods [get]
func (c *POSController) PaymentMethods(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.POSPaymentMethods())
}
