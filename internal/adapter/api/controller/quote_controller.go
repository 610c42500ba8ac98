package controller

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/gestor-pme/internal/adapter/api/dto"
	"github.com/hugohenrick/gestor-pme/internal/domain/client"
	"github.com/hugohenrick/gestor-pme/internal/domain/entity"
	"github.com/hugohenrick/gestor-pme/internal/domain/product"
	"github.com/hugohenrick/gestor-pme/internal/domain/quote"
	"github.com/hugohenrick/gestor-pme/internal/domain/servicetype"
	"github.com/hugohenrick/gestor-pme/pkg/logger"
)

// QuoteController gerencia os orçamentos
type QuoteController struct {
	quoteRepo       quote.Repository
	clientRepo      client.Repository
	productRepo     product.Repository
	serviceTypeRepo servicetype.Repository
	logger          logger.Logger
	now             Clock
}

// NewQuoteController cria uma nova instância de QuoteController
func NewQuoteController(
	quoteRepo quote.Repository,
	clientRepo client.Repository,
	productRepo product.Repository,
	serviceTypeRepo servicetype.Repository,
	logger logger.Logger,
) *QuoteController {
	return &QuoteController{
		quoteRepo:       quoteRepo,
		clientRepo:      clientRepo,
		productRepo:     productRepo,
		serviceTypeRepo: serviceTypeRepo,
		logger:          logger,
		now:             time.Now,
	}
}

// fill substitui itens, validade e observações a partir da requisição
func (c *QuoteController) fill(ctx context.Context, q *quote.Quote, req dto.QuoteRequest) error {
	q.ClientID = req.ClientID
	q.Notes = req.Notes
	if req.ValidUntil != "" {
		valid, err := dto.ParseDate(req.ValidUntil, c.now().Location())
		if err != nil {
			return err
		}
		q.ValidUntil = *valid
	}

	q.Items = []quote.Item{}
	for _, it := range req.Items {
		quantity := it.Quantity.Or(1)
		switch quote.ItemType(it.Type) {
		case quote.ItemProduct:
			name, price, err := c.productDefaults(ctx, it)
			if err != nil {
				return err
			}
			q.AddProduct(it.ProductID, name, price, quantity)
		case quote.ItemService:
			name, price, err := c.serviceTypeDefaults(ctx, it)
			if err != nil {
				return err
			}
			q.AddServiceType(it.ServiceTypeID, name, price, quantity)
		default:
			q.AddCustom(it.Description, it.UnitPrice.Or(0), quantity)
		}
	}
	q.Recalculate()
	return q.Validate()
}

// productDefaults completa nome e preço da linha com o cadastro do produto.
// O catálogo só é consultado quando falta algum dos dois.
func (c *QuoteController) productDefaults(ctx context.Context, it dto.QuoteItemRequest) (string, float64, error) {
	name, price := it.Description, it.UnitPrice.Ptr()
	if name != "" && price != nil {
		return name, *price, nil
	}
	p, err := c.productRepo.FindByID(ctx, it.ProductID)
	if err != nil {
		return "", 0, err
	}
	if name == "" {
		name = p.Name
	}
	if price == nil {
		price = &p.Price
	}
	return name, *price, nil
}

func (c *QuoteController) serviceTypeDefaults(ctx context.Context, it dto.QuoteItemRequest) (string, float64, error) {
	name, price := it.Description, it.UnitPrice.Ptr()
	if name != "" && price != nil {
		return name, *price, nil
	}
	st, err := c.serviceTypeRepo.FindByID(ctx, it.ServiceTypeID)
	if err != nil {
		return "", 0, err
	}
	if name == "" {
		name = st.Name
	}
	if price == nil {
		price = &st.BasePrice
	}
	return name, *price, nil
}

func (c *QuoteController) clientName(ctx context.Context, id string) (string, error) {
	cl, err := c.clientRepo.FindByID(ctx, id)
	if errors.Is(err, client.ErrNotFound) {
		return client.NotFoundLabel, nil
	}
	if err != nil {
		return "", err
	}
	return cl.Name, nil
}

func (c *QuoteController) respond(ctx *gin.Context, code int, q *quote.Quote) {
	name, err := c.clientName(ctx.Request.Context(), q.ClientID)
	if err != nil {
		respondError(ctx, c.logger, "erro ao buscar cliente", err)
		return
	}
	ctx.JSON(code, dto.ToQuoteResponse(q, name))
}

// Create cria um orçamento
// @Summary Criar orçamento
// @Description Itens de produto e de serviço usam o preço do cadastro quando unit_price não é enviado. Validade padrão de 30 dias.
// @Tags quotes
// @Accept json
// @Produce json
// @Security Bearer
// @Param quote body dto.QuoteRequest true "Dados do orçamento"
// @Success 201 {object} dto.QuoteResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /quotes [post]
func (c *QuoteController) Create(ctx *gin.Context) {
	var req dto.QuoteRequest
	if !bindJSON(ctx, &req) {
		return
	}

	q, err := quote.NewQuote(req.ClientID, c.now())
	if err != nil {
		badRequest(ctx, "erro ao criar orçamento", err)
		return
	}
	if err := c.fill(ctx.Request.Context(), q, req); err != nil {
		respondError(ctx, c.logger, "dados do orçamento inválidos", err)
		return
	}

	if err := c.quoteRepo.Create(ctx.Request.Context(), q); err != nil {
		respondError(ctx, c.logger, "erro ao salvar orçamento", err)
		return
	}
	c.respond(ctx, http.StatusCreated, q)
}

// Get retorna um orçamento pelo ID
// @Summary Buscar orçamento
// @Tags quotes
// @Produce json
// @Security Bearer
// @Param id path string true "ID do orçamento"
// @Success 200 {object} dto.QuoteResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /quotes/{id} [get]
func (c *QuoteController) Get(ctx *gin.Context) {
	q, err := c.quoteRepo.FindByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, "erro ao buscar orçamento", err)
		return
	}
	c.respond(ctx, http.StatusOK, q)
}

// List retorna os orçamentos
// @Summary Listar orçamentos
// @Description Busca pelo nome do cliente, pelo número ou pelo total
// @Tags quotes
// @Produce json
// @Security Bearer
// @Param sort query string false "Ordenação, ex.: -created_date"
// @Param search query string false "Texto de busca"
// @Success 200 {array} dto.QuoteResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /quotes [get]
func (c *QuoteController) List(ctx *gin.Context) {
	quotes, err := c.quoteRepo.List(ctx.Request.Context(), listOptions(ctx))
	if err != nil {
		respondError(ctx, c.logger, "erro ao listar orçamentos", err)
		return
	}
	clients, err := c.clientRepo.List(ctx.Request.Context(), entity.ListOptions{})
	if err != nil {
		respondError(ctx, c.logger, "erro ao carregar clientes", err)
		return
	}
	index := entity.IndexBy(clients, func(cl *client.Client) string { return cl.ID })

	out := make([]dto.QuoteResponse, len(quotes))
	for i, q := range quotes {
		out[i] = dto.ToQuoteResponse(q, client.NameOf(index, q.ClientID))
	}
	ctx.JSON(http.StatusOK, out)
}

// Update atualiza um orçamento
// @Summary Atualizar orçamento
// @Tags quotes
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "ID do orçamento"
// @Param quote body dto.QuoteRequest true "Dados do orçamento"
// @Success 200 {object} dto.QuoteResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /quotes/{id} [put]
func (c *QuoteController) Update(ctx *gin.Context) {
	var req dto.QuoteRequest
	if !bindJSON(ctx, &req) {
		return
	}

	q, err := c.quoteRepo.FindByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, "erro ao buscar orçamento", err)
		return
	}
	if err := c.fill(ctx.Request.Context(), q, req); err != nil {
		respondError(ctx, c.logger, "dados do orçamento inválidos", err)
		return
	}

	if err := c.quoteRepo.Update(ctx.Request.Context(), q); err != nil {
		respondError(ctx, c.logger, "erro ao atualizar orçamento", err)
		return
	}
	c.respond(ctx, http.StatusOK, q)
}

// UpdateStatus altera o status do orçamento
// @Summary Alterar status do orçamento
// @Description Qualquer status conhecido pode ser aplicado
// @Tags quotes
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "ID do orçamento"
// @Param status body dto.StatusRequest true "Novo status"
// @Success 200 {object} dto.QuoteResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /quotes/{id}/status [patch]
func (c *QuoteController) UpdateStatus(ctx *gin.Context) {
	var req dto.StatusRequest
	if !bindJSON(ctx, &req) {
		return
	}
	c.change(ctx, func(q *quote.Quote) error {
		return q.SetStatus(quote.Status(req.Status))
	})
}

// Finalize marca o orçamento como finalizado
// @Summary Finalizar orçamento
// @Tags quotes
// @Produce json
// @Security Bearer
// @Param id path string true "ID do orçamento"
// @Success 200 {object} dto.QuoteResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /quotes/{id}/finalize [post]
func (c *QuoteController) Finalize(ctx *gin.Context) {
	c.change(ctx, func(q *quote.Quote) error {
		q.Finalize()
		return nil
	})
}

func (c *QuoteController) change(ctx *gin.Context, apply func(*quote.Quote) error) {
	q, err := c.quoteRepo.FindByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, "erro ao buscar orçamento", err)
		return
	}
	if err := apply(q); err != nil {
		respondError(ctx, c.logger, "status inválido", err)
		return
	}
	if err := c.quoteRepo.Update(ctx.Request.Context(), q); err != nil {
		respondError(ctx, c.logger, "erro ao atualizar orçamento", err)
		return
	}
	c.respond(ctx, http.StatusOK, q)
}

// Delete remove um orçamento
// @Summary Remover orçamento
// @Tags quotes
// @Produce json
// @Security Bearer
// @Param id path string true "ID do orçamento"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /quotes/{id} [delete]
func (c *QuoteController) Delete(ctx *gin.Context) {
	if err := c.quoteRepo.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		respondError(ctx, c.logger, "erro ao remover orçamento", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Orçamento removido com sucesso", nil))
}

// Print devolve o aviso de impressão do orçamento
// @Summary Imprimir orçamento
// @Tags quotes
// @Produce json
// @Security Bearer
// @Param id path string true "ID do orçamento"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /quotes/{id}/print [get]
func (c *QuoteController) Print(ctx *gin.Context) {
	q, err := c.quoteRepo.FindByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, "erro ao buscar orçamento", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Impressão de orçamento em desenvolvimento", gin.H{"id": q.ID}))
}

// QuoteStatuses lista os status do menu de ações
// @Summary Status de orçamento
// @Tags quotes
// @Produce json
// @Security Bearer
// @Success 200 {array} dto.Option
// @Router /quotes/statuses [get]
func (c *QuoteController) QuoteStatuses(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.QuoteStatusOptions())
}
