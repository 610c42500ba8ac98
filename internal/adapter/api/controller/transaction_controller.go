package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hugohenrick/gestor-pme/internal/adapter/api/dto"
	"github.com/hugohenrick/gestor-pme/internal/domain/financial"
	"github.com/hugohenrick/gestor-pme/pkg/logger"
)

// TransactionController gerencia receitas e despesas
type TransactionController struct {
	transactionRepo financial.Repository
	logger          logger.Logger
	now             Clock
}

// NewTransactionController cria uma nova instância de TransactionController
func NewTransactionController(transactionRepo financial.Repository, logger logger.Logger) *TransactionController {
	return &TransactionController{
		transactionRepo: transactionRepo,
		logger:          logger,
		now:             time.Now,
	}
}

// filterValue trata "all" como ausência de filtro
func filterValue(ctx *gin.Context, key string) string {
	v := ctx.Query(key)
	if v == "all" {
		return ""
	}
	return v
}

// Create cria uma transação
// @Summary Criar transação
// @Tags financial
// @Accept json
// @Produce json
// @Security Bearer
// @Param transaction body dto.TransactionRequest true "Dados da transação"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /transactions [post]
func (c *TransactionController) Create(ctx *gin.Context) {
	var req dto.TransactionRequest
	if !bindJSON(ctx, &req) {
		return
	}

	now := c.now()
	t := &financial.Transaction{
		ID:          uuid.New().String(),
		Status:      financial.Status(req.Status),
		CreatedDate: now,
	}
	if err := req.Apply(t, now.Location()); err != nil {
		badRequest(ctx, "dados da transação inválidos", err)
		return
	}

	if err := c.transactionRepo.Create(ctx.Request.Context(), t); err != nil {
		respondError(ctx, c.logger, "erro ao salvar transação", err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.ToTransactionResponse(t, now))
}

// Get retorna uma transação pelo ID
// @Summary Buscar transação
// @Tags financial
// @Produce json
// @Security Bearer
// @Param id path string true "ID da transação"
// @Success 200 {object} dto.TransactionResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /transactions/{id} [get]
func (c *TransactionController) Get(ctx *gin.Context) {
	t, err := c.transactionRepo.FindByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, "erro ao buscar transação", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToTransactionResponse(t, c.now()))
}

// List retorna as transações filtradas
// @Summary Listar transações
// @Description Filtra por tipo, status, categoria e período. O período usa o vencimento quando houver.
// @Tags financial
// @Produce json
// @Security Bearer
// @Param sort query string false "Ordenação, ex.: -date"
// @Param type query string false "receita, despesa ou all"
// @Param status query string false "pendente, pago, cancelado ou all"
// @Param category query string false "Categoria ou all"
// @Param range query string false "all, month, week ou custom"
// @Param start query string false "Início do período personalizado (AAAA-MM-DD)"
// @Param end query string false "Fim do período personalizado (AAAA-MM-DD)"
// @Success 200 {array} dto.TransactionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /transactions [get]
func (c *TransactionController) List(ctx *gin.Context) {
	now := c.now()
	start, err := dto.ParseDate(ctx.Query("start"), now.Location())
	if err != nil {
		badRequest(ctx, "data inicial inválida", err)
		return
	}
	end, err := dto.ParseDate(ctx.Query("end"), now.Location())
	if err != nil {
		badRequest(ctx, "data final inválida", err)
		return
	}

	filter := financial.Filter{
		Type:     financial.Type(filterValue(ctx, "type")),
		Status:   financial.Status(filterValue(ctx, "status")),
		Category: financial.Category(filterValue(ctx, "category")),
		Range:    financial.Range(ctx.Query("range")),
		Start:    start,
		End:      end,
	}
	if err := filter.Validate(); err != nil {
		badRequest(ctx, "filtro inválido", err)
		return
	}

	txs, err := c.transactionRepo.List(ctx.Request.Context(), listOptions(ctx))
	if err != nil {
		respondError(ctx, c.logger, "erro ao listar transações", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToTransactionResponses(filter.Apply(txs, now), now))
}

// Update atualiza uma transação
// @Summary Atualizar transação
// @Description Uma mudança de status segue as transições permitidas
// @Tags financial
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "ID da transação"
// @Param transaction body dto.TransactionRequest true "Dados da transação"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /transactions/{id} [put]
func (c *TransactionController) Update(ctx *gin.Context) {
	var req dto.TransactionRequest
	if !bindJSON(ctx, &req) {
		return
	}

	t, err := c.transactionRepo.FindByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, "erro ao buscar transação", err)
		return
	}
	now := c.now()
	if err := req.Apply(t, now.Location()); err != nil {
		badRequest(ctx, "dados da transação inválidos", err)
		return
	}
	if req.Status != "" {
		if err := t.SetStatus(financial.Status(req.Status)); err != nil {
			respondError(ctx, c.logger, "status inválido", err)
			return
		}
	}

	if err := c.transactionRepo.Update(ctx.Request.Context(), t); err != nil {
		respondError(ctx, c.logger, "erro ao atualizar transação", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToTransactionResponse(t, now))
}

// UpdateStatus altera o status da transação
// @Summary Alterar status da transação
// @Description Apenas pendente muda para pago ou cancelado
// @Tags financial
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "ID da transação"
// @Param status body dto.StatusRequest true "Novo status"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /transactions/{id}/status [patch]
func (c *TransactionController) UpdateStatus(ctx *gin.Context) {
	var req dto.StatusRequest
	if !bindJSON(ctx, &req) {
		return
	}

	t, err := c.transactionRepo.FindByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, "erro ao buscar transação", err)
		return
	}
	if err := t.SetStatus(financial.Status(req.Status)); err != nil {
		respondError(ctx, c.logger, "status inválido", err)
		return
	}

	if err := c.transactionRepo.Update(ctx.Request.Context(), t); err != nil {
		respondError(ctx, c.logger, "erro ao atualizar transação", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToTransactionResponse(t, c.now()))
}

// Delete remove uma transação
// @Summary Remover transação
// @Tags financial
// @Produce json
// @Security Bearer
// @Param id path string true "ID da transação"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /transactions/{id} [delete]
func (c *TransactionController) Delete(ctx *gin.Context) {
	if err := c.transactionRepo.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		respondError(ctx, c.logger, "erro ao remover transação", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Transação removida com sucesso", nil))
}

// Options lista categorias e formas de pagamento dos formulários
// @Summary Opções do financeiro
// @Tags financial
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.FinancialOptionsResponse
// @Router /transactions/options [get]
func (c *TransactionController) Options(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewFinancialOptionsResponse())
}
