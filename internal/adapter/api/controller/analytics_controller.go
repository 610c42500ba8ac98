package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/gestor-pme/internal/adapter/api/dto"
	"github.com/hugohenrick/gestor-pme/internal/analytics"
	"github.com/hugohenrick/gestor-pme/internal/domain/entity"
	"github.com/hugohenrick/gestor-pme/internal/domain/financial"
	"github.com/hugohenrick/gestor-pme/pkg/logger"
)

// AnalyticsService são os agregados de painel, calendário e financeiro
type AnalyticsService interface {
	Dashboard(ctx context.Context, now time.Time) (*analytics.Dashboard, error)
	Calendar(ctx context.Context, day, now time.Time) (*analytics.CalendarView, error)
	UpcomingEvents(ctx context.Context, now time.Time) ([]analytics.Event, error)
	FinancialSummary(ctx context.Context, now time.Time) (*analytics.FinancialSummary, error)
	FinancialCalendar(ctx context.Context, month time.Time, day *time.Time, now time.Time) (*analytics.FinancialCalendarView, error)
	PendingTransactions(ctx context.Context, now time.Time) ([]*financial.Transaction, error)
}

var _ AnalyticsService = (*analytics.Service)(nil)

// AnalyticsController expõe o painel, o calendário e o resumo financeiro
type AnalyticsController struct {
	analytics AnalyticsService
	logger    logger.Logger
	now       Clock
}

// NewAnalyticsController cria uma nova instância de AnalyticsController
func NewAnalyticsController(service AnalyticsService, logger logger.Logger) *AnalyticsController {
	return &AnalyticsController{analytics: service, logger: logger, now: time.Now}
}

// Dashboard retorna o painel
// @Summary Painel
// @Description Indicadores, pendências financeiras, tendência de vendas, rankings e gráfico financeiro
// @Tags analytics
// @Produce json
// @Security Bearer
// @Success 200 {object} analytics.Dashboard
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /dashboard [get]
func (c *AnalyticsController) Dashboard(ctx *gin.Context) {
	d, err := c.analytics.Dashboard(ctx.Request.Context(), c.now())
	if err != nil {
		respondError(ctx, c.logger, "erro ao montar painel", err)
		return
	}
	ctx.JSON(http.StatusOK, d)
}

// Calendar retorna os eventos do dia e os próximos eventos
// @Summary Calendário
// @Tags analytics
// @Produce json
// @Security Bearer
// @Param date query string false "Dia selecionado (AAAA-MM-DD); padrão hoje"
// @Success 200 {object} analytics.CalendarView
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /calendar [get]
func (c *AnalyticsController) Calendar(ctx *gin.Context) {
	now := c.now()
	day := entity.StartOfDay(now)
	if q := ctx.Query("date"); q != "" {
		parsed, err := dto.ParseDate(q, now.Location())
		if err != nil {
			badRequest(ctx, "data inválida", err)
			return
		}
		day = *parsed
	}

	view, err := c.analytics.Calendar(ctx.Request.Context(), day, now)
	if err != nil {
		respondError(ctx, c.logger, "erro ao montar calendário", err)
		return
	}
	ctx.JSON(http.StatusOK, view)
}

// Upcoming retorna os eventos dos próximos 7 dias
// @Summary Próximos eventos
// @Tags analytics
// @Produce json
// @Security Bearer
// @Success 200 {array} analytics.Event
// @Failure 500 {object} dto.ErrorResponse
// @Router /calendar/upcoming [get]
func (c *AnalyticsController) Upcoming(ctx *gin.Context) {
	events, err := c.analytics.UpcomingEvents(ctx.Request.Context(), c.now())
	if err != nil {
		respondError(ctx, c.logger, "erro ao listar próximos eventos", err)
		return
	}
	ctx.JSON(http.StatusOK, events)
}

// FinancialSummary retorna os totais e o gráfico dos últimos 6 meses
// @Summary Resumo financeiro
// @Tags financial
// @Produce json
// @Security Bearer
// @Success 200 {object} analytics.FinancialSummary
// @Failure 500 {object} dto.ErrorResponse
// @Router /financial/summary [get]
func (c *AnalyticsController) FinancialSummary(ctx *gin.Context) {
	sum, err := c.analytics.FinancialSummary(ctx.Request.Context(), c.now())
	if err != nil {
		respondError(ctx, c.logger, "erro ao montar resumo financeiro", err)
		return
	}
	ctx.JSON(http.StatusOK, sum)
}

// FinancialCalendar retorna os indicadores diários do mês
// @Summary Calendário financeiro
// @Tags financial
// @Produce json
// @Security Bearer
// @Param month query string false "Mês (AAAA-MM); padrão o mês atual"
// @Param day query string false "Dia selecionado (AAAA-MM-DD)"
// @Success 200 {object} analytics.FinancialCalendarView
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /financial/calendar [get]
func (c *AnalyticsController) FinancialCalendar(ctx *gin.Context) {
	now := c.now()
	month := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	if q := ctx.Query("month"); q != "" {
		parsed, err := time.ParseInLocation("2006-01", q, now.Location())
		if err != nil {
			badRequest(ctx, "mês inválido, use AAAA-MM", err)
			return
		}
		month = parsed
	}
	day, err := dto.ParseDate(ctx.Query("day"), now.Location())
	if err != nil {
		badRequest(ctx, "dia inválido", err)
		return
	}

	view, err := c.analytics.FinancialCalendar(ctx.Request.Context(), month, day, now)
	if err != nil {
		respondError(ctx, c.logger, "erro ao montar calendário financeiro", err)
		return
	}
	ctx.JSON(http.StatusOK, view)
}

// PendingTransactions retorna as pendentes que vencem nos próximos dias, incluindo as atrasadas
// @Summary Pendências financeiras
// @Tags financial
// @Produce json
// @Security Bearer
// @Success 200 {array} dto.TransactionResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /financial/pending [get]
func (c *AnalyticsController) PendingTransactions(ctx *gin.Context) {
	now := c.now()
	txs, err := c.analytics.PendingTransactions(ctx.Request.Context(), now)
	if err != nil {
		respondError(ctx, c.logger, "erro ao listar pendências", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToTransactionResponses(txs, now))
}
