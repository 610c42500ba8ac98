package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/gestor-pme/internal/adapter/api/controller"
	"github.com/hugohenrick/gestor-pme/internal/navigation"
	"github.com/hugohenrick/gestor-pme/pkg/auth"
)

// RegisterFinancialRoutes registra as transações e os agregados financeiros
func RegisterFinancialRoutes(r *gin.RouterGroup, authRequired gin.HandlerFunc, txController *controller.TransactionController, analyticsController *controller.AnalyticsController) {
	guard := []gin.HandlerFunc{authRequired, auth.RequirePage(navigation.PageFinancial)}

	transactions := r.Group("/transactions", guard...)
	{
		transactions.POST("", txController.Create)
		transactions.GET("", txController.List)
		transactions.GET("/options", txController.Options)
		transactions.GET("/:id", txController.Get)
		transactions.PUT("/:id", txController.Update)
		transactions.PATCH("/:id/status", txController.UpdateStatus)
		transactions.DELETE("/:id", txController.Delete)
	}

	financial := r.Group("/financial", guard...)
	{
		financial.GET("/summary", analyticsController.FinancialSummary)
		financial.GET("/calendar", analyticsController.FinancialCalendar)
		financial.GET("/pending", analyticsController.PendingTransactions)
	}
}

// RegisterAnalyticsRoutes registra o painel e o calendário geral
func RegisterAnalyticsRoutes(r *gin.RouterGroup, authRequired gin.HandlerFunc, analyticsController *controller.AnalyticsController) {
	r.GET("/dashboard", authRequired, auth.RequirePage(navigation.PageDashboard), analyticsController.Dashboard)

	calendar := r.Group("/calendar")
	calendar.Use(authRequired, auth.RequirePage(navigation.PageCalendar))
	{
		calendar.GET("", analyticsController.Calendar)
		calendar.GET("/upcoming", analyticsController.Upcoming)
	}
}
