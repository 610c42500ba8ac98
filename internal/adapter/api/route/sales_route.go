package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/gestor-pme/internal/adapter/api/controller"
	"github.com/hugohenrick/gestor-pme/internal/navigation"
	"github.com/hugohenrick/gestor-pme/pkg/auth"
)

// RegisterPOSRoutes registra o ponto de venda
func RegisterPOSRoutes(r *gin.RouterGroup, authRequired gin.HandlerFunc, posController *controller.POSController) {
	pos := r.Group("/pos")
	pos.Use(authRequired, auth.RequirePage(navigation.PagePOS))
	{
		pos.GET("/cart", posController.GetCart)
		pos.DELETE("/cart", posController.ClearCart)
		pos.POST("/cart/items", posController.AddItem)
		pos.POST("/cart/scan", posController.Scan)
		pos.PUT("/cart/items/:product_id", posController.UpdateQuantity)
		pos.DELETE("/cart/items/:product_id", posController.RemoveItem)
		pos.POST("/checkout", posController.Checkout)
		pos.GET("/products/search", posController.SearchProducts)
		pos.GET("/payment-methods", posController.PaymentMethods)
	}
}

// RegisterSaleRoutes registra as vendas, acessíveis a quem usa o PDV
func RegisterSaleRoutes(r *gin.RouterGroup, authRequired gin.HandlerFunc, saleController *controller.SaleController) {
	sales := r.Group("/sales")
	sales.Use(authRequired, auth.RequirePage(navigation.PagePOS))
	{
		sales.POST("", saleController.Create)
		sales.GET("", saleController.List)
		sales.GET("/:id", saleController.Get)
		sales.PUT("/:id", saleController.Update)
	}
}

// RegisterQuoteRoutes registra os orçamentos
func RegisterQuoteRoutes(r *gin.RouterGroup, authRequired gin.HandlerFunc, quoteController *controller.QuoteController) {
	quotes := r.Group("/quotes")
	quotes.Use(authRequired, auth.RequirePage(navigation.PageQuotes))
	{
		quotes.POST("", quoteController.Create)
		quotes.GET("", quoteController.List)
		quotes.GET("/statuses", quoteController.QuoteStatuses)
		quotes.GET("/:id", quoteController.Get)
		quotes.PUT("/:id", quoteController.Update)
		quotes.DELETE("/:id", quoteController.Delete)
		quotes.PATCH("/:id/status", quoteController.UpdateStatus)
		quotes.POST("/:id/finalize", quoteController.Finalize)
		quotes.GET("/:id/print", quoteController.Print)
	}
}
