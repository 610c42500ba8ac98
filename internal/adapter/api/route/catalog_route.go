package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/gestor-pme/internal/adapter/api/controller"
	"github.com/hugohenrick/gestor-pme/internal/navigation"
	"github.com/hugohenrick/gestor-pme/pkg/auth"
)

// RegisterClientRoutes registra as rotas do módulo de clientes
func RegisterClientRoutes(r *gin.RouterGroup, authRequired gin.HandlerFunc, clientController *controller.ClientController) {
	clients := r.Group("/clients")
	clients.Use(authRequired, auth.RequirePage(navigation.PageClients))
	{
		clients.POST("", clientController.Create)
		clients.GET("", clientController.List)
		clients.GET("/birthdays", clientController.Birthdays)
		clients.GET("/:id", clientController.Get)
		clients.PUT("/:id", clientController.Update)
		clients.DELETE("/:id", clientController.Delete)
	}
}

// RegisterProductRoutes registra as rotas do catálogo de produtos
func RegisterProductRoutes(r *gin.RouterGroup, authRequired gin.HandlerFunc, productController *controller.ProductController) {
	products := r.Group("/products")
	products.Use(authRequired, auth.RequirePage(navigation.PageProducts))
	{
		products.POST("", productController.Create)
		products.GET("", productController.List)
		products.GET("/:id", productController.Get)
		products.PUT("/:id", productController.Update)
		products.DELETE("/:id", productController.Delete)
	}
}

// RegisterServiceTypeRoutes registra os tipos de serviço, mantidos na página de serviços
func RegisterServiceTypeRoutes(r *gin.RouterGroup, authRequired gin.HandlerFunc, serviceTypeController *controller.ServiceTypeController) {
	types := r.Group("/service-types")
	types.Use(authRequired, auth.RequirePage(navigation.PageServices))
	{
		types.POST("", serviceTypeController.Create)
		types.GET("", serviceTypeController.List)
		types.GET("/:id", serviceTypeController.Get)
		types.PUT("/:id", serviceTypeController.Update)
		types.DELETE("/:id", serviceTypeController.Delete)
	}
}
