package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/gestor-pme/internal/adapter/api/controller"
	"github.com/hugohenrick/gestor-pme/internal/navigation"
	"github.com/hugohenrick/gestor-pme/pkg/auth"
)

// RegisterServiceRoutes registra os serviços agendados
func RegisterServiceRoutes(r *gin.RouterGroup, authRequired gin.HandlerFunc, serviceController *controller.ServiceController) {
	services := r.Group("/services")
	services.Use(authRequired, auth.RequirePage(navigation.PageServices))
	{
		services.POST("", serviceController.Create)
		services.GET("", serviceController.List)
		services.GET("/:id", serviceController.Get)
		services.PUT("/:id", serviceController.Update)
		services.DELETE("/:id", serviceController.Delete)
	}
}

// RegisterServiceOrderRoutes registra as ordens de serviço
func RegisterServiceOrderRoutes(r *gin.RouterGroup, authRequired gin.HandlerFunc, orderController *controller.ServiceOrderController) {
	orders := r.Group("/service-orders")
	orders.Use(authRequired, auth.RequirePage(navigation.PageServiceOrders))
	{
		orders.POST("", orderController.Create)
		orders.GET("", orderController.List)
		orders.GET("/:id", orderController.Get)
		orders.PUT("/:id", orderController.Update)
		orders.DELETE("/:id", orderController.Delete)
		orders.GET("/:id/print", orderController.Print)
	}
}
