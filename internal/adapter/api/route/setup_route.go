package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/gestor-pme/internal/adapter/api/controller"
)

// RegisterSetupRoutes configura a rota de configuração inicial do sistema
func RegisterSetupRoutes(r *gin.RouterGroup, userController *controller.UserController) {
	setupRouter := r.Group("/setup")
	{
		// Não requer autenticação; só funciona enquanto não houver usuários
		setupRouter.POST("/admin", userController.CreateAdminUser)
	}
}
