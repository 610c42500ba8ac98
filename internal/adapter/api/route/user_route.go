package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/gestor-pme/internal/adapter/api/controller"
	"github.com/hugohenrick/gestor-pme/internal/domain/user"
	"github.com/hugohenrick/gestor-pme/internal/navigation"
	"github.com/hugohenrick/gestor-pme/pkg/auth"
)

// RegisterUserRoutes registra o cadastro de funcionários, restrito a administradores,
// e os dados da empresa da página de configurações
func RegisterUserRoutes(r *gin.RouterGroup, authRequired gin.HandlerFunc, userController *controller.UserController, authController *controller.AuthController) {
	users := r.Group("/users")
	users.Use(authRequired, auth.RoleAuthMiddleware(user.RoleAdministrator))
	{
		users.POST("", userController.Create)
		users.GET("", userController.List)
		users.GET("/:id", userController.GetByID)
		users.PUT("/:id", userController.Update)
	}

	settings := r.Group("/auth/me/company")
	settings.Use(authRequired, auth.RequirePage(navigation.PageSettings))
	{
		settings.PUT("", authController.UpdateCompany)
	}
}
