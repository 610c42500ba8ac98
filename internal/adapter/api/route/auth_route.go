package route

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/gestor-pme/internal/adapter/api/controller"
	"github.com/hugohenrick/gestor-pme/pkg/middleware"
)

// RegisterAuthRoutes registra login, renovação, logout e as rotas da sessão
func RegisterAuthRoutes(r *gin.RouterGroup, authRequired gin.HandlerFunc, loginLimit int, authController *controller.AuthController) {
	authRouter := r.Group("/auth")
	{
		authRouter.POST("/login", middleware.RateLimit(loginLimit, time.Minute), authController.Login)
		authRouter.POST("/refresh", authController.RefreshToken)
	}

	me := authRouter.Group("")
	me.Use(authRequired)
	{
		me.POST("/logout", authController.Logout)
		me.GET("/me", authController.Me)
		me.PUT("/me", authController.UpdateMe)
		me.PATCH("/me/theme", authController.ToggleTheme)
		me.PUT("/me/password", authController.ChangePassword)
	}
}
