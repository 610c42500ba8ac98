package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/hugohenrick/gestor-pme/docs"
	"github.com/hugohenrick/gestor-pme/internal/adapter/api/controller"
	"github.com/hugohenrick/gestor-pme/internal/adapter/api/dto"
	"github.com/hugohenrick/gestor-pme/internal/adapter/api/route"
	"github.com/hugohenrick/gestor-pme/internal/adapter/repository"
	"github.com/hugohenrick/gestor-pme/internal/analytics"
	"github.com/hugohenrick/gestor-pme/internal/config"
	"github.com/hugohenrick/gestor-pme/internal/infrastructure/cache"
	"github.com/hugohenrick/gestor-pme/internal/infrastructure/database"
	"github.com/hugohenrick/gestor-pme/internal/pos"
	"github.com/hugohenrick/gestor-pme/pkg/auth"
	"github.com/hugohenrick/gestor-pme/pkg/logger"
	"github.com/hugohenrick/gestor-pme/pkg/middleware"
)

const apiVersion = "1.0.0"

// App representa a aplicação e suas dependências
type App struct {
	router *gin.Engine
	db     *pgxpool.Pool
	redis  *redis.Client
	log    *logger.ZerologLogger
}

// NewApp conecta ao banco e ao Redis, monta os serviços e registra as rotas
func NewApp(ctx context.Context, cfg *config.Config, log *logger.ZerologLogger) (*App, error) {
	db, err := database.NewPostgresDB(ctx, &cfg.Database)
	if err != nil {
		return nil, err
	}

	rdb, err := cache.NewRedis(ctx, cfg)
	if err != nil {
		db.Close()
		return nil, err
	}

	jwtService, err := auth.NewJWTService(cfg.JWTSecretKey, cfg.JWTExpiration)
	if err != nil {
		db.Close()
		_ = rdb.Close()
		return nil, err
	}

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := dto.RegisterValidators(v); err != nil {
			db.Close()
			_ = rdb.Close()
			return nil, fmt.Errorf("erro ao registrar validadores: %w", err)
		}
	}

	a := &App{db: db, redis: rdb, log: log}
	a.router = a.buildRouter(cfg, jwtService)
	return a, nil
}

func (a *App) buildRouter(cfg *config.Config, jwtService *auth.JWTService) *gin.Engine {
	// Repositórios
	userRepo := repository.NewUserRepository(a.db)
	clientRepo := repository.NewClientRepository(a.db)
	productRepo := repository.NewProductRepository(a.db)
	saleRepo := repository.NewSaleRepository(a.db)
	transactionRepo := repository.NewTransactionRepository(a.db)
	quoteRepo := repository.NewQuoteRepository(a.db)
	serviceTypeRepo := repository.NewServiceTypeRepository(a.db)
	serviceRepo := repository.NewServiceRepository(a.db)
	orderRepo := repository.NewServiceOrderRepository(a.db)

	// Serviços
	posService := pos.NewService(pos.NewRedisCartStore(a.redis, cfg.CartTTL), productRepo, saleRepo, a.log)
	analyticsService := analytics.NewService(analytics.Repositories{
		Sales:        saleRepo,
		Clients:      clientRepo,
		Transactions: transactionRepo,
		Services:     serviceRepo,
		Orders:       orderRepo,
		Products:     productRepo,
		ServiceTypes: serviceTypeRepo,
	})
	revocation := auth.NewRedisRevocationStore(a.redis)

	// Controllers
	authController := controller.NewAuthController(userRepo, jwtService, revocation, a.log)
	userController := controller.NewUserController(userRepo, a.log)
	clientController := controller.NewClientController(clientRepo, a.log)
	productController := controller.NewProductController(productRepo, a.log)
	saleController := controller.NewSaleController(saleRepo, clientRepo, a.log)
	transactionController := controller.NewTransactionController(transactionRepo, a.log)
	quoteController := controller.NewQuoteController(quoteRepo, clientRepo, productRepo, serviceTypeRepo, a.log)
	serviceTypeController := controller.NewServiceTypeController(serviceTypeRepo, a.log)
	serviceController := controller.NewServiceController(serviceRepo, clientRepo, serviceTypeRepo, a.log)
	orderController := controller.NewServiceOrderController(orderRepo, clientRepo, serviceTypeRepo, productRepo, a.log)
	posController := controller.NewPOSController(posService, a.log)
	analyticsController := controller.NewAnalyticsController(analyticsService, a.log)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(a.log.Zerolog()))
	router.Use(middleware.Secure(cfg.IsProduction()))
	router.Use(cors.New(corsConfig(cfg.CORSAllowedOrigins)))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"version": apiVersion,
		})
	})

	authRequired := auth.JWTAuthMiddleware(jwtService, revocation)

	route.RegisterSetupRoutes(api, userController)
	route.RegisterAuthRoutes(api, authRequired, cfg.LoginRateLimit, authController)
	route.RegisterUserRoutes(api, authRequired, userController, authController)
	route.RegisterClientRoutes(api, authRequired, clientController)
	route.RegisterProductRoutes(api, authRequired, productController)
	route.RegisterServiceTypeRoutes(api, authRequired, serviceTypeController)
	route.RegisterPOSRoutes(api, authRequired, posController)
	route.RegisterSaleRoutes(api, authRequired, saleController)
	route.RegisterQuoteRoutes(api, authRequired, quoteController)
	route.RegisterServiceRoutes(api, authRequired, serviceController)
	route.RegisterServiceOrderRoutes(api, authRequired, orderController)
	route.RegisterFinancialRoutes(api, authRequired, transactionController, analyticsController)
	route.RegisterAnalyticsRoutes(api, authRequired, analyticsController)

	return router
}

// corsConfig libera todas as origens quando nenhuma foi configurada
func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders:    []string{middleware.RequestIDHeader},
		AllowCredentials: len(origins) > 0,
		MaxAge:           12 * time.Hour,
	}
	if len(origins) == 0 {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = origins
	}
	return c
}

// Router retorna o engine HTTP configurado
func (a *App) Router() http.Handler {
	return a.router
}

// Close libera as conexões com banco e Redis
func (a *App) Close() {
	if err := a.redis.Close(); err != nil {
		a.log.Warn("erro ao fechar conexão com Redis", "error", err)
	}
	a.db.Close()
}
