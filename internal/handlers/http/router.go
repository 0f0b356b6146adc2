package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/rafabene/loja-backend/docs"
	"github.com/rafabene/loja-backend/internal/domain/ports"
	"github.com/rafabene/loja-backend/internal/handlers/dto"
	"github.com/rafabene/loja-backend/internal/handlers/middleware"
	"github.com/rafabene/loja-backend/internal/infrastructure/i18n"
)

// MetricsProvider coleta métricas por rota e expõe o endpoint Prometheus
type MetricsProvider interface {
	middleware.RequestObserver
	Handler() http.Handler
}

// Handlers agrupa os handlers de cada recurso
type Handlers struct {
	Auth    *AuthHandler
	Product *ProductHandler
	Cart    *CartHandler
	Order   *OrderHandler
	Contact *ContactHandler
	User    *UserHandler
	Log     *LogHandler
	Health  *HealthHandler
	Events  *EventsHandler
}

// RouterDeps reúne o que o roteador precisa. RateLimiter e Metrics são opcionais.
type RouterDeps struct {
	Production     bool
	BaseURL        string
	AllowedOrigins []string
	Logger         ports.Logger
	I18n           *i18n.Service
	Auth           *middleware.AuthMiddleware
	RateLimiter    *middleware.RateLimiter
	Metrics        MetricsProvider
	Handlers       Handlers
}

// NewRouter monta o engine gin com middlewares e rotas da API
func NewRouter(deps RouterDeps) *gin.Engine {
	if deps.Production {
		gin.SetMode(gin.ReleaseMode)
	}
	dto.RegisterValidators()

	router := gin.New()

	router.Use(middleware.Recovery(deps.Logger))
	router.Use(middleware.RequestLogger(deps.Logger))
	router.Use(middleware.SecurityHeaders(deps.Production))
	if deps.Metrics != nil {
		router.Use(middleware.Metrics(deps.Metrics))
	}
	router.Use(middleware.CORS(deps.AllowedOrigins))

	// base URL usada para montar o type dos problem details
	router.Use(func(c *gin.Context) {
		c.Set("base_url", deps.BaseURL)
		c.Next()
	})
	router.Use(middleware.NewI18nMiddleware(deps.I18n).DetectLanguage())

	router.NoRoute(func(c *gin.Context) {
		dto.Abort(c, dto.NotFoundErrorResponseI18n(c, "route.not_found"))
	})

	if deps.Metrics != nil {
		router.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}
	if !deps.Production {
		docs.SwaggerInfo.BasePath = "/api"
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	h := deps.Handlers

	// saúde fica fora do rate limit para não derrubar probes
	router.GET("/api/health", h.Health.Health)
	router.GET("/api/health/ready", h.Health.Ready)

	api := router.Group("/api")
	if deps.RateLimiter != nil {
		api.Use(deps.RateLimiter.Middleware())
	}

	authenticated := deps.Auth.Authenticate()
	adminOnly := deps.Auth.RequireAdmin()

	auth := api.Group("/auth")
	{
		auth.POST("/register", h.Auth.Register)
		auth.POST("/login", h.Auth.Login)
		auth.GET("/verify", authenticated, h.Auth.Verify)
		auth.POST("/logout", authenticated, h.Auth.Logout)
	}

	products := api.Group("/produtos")
	{
		products.GET("", h.Product.ListProducts)
		products.GET("/:id", h.Product.GetProduct)
		products.POST("", authenticated, adminOnly, h.Product.CreateProduct)
		products.PUT("/:id", authenticated, adminOnly, h.Product.UpdateProduct)
		products.DELETE("/:id", authenticated, adminOnly, h.Product.DeleteProduct)
	}

	cart := api.Group("/carrinho", authenticated)
	{
		cart.GET("", h.Cart.GetCart)
		cart.POST("", h.Cart.AddItem)
		cart.PUT("/:produtoId", h.Cart.SetQuantity)
		cart.DELETE("/:produtoId", h.Cart.RemoveItem)
	}

	orders := api.Group("/pedidos", authenticated)
	{
		orders.POST("", h.Order.Checkout)
		orders.GET("", h.Order.ListMyOrders)
		orders.GET("/:id", h.Order.GetOrder)
	}

	api.POST("/contato", h.Contact.CreateMessage)
	api.POST("/logs", authenticated, h.Log.SaveLogs)

	admin := api.Group("/admin")
	{
		if h.Events != nil {
			admin.GET("/eventos", deps.Auth.AuthenticateWebSocket(), adminOnly, h.Events.Stream)
		}

		protected := admin.Group("", authenticated, adminOnly)

		protected.GET("/usuarios", h.User.ListUsers)
		protected.GET("/usuarios/:id", h.User.GetUser)
		protected.PUT("/usuarios/:id", h.User.UpdateUser)
		protected.DELETE("/usuarios/:id", h.User.DeleteUser)

		protected.GET("/mensagens", h.Contact.ListMessages)
		protected.GET("/mensagens/:id", h.Contact.GetMessage)
		protected.PUT("/mensagens/:id", h.Contact.MarkResolved)
		protected.DELETE("/mensagens/:id", h.Contact.DeleteMessage)

		protected.GET("/pedidos", h.Order.ListOrders)
		protected.PUT("/pedidos/:id/status", h.Order.UpdateStatus)
	}

	return router
}
