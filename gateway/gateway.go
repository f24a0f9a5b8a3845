package gateway

import (
	"fmt"
	"net/http"
	"time"

	"github.com/example/astroshop/pkg/assistant"
	"github.com/example/astroshop/pkg/auth"
	"github.com/example/astroshop/pkg/catalog"
	"github.com/example/astroshop/pkg/checkout"
	"github.com/example/astroshop/pkg/config"
	"github.com/example/astroshop/pkg/repository"
	"github.com/example/astroshop/pkg/storage"
	"github.com/example/astroshop/pkg/store"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// SessionHeader carries the shopper's cart session id. The gateway
// mints one when the client sends none and echoes it back.
const SessionHeader = "X-Session-ID"

// Deps collects the collaborators the gateway serves. Audit and
// Archive may be nil when unconfigured.
type Deps struct {
	Catalog   *catalog.Catalog
	Storage   storage.Storage
	Stock     *store.StockLedger
	Orders    *store.OrderLedger
	Checkout  *checkout.Orchestrator
	Assistant *assistant.Client
	Auth      *auth.Service
	Audit     *repository.AuditTrail
	Archive   *repository.OrderArchive
}

type Gateway struct {
	config *config.Config
	logger *zap.Logger
	router *gin.Engine
	deps   Deps
}

func New(cfg *config.Config, logger *zap.Logger, deps Deps) *Gateway {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(loggerMiddleware(logger))

	g := &Gateway{
		config: cfg,
		logger: logger,
		router: router,
		deps:   deps,
	}
	g.setupRoutes()
	return g
}

func (g *Gateway) setupRoutes() {
	// Health check
	g.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 routes
	v1 := g.router.Group("/api/v1")
	{
		products := v1.Group("/products")
		{
			products.GET("", g.listProducts)
			products.GET("/search", g.searchProducts)
			products.GET("/:id", g.getProduct)
		}

		cart := v1.Group("/cart")
		{
			cart.GET("", g.getCart)
			cart.POST("/items", g.addCartItem)
			cart.PUT("/items/:productId", g.updateCartItem)
			cart.DELETE("/items/:productId", g.removeCartItem)
			cart.DELETE("", g.clearCart)
		}

		v1.POST("/checkout", g.checkout)

		ai := v1.Group("/assistant")
		{
			ai.POST("/chat", g.assistantChat)
			ai.POST("/recommendations", g.assistantRecommendations)
		}

		authGroup := v1.Group("/auth")
		{
			authGroup.POST("/login", g.adminLogin)
			authGroup.POST("/logout", g.adminLogout)
			authGroup.POST("/accounts", g.recordSignIn)
			authGroup.GET("/me", g.currentUser)
		}

		admin := v1.Group("/admin", g.requireAdmin())
		{
			admin.GET("/orders", g.listOrders)
			admin.PUT("/orders/:id/status", g.updateOrderStatus)
			admin.GET("/orders/archived", g.listArchivedOrders)
			admin.GET("/stock", g.listStock)
			admin.PUT("/stock/:productId", g.updateStock)
			admin.GET("/audit/:entityId", g.auditEntries)
		}
	}

	// Swagger
	g.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

func (g *Gateway) Start() error {
	addr := fmt.Sprintf("%s:%d", g.config.Server.Host, g.config.Server.Port)
	g.logger.Info("Gateway starting", zap.String("address", addr))
	return g.router.Run(addr)
}

// Router exposes the handler for tests.
func (g *Gateway) Router() http.Handler {
	return g.router
}

func (g *Gateway) requireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("X-Admin-Token")
		if err := g.deps.Auth.Verify(c.Request.Context(), token); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Next()
	}
}

func loggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		logger.Info("HTTP request",
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("query", query),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}
