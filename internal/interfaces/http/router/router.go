// Package router assembles the gin engine, middleware chain, and routes.
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/marketplace/backend/internal/infrastructure/auth"
	"github.com/marketplace/backend/internal/infrastructure/logger"
	"github.com/marketplace/backend/internal/interfaces/http/handler"
	"github.com/marketplace/backend/internal/interfaces/http/middleware"
	"go.uber.org/zap"
)

// Handlers bundles the route handlers wired by the composition root
type Handlers struct {
	Product       *handler.ProductHandler
	InventoryItem *handler.InventoryItemHandler
	Agent         *handler.AgentHandler
}

// Config holds everything the router needs
type Config struct {
	Logger     *zap.Logger
	JWTService *auth.JWTService
	Handlers   Handlers
	// Env switches gin mode; "production" selects release mode
	Env string
	// MaxBodySize caps request bodies; zero disables the limit
	MaxBodySize int64
}

// New builds the gin engine with the standard middleware chain and all
// API routes registered under /api/v1
func New(cfg Config) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(
		logger.RequestID(),
		logger.GinMiddleware(cfg.Logger),
		logger.Recovery(cfg.Logger),
		middleware.BodyLimit(cfg.MaxBodySize),
	)

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := engine.Group("/api/v1")
	api.Use(middleware.JWTAuth(cfg.JWTService))

	registerProductRoutes(api, cfg.Handlers.Product)
	registerInventoryRoutes(api, cfg.Handlers.InventoryItem)
	registerAgentRoutes(api, cfg.Handlers.Agent)

	return engine
}

func registerProductRoutes(rg *gin.RouterGroup, h *handler.ProductHandler) {
	products := rg.Group("/products")
	{
		products.POST("", h.Create)
		products.GET("", h.List)
		products.GET("/mine", h.ListOwned)
		products.GET("/:id", h.GetByID)
		products.PUT("/:id", h.Update)
		products.DELETE("/:id", h.Delete)
	}
}

func registerInventoryRoutes(rg *gin.RouterGroup, h *handler.InventoryItemHandler) {
	items := rg.Group("/inventory-items")
	{
		items.GET("/:id", h.GetByID)
		items.PUT("/:id", h.Update)
	}
	rg.GET("/inventory-log-types", h.ListLogTypes)
}

func registerAgentRoutes(rg *gin.RouterGroup, h *handler.AgentHandler) {
	rg.POST("/agents", h.Register)
}
