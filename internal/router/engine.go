package router

import (
	"path/filepath"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/mlefevre/boutique-api/pkg/global"
	"github.com/mlefevre/boutique-api/pkg/store"
)

// Stores bundles the in-memory state handed to the router. Handlers only
// ever touch state through this, never through package globals.
type Stores struct {
	Catalog *store.Catalog
	Carts   *store.Carts
	Orders  *store.Orders
}

// NewEngine builds the gin engine: logging and recovery, CORS for the
// front-end dev servers, static product images and the route table.
func NewEngine(stores Stores) *gin.Engine {
	if global.GetEnvOrDefault("ENV", "development") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.Default()

	engine.Use(cors.New(cors.Config{
		AllowOrigins:     global.SplitEnvList("CORS_ORIGINS", []string{"http://localhost:3000", "http://localhost:5173"}),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	engine.Use(RequestID())
	engine.Use(ErrorHandler())

	staticDir := global.GetEnvOrDefault("STATIC_DIR", "./public")
	engine.Static("/images", filepath.Join(staticDir, "images"))

	registerRoutes(engine, &Handler{
		catalog: stores.Catalog,
		carts:   stores.Carts,
		orders:  stores.Orders,
	})

	return engine
}

func registerRoutes(engine *gin.Engine, h *Handler) {
	products := engine.Group("/products")
	{
		products.GET("", h.GetAllProducts)
		products.POST("", h.CreateProduct)
		products.GET("/:id", h.GetProductByID)
		products.PUT("/:id", h.EditProductByID)
		products.DELETE("/:id", h.DeleteProductByID)
	}

	cart := engine.Group("/cart")
	{
		cart.GET("/:userId", h.GetCart)
		cart.PUT("/:userId/:productId", h.UpsertCartItem)
		cart.DELETE("/:userId/:productId", h.RemoveCartItem)
		cart.DELETE("/:userId", h.ClearCart)
	}

	orders := engine.Group("/orders")
	{
		orders.GET("", h.GetAllOrders)
		orders.POST("", h.SubmitOrder)
	}
}
