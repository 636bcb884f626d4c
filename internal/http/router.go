package http

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/giftlane/souvenirs-backend/internal/http/handlers"
	"github.com/giftlane/souvenirs-backend/internal/http/middleware"
)

type RouterConfig struct {
	ServiceName    string
	CatalogHandler *handlers.CatalogHandler
	HealthHandler  *handlers.HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = "souvenirs-backend"
	}

	router := gin.New()
	router.Use(gin.Recovery())
	// otelgin starts the server span first so TraceContext can read its
	// trace id off the request context.
	router.Use(otelgin.Middleware(serviceName))
	router.Use(middleware.TraceContext())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "X-Requested-With", middleware.RequestIDHeader, middleware.TraceIDHeader},
		AllowCredentials: true,
	}))

	router.GET("/healthcheck", cfg.HealthHandler.HealthCheck)

	api := router.Group("/api")
	{
		api.GET("/souvenirs", cfg.CatalogHandler.ListAll)
		api.GET("/souvenirs/cheap", cfg.CatalogHandler.ListCheap)
		api.GET("/souvenirs/top", cfg.CatalogHandler.TopRated)
		api.GET("/souvenirs/tag/:name", cfg.CatalogHandler.ByTag)
		api.GET("/souvenirs/count", cfg.CatalogHandler.CountMatching)
		api.GET("/souvenirs/search", cfg.CatalogHandler.Search)
		api.GET("/souvenirs/discussed", cfg.CatalogHandler.Discussed)
		api.DELETE("/souvenirs/out-of-stock", cfg.CatalogHandler.SweepOutOfStock)
		api.POST("/souvenirs/:id/reviews", cfg.CatalogHandler.AddReview)
		api.GET("/carts/sum", cfg.CatalogHandler.CartSum)
	}

	return router
}
