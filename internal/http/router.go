package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/yungbote/crm-backend/internal/http/handlers"
	httpMW "github.com/yungbote/crm-backend/internal/http/middleware"
	"github.com/yungbote/crm-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log *logger.Logger

	CustomerHandler *httpH.CustomerHandler
	ProductHandler  *httpH.ProductHandler
	OrderHandler    *httpH.OrderHandler

	HealthHandler *httpH.HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(otelgin.Middleware("crm-backend"))
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.CORS())

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	api := r.Group("/api")
	{
		// Customers
		if cfg.CustomerHandler != nil {
			api.POST("/customers", cfg.CustomerHandler.Create)
			api.POST("/customers/bulk", cfg.CustomerHandler.BulkCreate)
			api.GET("/customers", cfg.CustomerHandler.List)
		}

		// Products
		if cfg.ProductHandler != nil {
			api.POST("/products", cfg.ProductHandler.Create)
			api.GET("/products", cfg.ProductHandler.List)
		}

		// Orders
		if cfg.OrderHandler != nil {
			api.POST("/orders", cfg.OrderHandler.Create)
			api.GET("/orders", cfg.OrderHandler.List)
		}
	}

	return r
}
