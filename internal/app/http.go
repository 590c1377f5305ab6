package app

import (
	"github.com/gin-gonic/gin"

	internalhttp "github.com/yungbote/crm-backend/internal/http"
	"github.com/yungbote/crm-backend/internal/http/handlers"
	"github.com/yungbote/crm-backend/internal/platform/logger"
)

type Handlers struct {
	Customer *handlers.CustomerHandler
	Product  *handlers.ProductHandler
	Order    *handlers.OrderHandler
	Health   *handlers.HealthHandler
}

func wireHandlers(serviceset Services) Handlers {
	return Handlers{
		Customer: handlers.NewCustomerHandler(serviceset.Customer),
		Product:  handlers.NewProductHandler(serviceset.Product),
		Order:    handlers.NewOrderHandler(serviceset.Order),
		Health:   handlers.NewHealthHandler(),
	}
}

func wireRouter(log *logger.Logger, handlerset Handlers) *gin.Engine {
	return internalhttp.NewRouter(internalhttp.RouterConfig{
		Log:             log,
		CustomerHandler: handlerset.Customer,
		ProductHandler:  handlerset.Product,
		OrderHandler:    handlerset.Order,
		HealthHandler:   handlerset.Health,
	})
}
