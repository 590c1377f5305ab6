package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/crm-backend/internal/platform/logger"
	"github.com/yungbote/crm-backend/internal/services"
)

type Services struct {
	Customer services.CustomerService
	Product  services.ProductService
	Order    services.OrderService
}

func wireServices(db *gorm.DB, log *logger.Logger, reposet Repos) Services {
	return Services{
		Customer: services.NewCustomerService(db, log, reposet.Customer, reposet.AuditEvent),
		Product:  services.NewProductService(db, log, reposet.Product, reposet.AuditEvent),
		Order:    services.NewOrderService(db, log, reposet.Order, reposet.Customer, reposet.Product, reposet.AuditEvent),
	}
}
