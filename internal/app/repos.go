package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/crm-backend/internal/data/repos"
	"github.com/yungbote/crm-backend/internal/platform/logger"
)

type Repos struct {
	Customer   repos.CustomerRepo
	Product    repos.ProductRepo
	Order      repos.OrderRepo
	AuditEvent repos.AuditEventRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	return Repos{
		Customer:   repos.NewCustomerRepo(db, log),
		Product:    repos.NewProductRepo(db, log),
		Order:      repos.NewOrderRepo(db, log),
		AuditEvent: repos.NewAuditEventRepo(db, log),
	}
}
