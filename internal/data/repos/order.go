package repos

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/yungbote/crm-backend/internal/domain"
	"github.com/yungbote/crm-backend/internal/platform/dbctx"
	"github.com/yungbote/crm-backend/internal/platform/logger"
)

type OrderFilter struct {
	TotalMin             *decimal.Decimal
	TotalMax             *decimal.Decimal
	DateFrom             *time.Time
	DateTo               *time.Time
	ProductID            *uuid.UUID
	ProductNameContains  string
	CustomerNameContains string
}

type OrderRepo interface {
	// Create inserts the order row together with its order_products join
	// rows; with a transaction in dbc the links become visible with the order
	// or not at all.
	Create(dbc dbctx.Context, order *domain.Order) (*domain.Order, error)
	GetByIDs(dbc dbctx.Context, ids []uuid.UUID) ([]*domain.Order, error)
	Count(dbc dbctx.Context) (int64, error)
	List(dbc dbctx.Context, filter OrderFilter) ([]*domain.Order, error)
}

type orderRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewOrderRepo(db *gorm.DB, baseLog *logger.Logger) OrderRepo {
	repoLog := baseLog.With("repo", "OrderRepo")
	return &orderRepo{db: db, log: repoLog}
}

func (or *orderRepo) conn(dbc dbctx.Context) *gorm.DB {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = or.db
	}
	return transaction.WithContext(dbc.Ctx)
}

func (or *orderRepo) Create(dbc dbctx.Context, order *domain.Order) (*domain.Order, error) {
	// Omit upserting the associated products themselves; only join rows are
	// written for them.
	if err := or.conn(dbc).Omit("Products.*").Create(order).Error; err != nil {
		return nil, err
	}
	return order, nil
}

func (or *orderRepo) GetByIDs(dbc dbctx.Context, ids []uuid.UUID) ([]*domain.Order, error) {
	var results []*domain.Order
	if len(ids) == 0 {
		return results, nil
	}
	if err := or.conn(dbc).
		Preload("Products").
		Preload("Customer").
		Where("id IN ?", ids).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (or *orderRepo) Count(dbc dbctx.Context) (int64, error) {
	var count int64
	if err := or.conn(dbc).Model(&domain.Order{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (or *orderRepo) List(dbc dbctx.Context, filter OrderFilter) ([]*domain.Order, error) {
	q := or.conn(dbc).Model(&domain.Order{}).
		Preload("Products").
		Preload("Customer")

	if filter.TotalMin != nil {
		q = q.Where("customer_order.total_amount >= ?", *filter.TotalMin)
	}
	if filter.TotalMax != nil {
		q = q.Where("customer_order.total_amount <= ?", *filter.TotalMax)
	}
	if filter.DateFrom != nil {
		q = q.Where("customer_order.order_date >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		q = q.Where("customer_order.order_date <= ?", *filter.DateTo)
	}
	if filter.CustomerNameContains != "" {
		q = q.Joins("JOIN customer ON customer.id = customer_order.customer_id").
			Where("LOWER(customer.name) LIKE LOWER(?)", "%"+filter.CustomerNameContains+"%")
	}
	if filter.ProductID != nil || filter.ProductNameContains != "" {
		q = q.Joins("JOIN order_products ON order_products.order_id = customer_order.id").
			Joins("JOIN product ON product.id = order_products.product_id").
			Distinct("customer_order.*")
		if filter.ProductID != nil {
			q = q.Where("product.id = ?", *filter.ProductID)
		}
		if filter.ProductNameContains != "" {
			q = q.Where("LOWER(product.name) LIKE LOWER(?)", "%"+filter.ProductNameContains+"%")
		}
	}

	var results []*domain.Order
	if err := q.Order("customer_order.order_date ASC").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
