package repos

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/yungbote/crm-backend/internal/domain"
	"github.com/yungbote/crm-backend/internal/platform/dbctx"
	"github.com/yungbote/crm-backend/internal/platform/logger"
)

type ProductFilter struct {
	NameContains string
	PriceMin     *decimal.Decimal
	PriceMax     *decimal.Decimal
	StockMin     *int
	StockMax     *int
	// StockBelow selects products with stock strictly under the threshold.
	StockBelow *int
}

type ProductRepo interface {
	Create(dbc dbctx.Context, products []*domain.Product) ([]*domain.Product, error)
	GetByIDs(dbc dbctx.Context, ids []uuid.UUID) ([]*domain.Product, error)
	List(dbc dbctx.Context, filter ProductFilter) ([]*domain.Product, error)
}

type productRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewProductRepo(db *gorm.DB, baseLog *logger.Logger) ProductRepo {
	repoLog := baseLog.With("repo", "ProductRepo")
	return &productRepo{db: db, log: repoLog}
}

func (pr *productRepo) conn(dbc dbctx.Context) *gorm.DB {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = pr.db
	}
	return transaction.WithContext(dbc.Ctx)
}

func (pr *productRepo) Create(dbc dbctx.Context, products []*domain.Product) ([]*domain.Product, error) {
	if len(products) == 0 {
		return []*domain.Product{}, nil
	}
	if err := pr.conn(dbc).Create(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (pr *productRepo) GetByIDs(dbc dbctx.Context, ids []uuid.UUID) ([]*domain.Product, error) {
	var results []*domain.Product
	if len(ids) == 0 {
		return results, nil
	}
	if err := pr.conn(dbc).
		Where("id IN ?", ids).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (pr *productRepo) List(dbc dbctx.Context, filter ProductFilter) ([]*domain.Product, error) {
	q := pr.conn(dbc).Model(&domain.Product{})
	if filter.NameContains != "" {
		q = q.Where("LOWER(name) LIKE LOWER(?)", "%"+filter.NameContains+"%")
	}
	if filter.PriceMin != nil {
		q = q.Where("price >= ?", *filter.PriceMin)
	}
	if filter.PriceMax != nil {
		q = q.Where("price <= ?", *filter.PriceMax)
	}
	if filter.StockMin != nil {
		q = q.Where("stock >= ?", *filter.StockMin)
	}
	if filter.StockMax != nil {
		q = q.Where("stock <= ?", *filter.StockMax)
	}
	if filter.StockBelow != nil {
		q = q.Where("stock < ?", *filter.StockBelow)
	}

	var results []*domain.Product
	if err := q.Order("created_at ASC").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
