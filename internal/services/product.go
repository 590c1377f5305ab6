package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/yungbote/crm-backend/internal/data/repos"
	"github.com/yungbote/crm-backend/internal/domain"
	"github.com/yungbote/crm-backend/internal/platform/apierr"
	"github.com/yungbote/crm-backend/internal/platform/dbctx"
	"github.com/yungbote/crm-backend/internal/platform/logger"
)

type CreateProductInput struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	// Stock defaults to 0 when omitted; negative values are rejected.
	Stock *int `json:"stock,omitempty"`
}

type ProductService interface {
	Create(ctx context.Context, input CreateProductInput) (*domain.Product, error)
	List(ctx context.Context, filter repos.ProductFilter) ([]*domain.Product, error)
}

type productService struct {
	db          *gorm.DB
	log         *logger.Logger
	productRepo repos.ProductRepo
	auditRepo   repos.AuditEventRepo
}

func NewProductService(db *gorm.DB, log *logger.Logger, productRepo repos.ProductRepo, auditRepo repos.AuditEventRepo) ProductService {
	serviceLog := log.With("service", "ProductService")
	return &productService{
		db:          db,
		log:         serviceLog,
		productRepo: productRepo,
		auditRepo:   auditRepo,
	}
}

func (ps *productService) Create(ctx context.Context, input CreateProductInput) (*domain.Product, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apierr.InvalidInput("Name is required.")
	}
	if err := validatePrice(input.Price); err != nil {
		return nil, err
	}
	stock := 0
	if input.Stock != nil {
		stock = *input.Stock
	}
	if err := validateStock(stock); err != nil {
		return nil, err
	}

	product := &domain.Product{
		ID:    uuid.New(),
		Name:  name,
		Price: input.Price,
		Stock: stock,
	}

	if err := ps.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dbc := dbctx.Context{Ctx: ctx, Tx: tx}
		if _, err := ps.productRepo.Create(dbc, []*domain.Product{product}); err != nil {
			return apierr.Internal(fmt.Errorf("create product: %w", err))
		}
		if ps.auditRepo == nil {
			return nil
		}
		payload, _ := json.Marshal(map[string]any{"name": name, "price": input.Price, "stock": stock})
		_, err := ps.auditRepo.Create(dbc, []*domain.AuditEvent{{
			ID:         uuid.New(),
			EntityType: "product",
			EntityID:   product.ID,
			Action:     "created",
			Data:       datatypes.JSON(payload),
			CreatedAt:  time.Now().UTC(),
		}})
		if err != nil {
			return apierr.Internal(fmt.Errorf("write audit event: %w", err))
		}
		return nil
	}); err != nil {
		ps.log.Warn("Create product failed", "name", name, "error", err)
		return nil, err
	}

	ps.log.Info("Product created", "product_id", product.ID, "name", name)
	return product, nil
}

func (ps *productService) List(ctx context.Context, filter repos.ProductFilter) ([]*domain.Product, error) {
	rows, err := ps.productRepo.List(dbctx.Context{Ctx: ctx}, filter)
	if err != nil {
		return nil, apierr.Internal(fmt.Errorf("list products: %w", err))
	}
	return rows, nil
}
