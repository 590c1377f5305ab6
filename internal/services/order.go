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

// CreateOrderInput carries raw id strings; an unparsable id behaves exactly
// like an id that is not in the store.
type CreateOrderInput struct {
	CustomerID string   `json:"customer_id"`
	ProductIDs []string `json:"product_ids"`
}

type OrderService interface {
	Create(ctx context.Context, input CreateOrderInput) (*domain.Order, error)
	List(ctx context.Context, filter repos.OrderFilter) ([]*domain.Order, error)
}

type orderService struct {
	db           *gorm.DB
	log          *logger.Logger
	orderRepo    repos.OrderRepo
	customerRepo repos.CustomerRepo
	productRepo  repos.ProductRepo
	auditRepo    repos.AuditEventRepo
}

func NewOrderService(db *gorm.DB, log *logger.Logger, orderRepo repos.OrderRepo, customerRepo repos.CustomerRepo, productRepo repos.ProductRepo, auditRepo repos.AuditEventRepo) OrderService {
	serviceLog := log.With("service", "OrderService")
	return &orderService{
		db:           db,
		log:          serviceLog,
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		auditRepo:    auditRepo,
	}
}

// Create resolves the customer first, then rejects an empty product list,
// then requires every product id to resolve. The check order is part of the
// contract; callers can rely on it.
func (os *orderService) Create(ctx context.Context, input CreateOrderInput) (*domain.Order, error) {
	var order *domain.Order

	if err := os.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dbc := dbctx.Context{Ctx: ctx, Tx: tx}

		customerID, parseErr := uuid.Parse(strings.TrimSpace(input.CustomerID))
		if parseErr == nil {
			found, err := os.customerRepo.GetByIDs(dbc, []uuid.UUID{customerID})
			if err != nil {
				return apierr.Internal(fmt.Errorf("fetch customer: %w", err))
			}
			if len(found) == 0 {
				parseErr = fmt.Errorf("customer %s not in store", customerID)
			}
		}
		if parseErr != nil {
			return apierr.NotFound("Invalid customer ID.")
		}

		if len(input.ProductIDs) == 0 {
			return apierr.InvalidInput("At least one product is required.")
		}

		products, missing, err := os.resolveProducts(dbc, input.ProductIDs)
		if err != nil {
			return err
		}
		if len(missing) > 0 {
			return apierr.NotFound("Invalid product ID(s): %s", strings.Join(missing, ", "))
		}

		total := decimal.Zero
		for _, p := range products {
			total = total.Add(p.Price)
		}

		order = &domain.Order{
			ID:          uuid.New(),
			CustomerID:  customerID,
			Products:    derefProducts(products),
			TotalAmount: total,
			OrderDate:   time.Now().UTC(),
		}
		if _, err := os.orderRepo.Create(dbc, order); err != nil {
			return apierr.Internal(fmt.Errorf("create order: %w", err))
		}

		if os.auditRepo == nil {
			return nil
		}
		payload, _ := json.Marshal(map[string]any{
			"customer_id":  customerID,
			"product_ids":  input.ProductIDs,
			"total_amount": total,
		})
		_, err = os.auditRepo.Create(dbc, []*domain.AuditEvent{{
			ID:         uuid.New(),
			EntityType: "order",
			EntityID:   order.ID,
			Action:     "created",
			Data:       datatypes.JSON(payload),
			CreatedAt:  time.Now().UTC(),
		}})
		if err != nil {
			return apierr.Internal(fmt.Errorf("write audit event: %w", err))
		}
		return nil
	}); err != nil {
		os.log.Warn("Create order failed", "customer_id", input.CustomerID, "error", err)
		return nil, err
	}

	os.log.Info("Order created",
		"order_id", order.ID,
		"customer_id", order.CustomerID,
		"products", len(order.Products),
		"total_amount", order.TotalAmount,
	)
	return order, nil
}

// resolveProducts looks up the requested ids (deduplicated, input order kept)
// and reports the raw strings that did not resolve.
func (os *orderService) resolveProducts(dbc dbctx.Context, rawIDs []string) ([]*domain.Product, []string, error) {
	var missing []string
	ids := make([]uuid.UUID, 0, len(rawIDs))
	seen := make(map[string]struct{}, len(rawIDs))
	for _, raw := range rawIDs {
		trimmed := strings.TrimSpace(raw)
		if _, ok := seen[trimmed]; ok {
			continue
		}
		seen[trimmed] = struct{}{}
		id, err := uuid.Parse(trimmed)
		if err != nil {
			missing = append(missing, raw)
			continue
		}
		ids = append(ids, id)
	}

	found, err := os.productRepo.GetByIDs(dbc, ids)
	if err != nil {
		return nil, nil, apierr.Internal(fmt.Errorf("fetch products: %w", err))
	}
	byID := make(map[uuid.UUID]*domain.Product, len(found))
	for _, p := range found {
		byID[p.ID] = p
	}

	products := make([]*domain.Product, 0, len(ids))
	for _, id := range ids {
		p, ok := byID[id]
		if !ok {
			missing = append(missing, id.String())
			continue
		}
		products = append(products, p)
	}
	return products, missing, nil
}

func derefProducts(products []*domain.Product) []domain.Product {
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		out = append(out, *p)
	}
	return out
}

func (os *orderService) List(ctx context.Context, filter repos.OrderFilter) ([]*domain.Order, error) {
	rows, err := os.orderRepo.List(dbctx.Context{Ctx: ctx}, filter)
	if err != nil {
		return nil, apierr.Internal(fmt.Errorf("list orders: %w", err))
	}
	return rows, nil
}
