package testutil

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/yungbote/crm-backend/internal/domain"
)

func SeedCustomer(tb testing.TB, ctx context.Context, tx *gorm.DB, email string) *domain.Customer {
	tb.Helper()
	c := &domain.Customer{
		ID:    uuid.New(),
		Name:  "Customer " + email,
		Email: email,
	}
	if err := tx.WithContext(ctx).Create(c).Error; err != nil {
		tb.Fatalf("seed customer: %v", err)
	}
	return c
}

func SeedProduct(tb testing.TB, ctx context.Context, tx *gorm.DB, name, price string, stock int) *domain.Product {
	tb.Helper()
	p := &domain.Product{
		ID:    uuid.New(),
		Name:  name,
		Price: decimal.RequireFromString(price),
		Stock: stock,
	}
	if err := tx.WithContext(ctx).Create(p).Error; err != nil {
		tb.Fatalf("seed product: %v", err)
	}
	return p
}

func PtrString(v string) *string { return &v }

func PtrInt(v int) *int { return &v }

func PtrDecimal(v string) *decimal.Decimal {
	d := decimal.RequireFromString(v)
	return &d
}
