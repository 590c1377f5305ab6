package services

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/yungbote/crm-backend/internal/data/repos/testutil"
	"github.com/yungbote/crm-backend/internal/platform/apierr"
)

func ptrInt(v int) *int { return &v }

func TestProductServiceCreate(t *testing.T) {
	db := testutil.DB(t)
	prodRepo := &fakeProductRepo{}
	audit := &fakeAuditRepo{}
	svc := NewProductService(db, testutil.Logger(t), prodRepo, audit)

	p, err := svc.Create(context.Background(), CreateProductInput{
		Name:  "Widget",
		Price: decimal.RequireFromString("19.99"),
		Stock: ptrInt(5),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if !p.Price.Equal(decimal.RequireFromString("19.99")) || p.Stock != 5 {
		t.Fatalf("product: got=%+v", p)
	}
	if len(prodRepo.products) != 1 {
		t.Fatalf("stored products: want=1 got=%d", len(prodRepo.products))
	}
	if len(audit.events) != 1 || audit.events[0].EntityType != "product" {
		t.Fatalf("audit events: got=%+v", audit.events)
	}
}

func TestProductServiceStockDefaultsToZero(t *testing.T) {
	db := testutil.DB(t)
	svc := NewProductService(db, testutil.Logger(t), &fakeProductRepo{}, nil)

	p, err := svc.Create(context.Background(), CreateProductInput{
		Name:  "Gadget",
		Price: decimal.RequireFromString("5.00"),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if p.Stock != 0 {
		t.Fatalf("stock: want=0 got=%d", p.Stock)
	}
}

func TestProductServiceCreateValidation(t *testing.T) {
	db := testutil.DB(t)

	cases := []struct {
		name  string
		input CreateProductInput
		msg   string
	}{
		{"negative price", CreateProductInput{Name: "Widget", Price: decimal.RequireFromString("-1"), Stock: ptrInt(5)}, "Price must be positive."},
		{"zero price", CreateProductInput{Name: "Widget", Price: decimal.Zero}, "Price must be positive."},
		{"negative stock", CreateProductInput{Name: "Widget", Price: decimal.RequireFromString("1.00"), Stock: ptrInt(-3)}, "Stock cannot be negative."},
		{"missing name", CreateProductInput{Price: decimal.RequireFromString("1.00")}, "Name is required."},
	}
	for _, tc := range cases {
		prodRepo := &fakeProductRepo{}
		svc := NewProductService(db, testutil.Logger(t), prodRepo, nil)
		_, err := svc.Create(context.Background(), tc.input)
		if err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
		if !apierr.IsCode(err, apierr.CodeInvalidInput) {
			t.Fatalf("%s: code want=invalid_input got=%v", tc.name, err)
		}
		if err.Error() != tc.msg {
			t.Fatalf("%s: message want=%q got=%q", tc.name, tc.msg, err.Error())
		}
		if len(prodRepo.products) != 0 {
			t.Fatalf("%s: store mutated", tc.name)
		}
	}
}
