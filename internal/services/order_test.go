package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/yungbote/crm-backend/internal/data/repos/testutil"
	"github.com/yungbote/crm-backend/internal/domain"
	"github.com/yungbote/crm-backend/internal/platform/apierr"
)

func seedFakeCustomer(repo *fakeCustomerRepo, email string) *domain.Customer {
	c := &domain.Customer{ID: uuid.New(), Name: "Customer " + email, Email: email}
	repo.customers = append(repo.customers, c)
	return c
}

func seedFakeProduct(repo *fakeProductRepo, name, price string) *domain.Product {
	p := &domain.Product{ID: uuid.New(), Name: name, Price: decimal.RequireFromString(price)}
	repo.products = append(repo.products, p)
	return p
}

func TestOrderServiceCreateExactTotal(t *testing.T) {
	db := testutil.DB(t)
	custRepo := &fakeCustomerRepo{}
	prodRepo := &fakeProductRepo{}
	orderRepo := &fakeOrderRepo{}
	audit := &fakeAuditRepo{}
	svc := NewOrderService(db, testutil.Logger(t), orderRepo, custRepo, prodRepo, audit)

	cust := seedFakeCustomer(custRepo, "alice@example.com")
	p1 := seedFakeProduct(prodRepo, "Laptop", "19.99")
	p2 := seedFakeProduct(prodRepo, "Mouse", "5.00")
	p3 := seedFakeProduct(prodRepo, "Cable", "0.02")

	order, err := svc.Create(context.Background(), CreateOrderInput{
		CustomerID: cust.ID.String(),
		ProductIDs: []string{p1.ID.String(), p2.ID.String(), p3.ID.String()},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	want := decimal.RequireFromString("25.01")
	if !order.TotalAmount.Equal(want) {
		t.Fatalf("total: want=%s got=%s", want, order.TotalAmount)
	}
	if len(order.Products) != 3 {
		t.Fatalf("products on order: want=3 got=%d", len(order.Products))
	}
	if len(orderRepo.orders) != 1 {
		t.Fatalf("stored orders: want=1 got=%d", len(orderRepo.orders))
	}
	if len(audit.events) != 1 || audit.events[0].EntityType != "order" {
		t.Fatalf("audit events: got=%+v", audit.events)
	}
}

func TestOrderServiceCreateUnknownCustomer(t *testing.T) {
	db := testutil.DB(t)
	custRepo := &fakeCustomerRepo{}
	prodRepo := &fakeProductRepo{}
	orderRepo := &fakeOrderRepo{}
	svc := NewOrderService(db, testutil.Logger(t), orderRepo, custRepo, prodRepo, nil)

	p := seedFakeProduct(prodRepo, "Laptop", "19.99")

	for _, customerID := range []string{uuid.NewString(), "not-a-uuid", ""} {
		_, err := svc.Create(context.Background(), CreateOrderInput{
			CustomerID: customerID,
			ProductIDs: []string{p.ID.String()},
		})
		if err == nil {
			t.Fatalf("customer %q: expected error", customerID)
		}
		if !apierr.IsCode(err, apierr.CodeNotFound) {
			t.Fatalf("customer %q: code want=not_found got=%v", customerID, err)
		}
		if err.Error() != "Invalid customer ID." {
			t.Fatalf("customer %q: message got=%q", customerID, err.Error())
		}
	}
	if len(orderRepo.orders) != 0 {
		t.Fatalf("stored orders: want=0 got=%d", len(orderRepo.orders))
	}
}

func TestOrderServiceCreateEmptyProductList(t *testing.T) {
	db := testutil.DB(t)
	custRepo := &fakeCustomerRepo{}
	prodRepo := &fakeProductRepo{}
	svc := NewOrderService(db, testutil.Logger(t), &fakeOrderRepo{}, custRepo, prodRepo, nil)

	cust := seedFakeCustomer(custRepo, "alice@example.com")

	_, err := svc.Create(context.Background(), CreateOrderInput{CustomerID: cust.ID.String()})
	if err == nil {
		t.Fatal("expected error")
	}
	if !apierr.IsCode(err, apierr.CodeInvalidInput) {
		t.Fatalf("code want=invalid_input got=%v", err)
	}
	if err.Error() != "At least one product is required." {
		t.Fatalf("message got=%q", err.Error())
	}
	if prodRepo.getCalls != 0 {
		t.Fatalf("product lookups: want=0 got=%d", prodRepo.getCalls)
	}
}

func TestOrderServiceCreateUnknownProducts(t *testing.T) {
	db := testutil.DB(t)
	custRepo := &fakeCustomerRepo{}
	prodRepo := &fakeProductRepo{}
	orderRepo := &fakeOrderRepo{}
	svc := NewOrderService(db, testutil.Logger(t), orderRepo, custRepo, prodRepo, nil)

	cust := seedFakeCustomer(custRepo, "alice@example.com")
	p := seedFakeProduct(prodRepo, "Laptop", "19.99")
	missing := uuid.NewString()

	_, err := svc.Create(context.Background(), CreateOrderInput{
		CustomerID: cust.ID.String(),
		ProductIDs: []string{p.ID.String(), missing, "garbage"},
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if !apierr.IsCode(err, apierr.CodeNotFound) {
		t.Fatalf("code want=not_found got=%v", err)
	}
	want := "Invalid product ID(s): garbage, " + missing
	if err.Error() != want {
		t.Fatalf("message want=%q got=%q", want, err.Error())
	}
	if len(orderRepo.orders) != 0 {
		t.Fatalf("stored orders: want=0 got=%d", len(orderRepo.orders))
	}
}

func TestOrderServiceCreateDeduplicatesProducts(t *testing.T) {
	db := testutil.DB(t)
	custRepo := &fakeCustomerRepo{}
	prodRepo := &fakeProductRepo{}
	orderRepo := &fakeOrderRepo{}
	svc := NewOrderService(db, testutil.Logger(t), orderRepo, custRepo, prodRepo, nil)

	cust := seedFakeCustomer(custRepo, "alice@example.com")
	p := seedFakeProduct(prodRepo, "Laptop", "19.99")

	order, err := svc.Create(context.Background(), CreateOrderInput{
		CustomerID: cust.ID.String(),
		ProductIDs: []string{p.ID.String(), p.ID.String(), p.ID.String()},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if len(order.Products) != 1 {
		t.Fatalf("products on order: want=1 got=%d", len(order.Products))
	}
	if !order.TotalAmount.Equal(decimal.RequireFromString("19.99")) {
		t.Fatalf("total: got=%s", order.TotalAmount)
	}
}
