package services

import (
	"errors"

	"github.com/google/uuid"

	"github.com/yungbote/crm-backend/internal/data/repos"
	"github.com/yungbote/crm-backend/internal/domain"
	"github.com/yungbote/crm-backend/internal/platform/dbctx"
)

var errStore = errors.New("store unavailable")

type fakeCustomerRepo struct {
	customers   []*domain.Customer
	createErr   error
	createCalls int
}

func (f *fakeCustomerRepo) Create(_ dbctx.Context, customers []*domain.Customer) ([]*domain.Customer, error) {
	f.createCalls++
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.customers = append(f.customers, customers...)
	return customers, nil
}

func (f *fakeCustomerRepo) GetByIDs(_ dbctx.Context, ids []uuid.UUID) ([]*domain.Customer, error) {
	var out []*domain.Customer
	for _, c := range f.customers {
		for _, id := range ids {
			if c.ID == id {
				out = append(out, c)
			}
		}
	}
	return out, nil
}

func (f *fakeCustomerRepo) GetByEmails(_ dbctx.Context, emails []string) ([]*domain.Customer, error) {
	var out []*domain.Customer
	for _, c := range f.customers {
		for _, e := range emails {
			if c.Email == e {
				out = append(out, c)
			}
		}
	}
	return out, nil
}

func (f *fakeCustomerRepo) EmailExists(_ dbctx.Context, email string) (bool, error) {
	for _, c := range f.customers {
		if c.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeCustomerRepo) List(_ dbctx.Context, _ repos.CustomerFilter) ([]*domain.Customer, error) {
	return f.customers, nil
}

type fakeProductRepo struct {
	products  []*domain.Product
	getCalls  int
	createErr error
}

func (f *fakeProductRepo) Create(_ dbctx.Context, products []*domain.Product) ([]*domain.Product, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.products = append(f.products, products...)
	return products, nil
}

func (f *fakeProductRepo) GetByIDs(_ dbctx.Context, ids []uuid.UUID) ([]*domain.Product, error) {
	f.getCalls++
	var out []*domain.Product
	for _, p := range f.products {
		for _, id := range ids {
			if p.ID == id {
				out = append(out, p)
			}
		}
	}
	return out, nil
}

func (f *fakeProductRepo) List(_ dbctx.Context, _ repos.ProductFilter) ([]*domain.Product, error) {
	return f.products, nil
}

type fakeOrderRepo struct {
	orders    []*domain.Order
	createErr error
}

func (f *fakeOrderRepo) Create(_ dbctx.Context, order *domain.Order) (*domain.Order, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.orders = append(f.orders, order)
	return order, nil
}

func (f *fakeOrderRepo) GetByIDs(_ dbctx.Context, ids []uuid.UUID) ([]*domain.Order, error) {
	var out []*domain.Order
	for _, o := range f.orders {
		for _, id := range ids {
			if o.ID == id {
				out = append(out, o)
			}
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) Count(_ dbctx.Context) (int64, error) {
	return int64(len(f.orders)), nil
}

func (f *fakeOrderRepo) List(_ dbctx.Context, _ repos.OrderFilter) ([]*domain.Order, error) {
	return f.orders, nil
}

type fakeAuditRepo struct {
	events []*domain.AuditEvent
}

func (f *fakeAuditRepo) Create(_ dbctx.Context, events []*domain.AuditEvent) ([]*domain.AuditEvent, error) {
	f.events = append(f.events, events...)
	return events, nil
}

func (f *fakeAuditRepo) ListByEntity(_ dbctx.Context, entityType string, entityID uuid.UUID) ([]*domain.AuditEvent, error) {
	var out []*domain.AuditEvent
	for _, e := range f.events {
		if e.EntityType == entityType && e.EntityID == entityID {
			out = append(out, e)
		}
	}
	return out, nil
}
