package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/yungbote/crm-backend/internal/data/repos"
	"github.com/yungbote/crm-backend/internal/domain"
	"github.com/yungbote/crm-backend/internal/platform/apierr"
	"github.com/yungbote/crm-backend/internal/platform/dbctx"
	"github.com/yungbote/crm-backend/internal/platform/logger"
)

type CreateCustomerInput struct {
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Phone *string `json:"phone,omitempty"`
}

// BulkCreateResult carries partial-failure output: customers that were
// persisted plus one human-readable message per rejected candidate, in the
// order the rejections were encountered.
type BulkCreateResult struct {
	Customers []*domain.Customer `json:"customers"`
	Errors    []string           `json:"errors"`
}

type CustomerService interface {
	Create(ctx context.Context, input CreateCustomerInput) (*domain.Customer, error)
	BulkCreate(ctx context.Context, inputs []CreateCustomerInput) (*BulkCreateResult, error)
	List(ctx context.Context, filter repos.CustomerFilter) ([]*domain.Customer, error)
}

type customerService struct {
	db           *gorm.DB
	log          *logger.Logger
	customerRepo repos.CustomerRepo
	auditRepo    repos.AuditEventRepo
}

func NewCustomerService(db *gorm.DB, log *logger.Logger, customerRepo repos.CustomerRepo, auditRepo repos.AuditEventRepo) CustomerService {
	serviceLog := log.With("service", "CustomerService")
	return &customerService{
		db:           db,
		log:          serviceLog,
		customerRepo: customerRepo,
		auditRepo:    auditRepo,
	}
}

func (cs *customerService) Create(ctx context.Context, input CreateCustomerInput) (*domain.Customer, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(input.Email)
	if name == "" {
		return nil, apierr.InvalidInput("Name is required.")
	}
	if email == "" {
		return nil, apierr.InvalidInput("Email is required.")
	}
	if !validPhone(input.Phone) {
		return nil, apierr.InvalidInput("Invalid phone number format.")
	}

	customer := &domain.Customer{
		ID:    uuid.New(),
		Name:  name,
		Email: email,
		Phone: input.Phone,
	}

	if err := cs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dbc := dbctx.Context{Ctx: ctx, Tx: tx}
		exists, err := cs.customerRepo.EmailExists(dbc, email)
		if err != nil {
			return apierr.Internal(fmt.Errorf("check email: %w", err))
		}
		if exists {
			return apierr.Conflict("Email %s already exists.", email)
		}
		if _, err := cs.customerRepo.Create(dbc, []*domain.Customer{customer}); err != nil {
			return createErr(err, email)
		}
		return cs.audit(dbc, "customer", "created", []uuid.UUID{customer.ID})
	}); err != nil {
		cs.log.Warn("Create customer failed", "email", email, "error", err)
		return nil, err
	}

	cs.log.Info("Customer created", "customer_id", customer.ID, "email", email)
	return customer, nil
}

func (cs *customerService) BulkCreate(ctx context.Context, inputs []CreateCustomerInput) (*BulkCreateResult, error) {
	result := &BulkCreateResult{
		Customers: []*domain.Customer{},
		Errors:    []string{},
	}

	if err := cs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dbc := dbctx.Context{Ctx: ctx, Tx: tx}

		staged := make([]*domain.Customer, 0, len(inputs))
		// Emails accepted earlier in this batch count as taken even though
		// they are not persisted yet.
		stagedEmails := make(map[string]struct{}, len(inputs))

		for _, in := range inputs {
			name := strings.TrimSpace(in.Name)
			email := strings.TrimSpace(in.Email)

			if email == "" {
				result.Errors = append(result.Errors, "Email is required.")
				continue
			}
			if name == "" {
				result.Errors = append(result.Errors, fmt.Sprintf("Name is required for %s.", email))
				continue
			}

			taken := false
			if _, ok := stagedEmails[email]; ok {
				taken = true
			} else {
				exists, err := cs.customerRepo.EmailExists(dbc, email)
				if err != nil {
					return apierr.Internal(fmt.Errorf("check email: %w", err))
				}
				taken = exists
			}
			if taken {
				result.Errors = append(result.Errors, fmt.Sprintf("Email %s already exists.", email))
				continue
			}

			if !validPhone(in.Phone) {
				result.Errors = append(result.Errors, fmt.Sprintf("Invalid phone %q for %s.", *in.Phone, email))
				continue
			}

			staged = append(staged, &domain.Customer{
				ID:    uuid.New(),
				Name:  name,
				Email: email,
				Phone: in.Phone,
			})
			stagedEmails[email] = struct{}{}
		}

		if len(staged) == 0 {
			return nil
		}

		// Single bulk insert; a store-level failure here rolls back the
		// whole batch.
		created, err := cs.customerRepo.Create(dbc, staged)
		if err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				// A concurrent request won the unique index race.
				return apierr.Conflict("One or more emails already exist.")
			}
			return apierr.Internal(fmt.Errorf("bulk create customers: %w", err))
		}
		result.Customers = created

		ids := make([]uuid.UUID, 0, len(created))
		for _, c := range created {
			ids = append(ids, c.ID)
		}
		return cs.audit(dbc, "customer", "bulk_created", ids)
	}); err != nil {
		cs.log.Warn("Bulk customer import failed", "count", len(inputs), "error", err)
		return nil, err
	}

	cs.log.Info("Bulk customer import finished",
		"requested", len(inputs),
		"created", len(result.Customers),
		"rejected", len(result.Errors),
	)
	return result, nil
}

func (cs *customerService) List(ctx context.Context, filter repos.CustomerFilter) ([]*domain.Customer, error) {
	rows, err := cs.customerRepo.List(dbctx.Context{Ctx: ctx}, filter)
	if err != nil {
		return nil, apierr.Internal(fmt.Errorf("list customers: %w", err))
	}
	return rows, nil
}

func (cs *customerService) audit(dbc dbctx.Context, entityType, action string, ids []uuid.UUID) error {
	if cs.auditRepo == nil || len(ids) == 0 {
		return nil
	}
	events := make([]*domain.AuditEvent, 0, len(ids))
	for _, id := range ids {
		payload, _ := json.Marshal(map[string]any{"action": action})
		events = append(events, &domain.AuditEvent{
			ID:         uuid.New(),
			EntityType: entityType,
			EntityID:   id,
			Action:     action,
			Data:       datatypes.JSON(payload),
			CreatedAt:  time.Now().UTC(),
		})
	}
	if _, err := cs.auditRepo.Create(dbc, events); err != nil {
		return apierr.Internal(fmt.Errorf("write audit events: %w", err))
	}
	return nil
}

func createErr(err error, email string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apierr.Conflict("Email %s already exists.", email)
	}
	return apierr.Internal(fmt.Errorf("create customer: %w", err))
}
