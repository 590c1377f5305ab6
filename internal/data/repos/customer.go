package repos

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/crm-backend/internal/domain"
	"github.com/yungbote/crm-backend/internal/platform/dbctx"
	"github.com/yungbote/crm-backend/internal/platform/logger"
)

// CustomerFilter narrows List results; zero values mean "no constraint".
type CustomerFilter struct {
	NameContains string
	PhonePrefix  string
	CreatedFrom  *time.Time
	CreatedTo    *time.Time
}

type CustomerRepo interface {
	// Create persists all rows in a single insert; it either inserts every
	// row or none of them.
	Create(dbc dbctx.Context, customers []*domain.Customer) ([]*domain.Customer, error)
	GetByIDs(dbc dbctx.Context, ids []uuid.UUID) ([]*domain.Customer, error)
	GetByEmails(dbc dbctx.Context, emails []string) ([]*domain.Customer, error)
	EmailExists(dbc dbctx.Context, email string) (bool, error)
	List(dbc dbctx.Context, filter CustomerFilter) ([]*domain.Customer, error)
}

type customerRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCustomerRepo(db *gorm.DB, baseLog *logger.Logger) CustomerRepo {
	repoLog := baseLog.With("repo", "CustomerRepo")
	return &customerRepo{db: db, log: repoLog}
}

func (cr *customerRepo) conn(dbc dbctx.Context) *gorm.DB {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = cr.db
	}
	return transaction.WithContext(dbc.Ctx)
}

func (cr *customerRepo) Create(dbc dbctx.Context, customers []*domain.Customer) ([]*domain.Customer, error) {
	if len(customers) == 0 {
		return []*domain.Customer{}, nil
	}
	if err := cr.conn(dbc).Create(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

func (cr *customerRepo) GetByIDs(dbc dbctx.Context, ids []uuid.UUID) ([]*domain.Customer, error) {
	var results []*domain.Customer
	if len(ids) == 0 {
		return results, nil
	}
	if err := cr.conn(dbc).
		Where("id IN ?", ids).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (cr *customerRepo) GetByEmails(dbc dbctx.Context, emails []string) ([]*domain.Customer, error) {
	var results []*domain.Customer
	if len(emails) == 0 {
		return results, nil
	}
	if err := cr.conn(dbc).
		Where("email IN ?", emails).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (cr *customerRepo) EmailExists(dbc dbctx.Context, email string) (bool, error) {
	var count int64
	if err := cr.conn(dbc).
		Model(&domain.Customer{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (cr *customerRepo) List(dbc dbctx.Context, filter CustomerFilter) ([]*domain.Customer, error) {
	q := cr.conn(dbc).Model(&domain.Customer{})
	if filter.NameContains != "" {
		q = q.Where("LOWER(name) LIKE LOWER(?)", "%"+filter.NameContains+"%")
	}
	if filter.PhonePrefix != "" {
		q = q.Where("phone LIKE ?", filter.PhonePrefix+"%")
	}
	if filter.CreatedFrom != nil {
		q = q.Where("created_at >= ?", *filter.CreatedFrom)
	}
	if filter.CreatedTo != nil {
		q = q.Where("created_at <= ?", *filter.CreatedTo)
	}

	var results []*domain.Customer
	if err := q.Order("created_at ASC").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
