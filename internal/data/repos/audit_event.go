package repos

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/crm-backend/internal/domain"
	"github.com/yungbote/crm-backend/internal/platform/dbctx"
	"github.com/yungbote/crm-backend/internal/platform/logger"
)

type AuditEventRepo interface {
	Create(dbc dbctx.Context, events []*domain.AuditEvent) ([]*domain.AuditEvent, error)
	ListByEntity(dbc dbctx.Context, entityType string, entityID uuid.UUID) ([]*domain.AuditEvent, error)
}

type auditEventRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewAuditEventRepo(db *gorm.DB, baseLog *logger.Logger) AuditEventRepo {
	repoLog := baseLog.With("repo", "AuditEventRepo")
	return &auditEventRepo{db: db, log: repoLog}
}

func (ar *auditEventRepo) conn(dbc dbctx.Context) *gorm.DB {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = ar.db
	}
	return transaction.WithContext(dbc.Ctx)
}

func (ar *auditEventRepo) Create(dbc dbctx.Context, events []*domain.AuditEvent) ([]*domain.AuditEvent, error) {
	if len(events) == 0 {
		return []*domain.AuditEvent{}, nil
	}
	if err := ar.conn(dbc).Create(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (ar *auditEventRepo) ListByEntity(dbc dbctx.Context, entityType string, entityID uuid.UUID) ([]*domain.AuditEvent, error) {
	var results []*domain.AuditEvent
	if err := ar.conn(dbc).
		Where("entity_type = ? AND entity_id = ?", entityType, entityID).
		Order("created_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
