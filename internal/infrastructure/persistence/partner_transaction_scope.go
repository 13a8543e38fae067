package persistence

import (
	"context"

	apppartner "github.com/marketplace/backend/internal/application/partner"
	"github.com/marketplace/backend/internal/domain/partner"
	"gorm.io/gorm"
)

// GormPartnerTransactionScope implements the partner TransactionScope using
// GORM transactions. Agent, agent user and inventory are created in one
// transaction during registration.
type GormPartnerTransactionScope struct {
	db *gorm.DB
}

// NewGormPartnerTransactionScope creates a new GormPartnerTransactionScope
func NewGormPartnerTransactionScope(db *gorm.DB) *GormPartnerTransactionScope {
	return &GormPartnerTransactionScope{db: db}
}

// Execute runs the given function within a database transaction
func (s *GormPartnerTransactionScope) Execute(ctx context.Context, fn func(repos apppartner.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormPartnerRepositories{tx: tx})
	})
}

type gormPartnerRepositories struct {
	tx *gorm.DB
}

func (r *gormPartnerRepositories) AgentRepo() partner.AgentRepository {
	return NewGormAgentRepository(r.tx)
}

func (r *gormPartnerRepositories) AgentUserRepo() partner.AgentUserRepository {
	return NewGormAgentUserRepository(r.tx)
}

func (r *gormPartnerRepositories) InventoryRepo() partner.InventoryRepository {
	return NewGormInventoryRepository(r.tx)
}

var _ apppartner.TransactionScope = (*GormPartnerTransactionScope)(nil)
var _ apppartner.TransactionalRepositories = (*gormPartnerRepositories)(nil)
