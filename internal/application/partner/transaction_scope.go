package partner

import (
	"context"

	"github.com/marketplace/backend/internal/domain/partner"
)

// TransactionScope provides transactional access to partner repositories.
// All repository operations executed inside the scope are committed or
// rolled back atomically.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to all partner repositories
// within a transaction. All repositories share the same underlying
// database transaction.
type TransactionalRepositories interface {
	AgentRepo() partner.AgentRepository
	AgentUserRepo() partner.AgentUserRepository
	InventoryRepo() partner.InventoryRepository
}

// NoOpTransactionScope runs the scoped function without a real transaction.
// Useful for tests built on plain repository fakes.
type NoOpTransactionScope struct {
	agentRepo     partner.AgentRepository
	agentUserRepo partner.AgentUserRepository
	inventoryRepo partner.InventoryRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories
func NewNoOpTransactionScope(
	agentRepo partner.AgentRepository,
	agentUserRepo partner.AgentUserRepository,
	inventoryRepo partner.InventoryRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		agentRepo:     agentRepo,
		agentUserRepo: agentUserRepo,
		inventoryRepo: inventoryRepo,
	}
}

// Execute runs the function without a real transaction
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// AgentRepo returns the agent repository
func (s *NoOpTransactionScope) AgentRepo() partner.AgentRepository { return s.agentRepo }

// AgentUserRepo returns the agent user repository
func (s *NoOpTransactionScope) AgentUserRepo() partner.AgentUserRepository { return s.agentUserRepo }

// InventoryRepo returns the inventory repository
func (s *NoOpTransactionScope) InventoryRepo() partner.InventoryRepository { return s.inventoryRepo }

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
