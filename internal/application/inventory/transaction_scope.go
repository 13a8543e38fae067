package inventory

import (
	"context"

	"github.com/marketplace/backend/internal/domain/inventory"
)

// TransactionScope provides transactional access to the inventory
// repositories. An inventory-item update writes the item row and its ledger
// entry in one transaction; a log entry must never exist without the
// matching item state.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the inventory repositories
// within one transaction
type TransactionalRepositories interface {
	ItemRepo() inventory.InventoryItemRepository
	ItemLogRepo() inventory.InventoryItemLogRepository
	LogTypeRepo() inventory.InventoryLogTypeRepository
}

// NoOpTransactionScope runs the scoped function without a real transaction.
// Useful for tests built on plain repository fakes.
type NoOpTransactionScope struct {
	Items    inventory.InventoryItemRepository
	ItemLogs inventory.InventoryItemLogRepository
	LogTypes inventory.InventoryLogTypeRepository
}

// Execute runs the function without a real transaction
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// ItemRepo returns the inventory item repository
func (s *NoOpTransactionScope) ItemRepo() inventory.InventoryItemRepository { return s.Items }

// ItemLogRepo returns the inventory item log repository
func (s *NoOpTransactionScope) ItemLogRepo() inventory.InventoryItemLogRepository { return s.ItemLogs }

// LogTypeRepo returns the movement type repository
func (s *NoOpTransactionScope) LogTypeRepo() inventory.InventoryLogTypeRepository { return s.LogTypes }

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
