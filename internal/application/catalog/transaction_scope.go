package catalog

import (
	"context"

	"github.com/marketplace/backend/internal/domain/catalog"
	"github.com/marketplace/backend/internal/domain/inventory"
)

// TransactionScope provides transactional access to every repository a
// product lifecycle operation touches. When a function executes within the
// scope, all repository operations are part of the same database
// transaction and commit or roll back atomically.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the product lifecycle
// repositories within one transaction. A product write spans the product
// row, its location, images, suggestions, inventory item and ledger entry;
// all of them must share the transaction, including the sale-lock re-check
// that guards destructive operations.
type TransactionalRepositories interface {
	ProductRepo() catalog.ProductRepository
	ImageRepo() catalog.ProductImageRepository
	LocationRepo() catalog.ProductLocationRepository
	CategoryRepo() catalog.CategoryRepository
	SuggestedCategoryRepo() catalog.SuggestedCategoryRepository
	ItemRepo() inventory.InventoryItemRepository
	ItemLogRepo() inventory.InventoryItemLogRepository
	LogTypeRepo() inventory.InventoryLogTypeRepository
}

// NoOpTransactionScope runs the scoped function without a real transaction.
// Useful for tests built on plain repository fakes.
type NoOpTransactionScope struct {
	Products    catalog.ProductRepository
	Images      catalog.ProductImageRepository
	Locations   catalog.ProductLocationRepository
	Categories  catalog.CategoryRepository
	Suggestions catalog.SuggestedCategoryRepository
	Items       inventory.InventoryItemRepository
	ItemLogs    inventory.InventoryItemLogRepository
	LogTypes    inventory.InventoryLogTypeRepository
}

// Execute runs the function without a real transaction
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// ProductRepo returns the product repository
func (s *NoOpTransactionScope) ProductRepo() catalog.ProductRepository { return s.Products }

// ImageRepo returns the product image repository
func (s *NoOpTransactionScope) ImageRepo() catalog.ProductImageRepository { return s.Images }

// LocationRepo returns the product location repository
func (s *NoOpTransactionScope) LocationRepo() catalog.ProductLocationRepository { return s.Locations }

// CategoryRepo returns the category repository
func (s *NoOpTransactionScope) CategoryRepo() catalog.CategoryRepository { return s.Categories }

// SuggestedCategoryRepo returns the suggested category repository
func (s *NoOpTransactionScope) SuggestedCategoryRepo() catalog.SuggestedCategoryRepository {
	return s.Suggestions
}

// ItemRepo returns the inventory item repository
func (s *NoOpTransactionScope) ItemRepo() inventory.InventoryItemRepository { return s.Items }

// ItemLogRepo returns the inventory item log repository
func (s *NoOpTransactionScope) ItemLogRepo() inventory.InventoryItemLogRepository { return s.ItemLogs }

// LogTypeRepo returns the movement type repository
func (s *NoOpTransactionScope) LogTypeRepo() inventory.InventoryLogTypeRepository { return s.LogTypes }

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
