package persistence

import (
	"context"

	appcatalog "github.com/marketplace/backend/internal/application/catalog"
	"github.com/marketplace/backend/internal/domain/catalog"
	"github.com/marketplace/backend/internal/domain/inventory"
	"gorm.io/gorm"
)

// GormCatalogTransactionScope implements the catalog TransactionScope using
// GORM transactions. Every repository handed to the scoped function shares
// one transaction, so a product write and its sale-lock re-check see the
// same snapshot and commit atomically.
type GormCatalogTransactionScope struct {
	db *gorm.DB
}

// NewGormCatalogTransactionScope creates a new GormCatalogTransactionScope
func NewGormCatalogTransactionScope(db *gorm.DB) *GormCatalogTransactionScope {
	return &GormCatalogTransactionScope{db: db}
}

// Execute runs the given function within a database transaction
func (s *GormCatalogTransactionScope) Execute(ctx context.Context, fn func(repos appcatalog.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormCatalogRepositories{tx: tx})
	})
}

type gormCatalogRepositories struct {
	tx *gorm.DB
}

func (r *gormCatalogRepositories) ProductRepo() catalog.ProductRepository {
	return NewGormProductRepository(r.tx)
}

func (r *gormCatalogRepositories) ImageRepo() catalog.ProductImageRepository {
	return NewGormProductImageRepository(r.tx)
}

func (r *gormCatalogRepositories) LocationRepo() catalog.ProductLocationRepository {
	return NewGormProductLocationRepository(r.tx)
}

func (r *gormCatalogRepositories) CategoryRepo() catalog.CategoryRepository {
	return NewGormCategoryRepository(r.tx)
}

func (r *gormCatalogRepositories) SuggestedCategoryRepo() catalog.SuggestedCategoryRepository {
	return NewGormSuggestedCategoryRepository(r.tx)
}

func (r *gormCatalogRepositories) ItemRepo() inventory.InventoryItemRepository {
	return NewGormInventoryItemRepository(r.tx)
}

func (r *gormCatalogRepositories) ItemLogRepo() inventory.InventoryItemLogRepository {
	return NewGormInventoryItemLogRepository(r.tx)
}

func (r *gormCatalogRepositories) LogTypeRepo() inventory.InventoryLogTypeRepository {
	return NewGormInventoryLogTypeRepository(r.tx)
}

var _ appcatalog.TransactionScope = (*GormCatalogTransactionScope)(nil)
var _ appcatalog.TransactionalRepositories = (*gormCatalogRepositories)(nil)
