package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/marketplace/backend/internal/domain/inventory"
	"github.com/marketplace/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormInventoryItemRepository implements InventoryItemRepository using GORM
type GormInventoryItemRepository struct {
	db *gorm.DB
}

// NewGormInventoryItemRepository creates a new GormInventoryItemRepository
func NewGormInventoryItemRepository(db *gorm.DB) *GormInventoryItemRepository {
	return &GormInventoryItemRepository{db: db}
}

// FindByID finds an inventory item by its ID
func (r *GormInventoryItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.InventoryItem, error) {
	var item inventory.InventoryItem
	if err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// FindByProduct finds all items of one product
func (r *GormInventoryItemRepository) FindByProduct(ctx context.Context, productID uuid.UUID) ([]inventory.InventoryItem, error) {
	var items []inventory.InventoryItem
	if err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// FindByProducts finds the items of all given products in one query
func (r *GormInventoryItemRepository) FindByProducts(ctx context.Context, productIDs []uuid.UUID) ([]inventory.InventoryItem, error) {
	if len(productIDs) == 0 {
		return nil, nil
	}
	var items []inventory.InventoryItem
	if err := r.db.WithContext(ctx).
		Where("product_id IN ?", productIDs).
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Save creates or updates an inventory item
func (r *GormInventoryItemRepository) Save(ctx context.Context, item *inventory.InventoryItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

// DeleteByProduct deletes all items of a product
func (r *GormInventoryItemRepository) DeleteByProduct(ctx context.Context, productID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&inventory.InventoryItem{}, "product_id = ?", productID).Error
}
