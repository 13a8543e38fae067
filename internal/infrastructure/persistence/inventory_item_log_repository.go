package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/marketplace/backend/internal/domain/inventory"
	"gorm.io/gorm"
)

// GormInventoryItemLogRepository implements the append-only ledger
// repository using GORM. There is no update method; corrections are
// written as new rows.
type GormInventoryItemLogRepository struct {
	db *gorm.DB
}

// NewGormInventoryItemLogRepository creates a new GormInventoryItemLogRepository
func NewGormInventoryItemLogRepository(db *gorm.DB) *GormInventoryItemLogRepository {
	return &GormInventoryItemLogRepository{db: db}
}

// Append inserts one immutable ledger row
func (r *GormInventoryItemLogRepository) Append(ctx context.Context, log *inventory.InventoryItemLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

// ExistsTransferForItems reports whether any ledger row of the given items
// carries a source or destination inventory
func (r *GormInventoryItemLogRepository) ExistsTransferForItems(ctx context.Context, itemIDs []uuid.UUID) (bool, error) {
	if len(itemIDs) == 0 {
		return false, nil
	}
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&inventory.InventoryItemLog{}).
		Where("inventory_item_id IN ?", itemIDs).
		Where("from_inventory_id IS NOT NULL OR to_inventory_id IS NOT NULL").
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindTransferItemIDs returns, in one query, the distinct subset of the
// given item ids that appear in at least one transfer movement
func (r *GormInventoryItemLogRepository) FindTransferItemIDs(ctx context.Context, itemIDs []uuid.UUID) ([]uuid.UUID, error) {
	if len(itemIDs) == 0 {
		return nil, nil
	}
	var ids []uuid.UUID
	if err := r.db.WithContext(ctx).
		Model(&inventory.InventoryItemLog{}).
		Distinct("inventory_item_id").
		Where("inventory_item_id IN ?", itemIDs).
		Where("from_inventory_id IS NOT NULL OR to_inventory_id IS NOT NULL").
		Pluck("inventory_item_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// DeleteByItems deletes all ledger rows of the given items. Used only when
// the owning product is deleted.
func (r *GormInventoryItemLogRepository) DeleteByItems(ctx context.Context, itemIDs []uuid.UUID) error {
	if len(itemIDs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Delete(&inventory.InventoryItemLog{}, "inventory_item_id IN ?", itemIDs).Error
}

var _ inventory.InventoryItemLogRepository = (*GormInventoryItemLogRepository)(nil)
