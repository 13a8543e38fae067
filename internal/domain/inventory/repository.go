package inventory

import (
	"context"

	"github.com/google/uuid"
)

// InventoryItemRepository defines the persistence contract for inventory items
type InventoryItemRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*InventoryItem, error)
	FindByProduct(ctx context.Context, productID uuid.UUID) ([]InventoryItem, error)
	// FindByProducts returns all items across the given products in one
	// query, for batched sale-lock derivation on listing pages.
	FindByProducts(ctx context.Context, productIDs []uuid.UUID) ([]InventoryItem, error)
	Save(ctx context.Context, item *InventoryItem) error
	DeleteByProduct(ctx context.Context, productID uuid.UUID) error
}

// InventoryItemLogRepository is the append-only persistence contract for
// the stock ledger. There is deliberately no update operation; rows are
// removed only when the owning product is deleted.
type InventoryItemLogRepository interface {
	Append(ctx context.Context, log *InventoryItemLog) error
	// ExistsTransferForItems reports whether any log row for the given
	// items has a source or destination inventory set.
	ExistsTransferForItems(ctx context.Context, itemIDs []uuid.UUID) (bool, error)
	// FindTransferItemIDs returns, in one query, the subset of the given
	// item ids that appear in at least one transfer movement.
	FindTransferItemIDs(ctx context.Context, itemIDs []uuid.UUID) ([]uuid.UUID, error)
	DeleteByItems(ctx context.Context, itemIDs []uuid.UUID) error
}

// InventoryLogTypeRepository defines the persistence contract for
// movement type reference rows
type InventoryLogTypeRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*InventoryLogType, error)
	FindByCode(ctx context.Context, code string) (*InventoryLogType, error)
	FindAll(ctx context.Context, codes []string) ([]InventoryLogType, error)
}
