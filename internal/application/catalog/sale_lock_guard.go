package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/marketplace/backend/internal/domain/inventory"
)

// SaleLockGuard derives whether a product has ever been involved in a
// transfer movement. The state is never stored on the product row; it is
// recomputed from the append-only ledger on every check, so it can never go
// stale through a missed invalidation.
//
// A guard built over plain repositories gives a possibly stale pre-check.
// Destructive operations must build a second guard over in-transaction
// repositories and re-verify before committing, closing the race between
// check and commit.
type SaleLockGuard struct {
	itemRepo inventory.InventoryItemRepository
	logRepo  inventory.InventoryItemLogRepository
}

// NewSaleLockGuard creates a new SaleLockGuard
func NewSaleLockGuard(itemRepo inventory.InventoryItemRepository, logRepo inventory.InventoryItemLogRepository) *SaleLockGuard {
	return &SaleLockGuard{
		itemRepo: itemRepo,
		logRepo:  logRepo,
	}
}

// HasSaleLog reports whether any ledger entry for the product's items
// references a source or destination inventory
func (g *SaleLockGuard) HasSaleLog(ctx context.Context, productID uuid.UUID) (bool, error) {
	items, err := g.itemRepo.FindByProduct(ctx, productID)
	if err != nil {
		return false, err
	}
	if len(items) == 0 {
		return false, nil
	}

	itemIDs := make([]uuid.UUID, len(items))
	for i := range items {
		itemIDs[i] = items[i].ID
	}

	return g.logRepo.ExistsTransferForItems(ctx, itemIDs)
}

// HasSaleLogBatch computes the sale-lock state for a whole page of
// products with a fixed number of queries: one for all items, one for all
// matching transfer logs, regardless of page size.
func (g *SaleLockGuard) HasSaleLogBatch(ctx context.Context, productIDs []uuid.UUID) (map[uuid.UUID]bool, error) {
	result := make(map[uuid.UUID]bool, len(productIDs))
	if len(productIDs) == 0 {
		return result, nil
	}

	items, err := g.itemRepo.FindByProducts(ctx, productIDs)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return result, nil
	}

	itemIDs := make([]uuid.UUID, len(items))
	for i := range items {
		itemIDs[i] = items[i].ID
	}

	transferIDs, err := g.logRepo.FindTransferItemIDs(ctx, itemIDs)
	if err != nil {
		return nil, err
	}

	transferSet := make(map[uuid.UUID]struct{}, len(transferIDs))
	for _, id := range transferIDs {
		transferSet[id] = struct{}{}
	}

	for i := range items {
		if _, ok := transferSet[items[i].ID]; ok {
			result[items[i].ProductID] = true
		}
	}

	return result, nil
}
