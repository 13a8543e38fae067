package inventory

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/marketplace/backend/internal/domain/inventory"
	"github.com/marketplace/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// InventoryItemService handles stock movements on inventory items. This is
// the only write path that appends ledger entries after product creation,
// and therefore the only path that can set a product's irreversible sale
// lock, by writing a movement with a source or destination inventory.
type InventoryItemService struct {
	txScope  TransactionScope
	itemRepo inventory.InventoryItemRepository
	logger   *zap.Logger
}

// NewInventoryItemService creates a new InventoryItemService
func NewInventoryItemService(txScope TransactionScope, itemRepo inventory.InventoryItemRepository, logger *zap.Logger) *InventoryItemService {
	return &InventoryItemService{
		txScope:  txScope,
		itemRepo: itemRepo,
		logger:   logger,
	}
}

// Update adjusts an item's price/quantity and unconditionally appends the
// matching ledger entry in the same transaction. An omitted price or qty
// falls back to the item's current value, so a pure transfer does not have
// to restate the stock level.
func (s *InventoryItemService) Update(ctx context.Context, itemID uuid.UUID, req UpdateInventoryItemRequest) (*UpdateInventoryItemResponse, error) {
	var (
		item  *inventory.InventoryItem
		entry *inventory.InventoryItemLog
	)

	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		item, err = repos.ItemRepo().FindByID(ctx, itemID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return shared.NewDomainError("NOT_FOUND", "Inventory item not found")
			}
			return err
		}

		logType, err := repos.LogTypeRepo().FindByID(ctx, req.LogTypeID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return shared.NewDomainError("INVALID_REFERENCE", "Movement type does not exist")
			}
			return err
		}

		price := item.Price
		if req.Price != nil {
			price = *req.Price
		}
		qty := item.Qty
		if req.Qty != nil {
			qty = *req.Qty
		}

		if err := item.Adjust(price, qty); err != nil {
			return err
		}
		if err := repos.ItemRepo().Save(ctx, item); err != nil {
			return err
		}

		entry, err = inventory.NewMovement(item.ID, logType.ID, qty, price, req.FromInventoryID, req.ToInventoryID)
		if err != nil {
			return err
		}
		return repos.ItemLogRepo().Append(ctx, entry)
	})
	if err != nil {
		return nil, err
	}

	if entry.IsTransfer() {
		s.logger.Info("transfer movement recorded, product is now sale-locked",
			zap.String("inventory_item_id", item.ID.String()),
			zap.String("product_id", item.ProductID.String()))
	}

	return &UpdateInventoryItemResponse{
		Item:     ToInventoryItemResponse(item),
		Movement: ToMovementResponse(entry),
	}, nil
}

// GetByID retrieves a single inventory item
func (s *InventoryItemService) GetByID(ctx context.Context, itemID uuid.UUID) (*InventoryItemResponse, error) {
	item, err := s.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	response := ToInventoryItemResponse(item)
	return &response, nil
}
