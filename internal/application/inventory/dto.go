package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/marketplace/backend/internal/domain/inventory"
	"github.com/shopspring/decimal"
)

// UpdateInventoryItemRequest represents a stock movement on one inventory
// item. Price and Qty are optional; an omitted field keeps the item's
// current value. Supplying FromInventoryID or ToInventoryID marks the
// movement as a transfer, which permanently locks the owning product.
type UpdateInventoryItemRequest struct {
	LogTypeID       uuid.UUID        `json:"log_type_id" binding:"required"`
	Price           *decimal.Decimal `json:"price"`
	Qty             *decimal.Decimal `json:"qty"`
	FromInventoryID *uuid.UUID       `json:"from_inventory_id"`
	ToInventoryID   *uuid.UUID       `json:"to_inventory_id"`
}

// InventoryItemResponse represents an inventory item in API responses
type InventoryItemResponse struct {
	ID          uuid.UUID       `json:"id"`
	InventoryID uuid.UUID       `json:"inventory_id"`
	ProductID   uuid.UUID       `json:"product_id"`
	Price       decimal.Decimal `json:"price"`
	Qty         decimal.Decimal `json:"qty"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// MovementResponse represents a written ledger entry in API responses
type MovementResponse struct {
	ID              uuid.UUID       `json:"id"`
	InventoryItemID uuid.UUID       `json:"inventory_item_id"`
	LogTypeID       uuid.UUID       `json:"log_type_id"`
	Qty             decimal.Decimal `json:"qty"`
	Price           decimal.Decimal `json:"price"`
	FromInventoryID *uuid.UUID      `json:"from_inventory_id,omitempty"`
	ToInventoryID   *uuid.UUID      `json:"to_inventory_id,omitempty"`
	IsTransfer      bool            `json:"is_transfer"`
	CreatedAt       time.Time       `json:"created_at"`
}

// UpdateInventoryItemResponse carries the updated item together with the
// ledger entry the update appended
type UpdateInventoryItemResponse struct {
	Item     InventoryItemResponse `json:"item"`
	Movement MovementResponse      `json:"movement"`
}

// LogTypeResponse represents a movement type in API responses
type LogTypeResponse struct {
	ID   uuid.UUID `json:"id"`
	Code string    `json:"code"`
	Name string    `json:"name"`
}

// ToInventoryItemResponse converts a domain InventoryItem to a response
func ToInventoryItemResponse(item *inventory.InventoryItem) InventoryItemResponse {
	return InventoryItemResponse{
		ID:          item.ID,
		InventoryID: item.InventoryID,
		ProductID:   item.ProductID,
		Price:       item.Price,
		Qty:         item.Qty,
		UpdatedAt:   item.UpdatedAt,
	}
}

// ToMovementResponse converts a domain InventoryItemLog to a response
func ToMovementResponse(log *inventory.InventoryItemLog) MovementResponse {
	return MovementResponse{
		ID:              log.ID,
		InventoryItemID: log.InventoryItemID,
		LogTypeID:       log.InventoryLogTypeID,
		Qty:             log.Qty,
		Price:           log.Price,
		FromInventoryID: log.FromInventoryID,
		ToInventoryID:   log.ToInventoryID,
		IsTransfer:      log.IsTransfer(),
		CreatedAt:       log.CreatedAt,
	}
}

// ToLogTypeResponse converts a domain InventoryLogType to a response
func ToLogTypeResponse(logType *inventory.InventoryLogType) LogTypeResponse {
	return LogTypeResponse{
		ID:   logType.ID,
		Code: logType.Code,
		Name: logType.Name,
	}
}
