package inventory

import (
	"github.com/google/uuid"
	"github.com/marketplace/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// InventoryItemLog is an immutable record of a stock movement. Once written,
// log rows are never updated or deleted; corrections are made with new
// entries. A row with either FromInventoryID or ToInventoryID set denotes a
// sale/transfer movement; the pair being null marks a single-inventory
// movement (stock-in, damage, return). This distinction is the sole signal
// the sale-lock guard reads.
type InventoryItemLog struct {
	shared.BaseEntity
	InventoryItemID    uuid.UUID       `gorm:"type:uuid;not null;index:idx_item_logs_item"`
	InventoryLogTypeID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Qty                decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Price              decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	FromInventoryID    *uuid.UUID      `gorm:"type:uuid;index"`
	ToInventoryID      *uuid.UUID      `gorm:"type:uuid;index"`
}

// TableName returns the table name for GORM
func (InventoryItemLog) TableName() string {
	return "inventory_item_logs"
}

// NewMovement creates a new ledger entry for an inventory item
func NewMovement(
	itemID, logTypeID uuid.UUID,
	qty, price decimal.Decimal,
	fromInventoryID, toInventoryID *uuid.UUID,
) (*InventoryItemLog, error) {
	if itemID == uuid.Nil {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Inventory item ID cannot be empty")
	}
	if logTypeID == uuid.Nil {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Movement type ID cannot be empty")
	}
	if qty.IsNegative() {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Quantity cannot be negative")
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Price cannot be negative")
	}

	return &InventoryItemLog{
		BaseEntity:         shared.NewBaseEntity(),
		InventoryItemID:    itemID,
		InventoryLogTypeID: logTypeID,
		Qty:                qty,
		Price:              price,
		FromInventoryID:    fromInventoryID,
		ToInventoryID:      toInventoryID,
	}, nil
}

// IsTransfer reports whether this movement references a source or
// destination inventory, i.e. whether it is a sale/transfer movement
func (l *InventoryItemLog) IsTransfer() bool {
	return l.FromInventoryID != nil || l.ToInventoryID != nil
}
