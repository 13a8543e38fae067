package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/marketplace/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// InventoryItem is the mutable stock record for one product inside one
// inventory: current price and quantity. There is exactly one item per
// product, created in the same transaction as the product itself.
type InventoryItem struct {
	shared.BaseEntity
	InventoryID uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Price       decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Qty         decimal.Decimal `gorm:"type:decimal(18,4);not null"`
}

// TableName returns the table name for GORM
func (InventoryItem) TableName() string {
	return "inventory_items"
}

// NewInventoryItem creates a new inventory item
func NewInventoryItem(inventoryID, productID uuid.UUID, price, qty decimal.Decimal) (*InventoryItem, error) {
	if inventoryID == uuid.Nil {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Inventory ID cannot be empty")
	}
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Product ID cannot be empty")
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Price cannot be negative")
	}
	if qty.IsNegative() {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Quantity cannot be negative")
	}

	return &InventoryItem{
		BaseEntity:  shared.NewBaseEntity(),
		InventoryID: inventoryID,
		ProductID:   productID,
		Price:       price,
		Qty:         qty,
	}, nil
}

// Adjust sets the current price and quantity. Whether the adjustment is
// also a ledger-worthy movement is decided by the caller: product edits
// adjust in place, the dedicated movement path adjusts and appends a log.
func (i *InventoryItem) Adjust(price, qty decimal.Decimal) error {
	if price.IsNegative() {
		return shared.NewDomainError("VALIDATION_FAILED", "Price cannot be negative")
	}
	if qty.IsNegative() {
		return shared.NewDomainError("VALIDATION_FAILED", "Quantity cannot be negative")
	}

	i.Price = price
	i.Qty = qty
	i.UpdatedAt = time.Now()
	return nil
}
