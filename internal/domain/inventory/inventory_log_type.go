package inventory

import (
	"github.com/marketplace/backend/internal/domain/shared"
)

// Well-known movement type codes. The reference table is seeded with these;
// a missing code is a provisioning bug, not user error.
const (
	LogTypeStockIn  = "stock_in"
	LogTypeDamage   = "damage"
	LogTypeReturn   = "return"
	LogTypeTransfer = "transfer"
)

// InventoryLogType is a movement-type reference row. Log entries reference
// a type by id; the id is validated to exist before a movement is written.
type InventoryLogType struct {
	shared.BaseEntity
	Code string `gorm:"type:varchar(50);not null;uniqueIndex"`
	Name string `gorm:"type:varchar(100);not null"`
}

// TableName returns the table name for GORM
func (InventoryLogType) TableName() string {
	return "inventory_log_types"
}

// NewInventoryLogType creates a new movement type reference row
func NewInventoryLogType(code, name string) (*InventoryLogType, error) {
	if code == "" {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Movement type code cannot be empty")
	}
	if name == "" {
		name = code
	}

	return &InventoryLogType{
		BaseEntity: shared.NewBaseEntity(),
		Code:       code,
		Name:       name,
	}, nil
}
