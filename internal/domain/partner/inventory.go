package partner

import (
	"github.com/google/uuid"
	"github.com/marketplace/backend/internal/domain/shared"
)

// Inventory is the single stock container an agent owns. Inventories are
// created only inside the agent registration transaction, never standalone.
type Inventory struct {
	shared.BaseEntity
	AgentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
}

// TableName returns the table name for GORM
func (Inventory) TableName() string {
	return "inventories"
}

// NewInventory creates a new inventory for an agent
func NewInventory(agentID uuid.UUID) (*Inventory, error) {
	if agentID == uuid.Nil {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Agent ID cannot be empty")
	}

	return &Inventory{
		BaseEntity: shared.NewBaseEntity(),
		AgentID:    agentID,
	}, nil
}
