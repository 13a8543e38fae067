package partner

import (
	"context"

	"github.com/google/uuid"
)

// AgentRepository defines the persistence contract for agents
type AgentRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Agent, error)
	Save(ctx context.Context, agent *Agent) error
}

// AgentUserRepository defines the persistence contract for agent users
type AgentUserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AgentUser, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*AgentUser, error)
	Save(ctx context.Context, user *AgentUser) error
}

// InventoryRepository defines the persistence contract for inventories
type InventoryRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Inventory, error)
	FindByAgent(ctx context.Context, agentID uuid.UUID) (*Inventory, error)
	Save(ctx context.Context, inventory *Inventory) error
}
