package partner

import (
	"strings"

	"github.com/marketplace/backend/internal/domain/shared"
)

// AgentType classifies an agent's role in the marketplace
type AgentType string

const (
	AgentTypeSupplier AgentType = "supplier"
	AgentTypeCustomer AgentType = "customer"
)

// String returns the string representation of AgentType
func (t AgentType) String() string {
	return string(t)
}

// IsValid returns true if the agent type is valid
func (t AgentType) IsValid() bool {
	switch t {
	case AgentTypeSupplier, AgentTypeCustomer:
		return true
	}
	return false
}

// Agent represents an economic actor (supplier or customer) in the marketplace.
// Every agent owns exactly one inventory, created in the same transaction as
// the agent itself.
type Agent struct {
	shared.BaseEntity
	Name string    `gorm:"type:varchar(200);not null"`
	Type AgentType `gorm:"type:varchar(20);not null;index"`
}

// TableName returns the table name for GORM
func (Agent) TableName() string {
	return "agents"
}

// NewAgent creates a new agent
func NewAgent(name string, agentType AgentType) (*Agent, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Agent name cannot be empty")
	}
	if !agentType.IsValid() {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Invalid agent type")
	}

	return &Agent{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Type:       agentType,
	}, nil
}
