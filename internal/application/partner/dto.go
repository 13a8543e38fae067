package partner

import (
	"time"

	"github.com/google/uuid"
	"github.com/marketplace/backend/internal/domain/partner"
)

// RegisterAgentRequest is the input for agent registration. Credentials and
// session issuance are handled by the boundary layer; this core only binds
// the already-created user identity to a new or existing agent hierarchy.
type RegisterAgentRequest struct {
	UserID     uuid.UUID
	Name       string
	AgentType  string
	MainUserID *uuid.UUID
}

// AgentResponse is the outward representation of an agent
type AgentResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}

// RegisterAgentResponse carries the created agent, its user binding and
// the inventory created alongside
type RegisterAgentResponse struct {
	Agent       AgentResponse `json:"agent"`
	AgentUserID uuid.UUID     `json:"agent_user_id"`
	InventoryID uuid.UUID     `json:"inventory_id"`
}

// ToAgentResponse converts a domain agent to its response form
func ToAgentResponse(a *partner.Agent) AgentResponse {
	return AgentResponse{
		ID:        a.ID,
		Name:      a.Name,
		Type:      a.Type.String(),
		CreatedAt: a.CreatedAt,
	}
}
