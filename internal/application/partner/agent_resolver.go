package partner

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/marketplace/backend/internal/domain/partner"
	"github.com/marketplace/backend/internal/domain/shared"
)

// AgentContext identifies the agent and inventory an acting user writes
// into. It is resolved once per request and threaded explicitly into every
// write operation instead of being looked up ad hoc.
type AgentContext struct {
	AgentID     uuid.UUID
	InventoryID uuid.UUID
}

// AgentResolver maps an authenticated user to the single inventory-owning
// agent, following the main-user/sub-user indirection. The hierarchy is
// exactly two levels deep; a sub-user chained to another sub-user is a
// data-integrity error, never silently resolved.
type AgentResolver struct {
	userRepo      partner.AgentUserRepository
	inventoryRepo partner.InventoryRepository
}

// NewAgentResolver creates a new AgentResolver
func NewAgentResolver(userRepo partner.AgentUserRepository, inventoryRepo partner.InventoryRepository) *AgentResolver {
	return &AgentResolver{
		userRepo:      userRepo,
		inventoryRepo: inventoryRepo,
	}
}

// Resolve returns the agent context for the acting user
func (r *AgentResolver) Resolve(ctx context.Context, userID uuid.UUID) (AgentContext, error) {
	agentID, err := r.ResolveAgentID(ctx, userID)
	if err != nil {
		return AgentContext{}, err
	}

	inventory, err := r.inventoryRepo.FindByAgent(ctx, agentID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return AgentContext{}, shared.NewDomainError("INVALID_STATE", "Agent has no inventory")
		}
		return AgentContext{}, err
	}

	return AgentContext{AgentID: agentID, InventoryID: inventory.ID}, nil
}

// ResolveAgentID returns only the owning agent id for the acting user
func (r *AgentResolver) ResolveAgentID(ctx context.Context, userID uuid.UUID) (uuid.UUID, error) {
	agentUser, err := r.userRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return uuid.Nil, shared.NewDomainError("NOT_FOUND", "No agent account for this user")
		}
		return uuid.Nil, err
	}

	if agentUser.IsMain() {
		return agentUser.AgentID, nil
	}

	mainUser, err := r.userRepo.FindByID(ctx, *agentUser.MainUserID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return uuid.Nil, shared.NewDomainError("INVALID_HIERARCHY", "Main agent user does not exist")
		}
		return uuid.Nil, err
	}

	// One hop only: a main user must itself be main-level.
	if !mainUser.IsMain() {
		return uuid.Nil, shared.NewDomainError("INVALID_HIERARCHY", "Main user is itself a sub-user")
	}

	return mainUser.AgentID, nil
}
