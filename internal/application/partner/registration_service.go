package partner

import (
	"context"
	"errors"

	"github.com/marketplace/backend/internal/domain/partner"
	"github.com/marketplace/backend/internal/domain/shared"
)

// RegistrationService creates agents. An agent, its user binding and its
// inventory come into existence in one transaction; an inventory is never
// created standalone.
type RegistrationService struct {
	userRepo partner.AgentUserRepository
	txScope  TransactionScope
}

// NewRegistrationService creates a new RegistrationService
func NewRegistrationService(userRepo partner.AgentUserRepository, txScope TransactionScope) *RegistrationService {
	return &RegistrationService{
		userRepo: userRepo,
		txScope:  txScope,
	}
}

// Register creates an agent together with its agent user and inventory
func (s *RegistrationService) Register(ctx context.Context, req RegisterAgentRequest) (*RegisterAgentResponse, error) {
	agentType := partner.AgentType(req.AgentType)
	if !agentType.IsValid() {
		return nil, shared.NewDomainError("INVALID_REFERENCE", "Unknown agent type")
	}

	// A sub-user must reference an existing main-level user. Checked here
	// for a fast failure and re-read inside the transaction via the same
	// repository to keep the write consistent.
	if req.MainUserID != nil {
		mainUser, err := s.userRepo.FindByID(ctx, *req.MainUserID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, shared.NewDomainError("INVALID_HIERARCHY", "Main agent user does not exist")
			}
			return nil, err
		}
		if !mainUser.IsMain() {
			return nil, shared.NewDomainError("INVALID_HIERARCHY", "Main user is itself a sub-user")
		}
	}

	agent, err := partner.NewAgent(req.Name, agentType)
	if err != nil {
		return nil, err
	}

	var (
		agentUser *partner.AgentUser
		inventory *partner.Inventory
	)

	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		if err := repos.AgentRepo().Save(ctx, agent); err != nil {
			return err
		}

		if req.MainUserID != nil {
			agentUser, err = partner.NewSubAgentUser(req.UserID, agent.ID, *req.MainUserID)
		} else {
			agentUser, err = partner.NewAgentUser(req.UserID, agent.ID)
		}
		if err != nil {
			return err
		}
		if err := repos.AgentUserRepo().Save(ctx, agentUser); err != nil {
			return err
		}

		inventory, err = partner.NewInventory(agent.ID)
		if err != nil {
			return err
		}
		return repos.InventoryRepo().Save(ctx, inventory)
	})
	if err != nil {
		return nil, err
	}

	return &RegisterAgentResponse{
		Agent:       ToAgentResponse(agent),
		AgentUserID: agentUser.ID,
		InventoryID: inventory.ID,
	}, nil
}
