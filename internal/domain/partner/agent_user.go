package partner

import (
	"github.com/google/uuid"
	"github.com/marketplace/backend/internal/domain/shared"
)

// AgentUser is a login identity bound to an agent. A main-level user has a
// nil MainUserID and its own agent owns the shared inventory; a sub-user
// points at its main user and never owns inventory itself. The hierarchy is
// exactly two levels deep.
type AgentUser struct {
	shared.BaseEntity
	UserID     uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex"`
	AgentID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	MainUserID *uuid.UUID `gorm:"type:uuid;index"`
}

// TableName returns the table name for GORM
func (AgentUser) TableName() string {
	return "agent_users"
}

// NewAgentUser creates a new main-level agent user
func NewAgentUser(userID, agentID uuid.UUID) (*AgentUser, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "User ID cannot be empty")
	}
	if agentID == uuid.Nil {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Agent ID cannot be empty")
	}

	return &AgentUser{
		BaseEntity: shared.NewBaseEntity(),
		UserID:     userID,
		AgentID:    agentID,
	}, nil
}

// NewSubAgentUser creates an agent user subordinate to a main user
func NewSubAgentUser(userID, agentID, mainUserID uuid.UUID) (*AgentUser, error) {
	au, err := NewAgentUser(userID, agentID)
	if err != nil {
		return nil, err
	}
	if mainUserID == uuid.Nil {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Main user ID cannot be empty")
	}
	au.MainUserID = &mainUserID
	return au, nil
}

// IsMain reports whether this user is a main-level account
func (u *AgentUser) IsMain() bool {
	return u.MainUserID == nil
}
