package partner

import (
	"context"

	"github.com/google/uuid"
	"github.com/marketplace/backend/internal/domain/partner"
	"github.com/stretchr/testify/mock"
)

// MockAgentRepository is a mock implementation of AgentRepository
type MockAgentRepository struct {
	mock.Mock
}

func (m *MockAgentRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Agent, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Agent), args.Error(1)
}

func (m *MockAgentRepository) Save(ctx context.Context, agent *partner.Agent) error {
	args := m.Called(ctx, agent)
	return args.Error(0)
}

// MockAgentUserRepository is a mock implementation of AgentUserRepository
type MockAgentUserRepository struct {
	mock.Mock
}

func (m *MockAgentUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.AgentUser, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.AgentUser), args.Error(1)
}

func (m *MockAgentUserRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*partner.AgentUser, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.AgentUser), args.Error(1)
}

func (m *MockAgentUserRepository) Save(ctx context.Context, user *partner.AgentUser) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// MockInventoryRepository is a mock implementation of InventoryRepository
type MockInventoryRepository struct {
	mock.Mock
}

func (m *MockInventoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Inventory, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Inventory), args.Error(1)
}

func (m *MockInventoryRepository) FindByAgent(ctx context.Context, agentID uuid.UUID) (*partner.Inventory, error) {
	args := m.Called(ctx, agentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Inventory), args.Error(1)
}

func (m *MockInventoryRepository) Save(ctx context.Context, inventory *partner.Inventory) error {
	args := m.Called(ctx, inventory)
	return args.Error(0)
}
