package partner

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/marketplace/backend/internal/domain/partner"
	"github.com/marketplace/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type registrationFixture struct {
	agentRepo     *MockAgentRepository
	userRepo      *MockAgentUserRepository
	inventoryRepo *MockInventoryRepository
	service       *RegistrationService
}

func newRegistrationFixture() *registrationFixture {
	f := &registrationFixture{
		agentRepo:     new(MockAgentRepository),
		userRepo:      new(MockAgentUserRepository),
		inventoryRepo: new(MockInventoryRepository),
	}
	txScope := NewNoOpTransactionScope(f.agentRepo, f.userRepo, f.inventoryRepo)
	f.service = NewRegistrationService(f.userRepo, txScope)
	return f
}

func TestRegistrationService_Register_MainUser(t *testing.T) {
	f := newRegistrationFixture()
	ctx := context.Background()
	req := RegisterAgentRequest{
		UserID:    uuid.New(),
		Name:      "Northwind Supplies",
		AgentType: "supplier",
	}

	f.agentRepo.On("Save", ctx, mock.AnythingOfType("*partner.Agent")).Return(nil)
	f.userRepo.On("Save", ctx, mock.AnythingOfType("*partner.AgentUser")).Return(nil)
	f.inventoryRepo.On("Save", ctx, mock.AnythingOfType("*partner.Inventory")).Return(nil)

	resp, err := f.service.Register(ctx, req)

	assert.NoError(t, err)
	assert.Equal(t, "Northwind Supplies", resp.Agent.Name)
	assert.Equal(t, "supplier", resp.Agent.Type)
	assert.NotEqual(t, uuid.Nil, resp.InventoryID)

	// The created binding is main-level and the inventory belongs to the
	// new agent.
	savedUser := f.userRepo.Calls[0].Arguments.Get(1).(*partner.AgentUser)
	assert.True(t, savedUser.IsMain())
	savedInventory := f.inventoryRepo.Calls[0].Arguments.Get(1).(*partner.Inventory)
	assert.Equal(t, resp.Agent.ID, savedInventory.AgentID)
}

func TestRegistrationService_Register_SubUser(t *testing.T) {
	f := newRegistrationFixture()
	ctx := context.Background()
	mainUser, _ := partner.NewAgentUser(uuid.New(), uuid.New())
	req := RegisterAgentRequest{
		UserID:     uuid.New(),
		Name:       "Branch Office",
		AgentType:  "supplier",
		MainUserID: &mainUser.ID,
	}

	f.userRepo.On("FindByID", ctx, mainUser.ID).Return(mainUser, nil)
	f.agentRepo.On("Save", ctx, mock.AnythingOfType("*partner.Agent")).Return(nil)
	f.userRepo.On("Save", ctx, mock.AnythingOfType("*partner.AgentUser")).Return(nil)
	f.inventoryRepo.On("Save", ctx, mock.AnythingOfType("*partner.Inventory")).Return(nil)

	resp, err := f.service.Register(ctx, req)

	assert.NoError(t, err)
	assert.NotNil(t, resp)

	saveCall := 0
	for i, call := range f.userRepo.Calls {
		if call.Method == "Save" {
			saveCall = i
		}
	}
	savedUser := f.userRepo.Calls[saveCall].Arguments.Get(1).(*partner.AgentUser)
	assert.False(t, savedUser.IsMain())
	assert.Equal(t, mainUser.ID, *savedUser.MainUserID)
}

func TestRegistrationService_Register_UnknownAgentType(t *testing.T) {
	f := newRegistrationFixture()
	ctx := context.Background()
	req := RegisterAgentRequest{
		UserID:    uuid.New(),
		Name:      "Nameless",
		AgentType: "wholesaler",
	}

	resp, err := f.service.Register(ctx, req)

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, shared.ErrInvalidReference)
	f.agentRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestRegistrationService_Register_MainUserMissing(t *testing.T) {
	f := newRegistrationFixture()
	ctx := context.Background()
	mainID := uuid.New()
	req := RegisterAgentRequest{
		UserID:     uuid.New(),
		Name:       "Branch Office",
		AgentType:  "customer",
		MainUserID: &mainID,
	}

	f.userRepo.On("FindByID", ctx, mainID).Return(nil, shared.ErrNotFound)

	resp, err := f.service.Register(ctx, req)

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, shared.ErrInvalidHierarchy)
	f.agentRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestRegistrationService_Register_MainUserIsSubUser(t *testing.T) {
	f := newRegistrationFixture()
	ctx := context.Background()
	grandMain, _ := partner.NewAgentUser(uuid.New(), uuid.New())
	chained, _ := partner.NewSubAgentUser(uuid.New(), uuid.New(), grandMain.ID)
	req := RegisterAgentRequest{
		UserID:     uuid.New(),
		Name:       "Branch Office",
		AgentType:  "customer",
		MainUserID: &chained.ID,
	}

	f.userRepo.On("FindByID", ctx, chained.ID).Return(chained, nil)

	resp, err := f.service.Register(ctx, req)

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, shared.ErrInvalidHierarchy)
	f.agentRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}
