package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/marketplace/backend/internal/domain/partner"
	"github.com/marketplace/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormAgentRepository implements AgentRepository using GORM
type GormAgentRepository struct {
	db *gorm.DB
}

// NewGormAgentRepository creates a new GormAgentRepository
func NewGormAgentRepository(db *gorm.DB) *GormAgentRepository {
	return &GormAgentRepository{db: db}
}

// FindByID finds an agent by its ID
func (r *GormAgentRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Agent, error) {
	var agent partner.Agent
	if err := r.db.WithContext(ctx).First(&agent, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &agent, nil
}

// Save creates or updates an agent
func (r *GormAgentRepository) Save(ctx context.Context, agent *partner.Agent) error {
	return r.db.WithContext(ctx).Save(agent).Error
}

// GormAgentUserRepository implements AgentUserRepository using GORM
type GormAgentUserRepository struct {
	db *gorm.DB
}

// NewGormAgentUserRepository creates a new GormAgentUserRepository
func NewGormAgentUserRepository(db *gorm.DB) *GormAgentUserRepository {
	return &GormAgentUserRepository{db: db}
}

// FindByID finds an agent user by its ID
func (r *GormAgentUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.AgentUser, error) {
	var user partner.AgentUser
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// FindByUserID finds the agent user bound to a login identity
func (r *GormAgentUserRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*partner.AgentUser, error) {
	var user partner.AgentUser
	if err := r.db.WithContext(ctx).First(&user, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// Save creates or updates an agent user
func (r *GormAgentUserRepository) Save(ctx context.Context, user *partner.AgentUser) error {
	return r.db.WithContext(ctx).Save(user).Error
}

// GormInventoryRepository implements InventoryRepository using GORM
type GormInventoryRepository struct {
	db *gorm.DB
}

// NewGormInventoryRepository creates a new GormInventoryRepository
func NewGormInventoryRepository(db *gorm.DB) *GormInventoryRepository {
	return &GormInventoryRepository{db: db}
}

// FindByID finds an inventory by its ID
func (r *GormInventoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Inventory, error) {
	var inv partner.Inventory
	if err := r.db.WithContext(ctx).First(&inv, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &inv, nil
}

// FindByAgent finds the inventory owned by an agent
func (r *GormInventoryRepository) FindByAgent(ctx context.Context, agentID uuid.UUID) (*partner.Inventory, error) {
	var inv partner.Inventory
	if err := r.db.WithContext(ctx).First(&inv, "agent_id = ?", agentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &inv, nil
}

// Save creates or updates an inventory
func (r *GormInventoryRepository) Save(ctx context.Context, inventory *partner.Inventory) error {
	return r.db.WithContext(ctx).Save(inventory).Error
}
