package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/marketplace/backend/internal/domain/inventory"
	"github.com/marketplace/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormInventoryLogTypeRepository implements InventoryLogTypeRepository using GORM
type GormInventoryLogTypeRepository struct {
	db *gorm.DB
}

// NewGormInventoryLogTypeRepository creates a new GormInventoryLogTypeRepository
func NewGormInventoryLogTypeRepository(db *gorm.DB) *GormInventoryLogTypeRepository {
	return &GormInventoryLogTypeRepository{db: db}
}

// FindByID finds a movement type by its ID
func (r *GormInventoryLogTypeRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.InventoryLogType, error) {
	var logType inventory.InventoryLogType
	if err := r.db.WithContext(ctx).First(&logType, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &logType, nil
}

// FindByCode finds a movement type by its code
func (r *GormInventoryLogTypeRepository) FindByCode(ctx context.Context, code string) (*inventory.InventoryLogType, error) {
	var logType inventory.InventoryLogType
	if err := r.db.WithContext(ctx).First(&logType, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &logType, nil
}

// FindAll finds movement types, optionally restricted to the given codes
func (r *GormInventoryLogTypeRepository) FindAll(ctx context.Context, codes []string) ([]inventory.InventoryLogType, error) {
	var types []inventory.InventoryLogType
	query := r.db.WithContext(ctx).Order("code ASC")
	if len(codes) > 0 {
		query = query.Where("code IN ?", codes)
	}
	if err := query.Find(&types).Error; err != nil {
		return nil, err
	}
	return types, nil
}
