package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/marketplace/backend/internal/domain/catalog"
	"github.com/marketplace/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormProductLocationRepository implements ProductLocationRepository using GORM
type GormProductLocationRepository struct {
	db *gorm.DB
}

// NewGormProductLocationRepository creates a new GormProductLocationRepository
func NewGormProductLocationRepository(db *gorm.DB) *GormProductLocationRepository {
	return &GormProductLocationRepository{db: db}
}

// FindByProduct finds the location of a product
func (r *GormProductLocationRepository) FindByProduct(ctx context.Context, productID uuid.UUID) (*catalog.ProductLocation, error) {
	var location catalog.ProductLocation
	if err := r.db.WithContext(ctx).First(&location, "product_id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &location, nil
}

// Save creates or updates a product location
func (r *GormProductLocationRepository) Save(ctx context.Context, location *catalog.ProductLocation) error {
	return r.db.WithContext(ctx).Save(location).Error
}

// DeleteByProduct deletes the location of a product
func (r *GormProductLocationRepository) DeleteByProduct(ctx context.Context, productID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&catalog.ProductLocation{}, "product_id = ?", productID).Error
}
