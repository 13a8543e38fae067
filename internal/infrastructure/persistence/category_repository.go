package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/marketplace/backend/internal/domain/catalog"
	"github.com/marketplace/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormCategoryRepository implements CategoryRepository using GORM
type GormCategoryRepository struct {
	db *gorm.DB
}

// NewGormCategoryRepository creates a new GormCategoryRepository
func NewGormCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

// FindByID finds a category by its ID
func (r *GormCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Category, error) {
	var category catalog.Category
	if err := r.db.WithContext(ctx).First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &category, nil
}

// GormSuggestedCategoryRepository implements SuggestedCategoryRepository using GORM
type GormSuggestedCategoryRepository struct {
	db *gorm.DB
}

// NewGormSuggestedCategoryRepository creates a new GormSuggestedCategoryRepository
func NewGormSuggestedCategoryRepository(db *gorm.DB) *GormSuggestedCategoryRepository {
	return &GormSuggestedCategoryRepository{db: db}
}

// DeleteByProduct deletes all pending category suggestions of a product
func (r *GormSuggestedCategoryRepository) DeleteByProduct(ctx context.Context, productID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&catalog.SuggestedCategory{}, "product_id = ?", productID).Error
}
