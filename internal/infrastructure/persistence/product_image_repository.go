package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/marketplace/backend/internal/domain/catalog"
	"gorm.io/gorm"
)

// GormProductImageRepository implements ProductImageRepository using GORM
type GormProductImageRepository struct {
	db *gorm.DB
}

// NewGormProductImageRepository creates a new GormProductImageRepository
func NewGormProductImageRepository(db *gorm.DB) *GormProductImageRepository {
	return &GormProductImageRepository{db: db}
}

// FindByProduct finds all secondary images of a product
func (r *GormProductImageRepository) FindByProduct(ctx context.Context, productID uuid.UUID) ([]catalog.ProductImage, error) {
	var images []catalog.ProductImage
	if err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("created_at ASC").
		Find(&images).Error; err != nil {
		return nil, err
	}
	return images, nil
}

// FindByIDs finds secondary images by their ids
func (r *GormProductImageRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]catalog.ProductImage, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var images []catalog.ProductImage
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&images).Error; err != nil {
		return nil, err
	}
	return images, nil
}

// SaveBatch inserts a batch of secondary image rows
func (r *GormProductImageRepository) SaveBatch(ctx context.Context, images []*catalog.ProductImage) error {
	if len(images) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(images).Error
}

// DeleteByIDs deletes secondary images by their ids
func (r *GormProductImageRepository) DeleteByIDs(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Delete(&catalog.ProductImage{}, "id IN ?", ids).Error
}

// DeleteByProduct deletes all secondary images of a product
func (r *GormProductImageRepository) DeleteByProduct(ctx context.Context, productID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&catalog.ProductImage{}, "product_id = ?", productID).Error
}
