package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/marketplace/backend/internal/domain/shared"
)

// ProductRepository defines the persistence contract for products
type ProductRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Product, error)
	FindBySupplier(ctx context.Context, supplierID uuid.UUID, filter shared.Filter) ([]Product, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	CountBySupplier(ctx context.Context, supplierID uuid.UUID, filter shared.Filter) (int64, error)
	Save(ctx context.Context, product *Product) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ProductImageRepository defines the persistence contract for secondary images
type ProductImageRepository interface {
	FindByProduct(ctx context.Context, productID uuid.UUID) ([]ProductImage, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]ProductImage, error)
	SaveBatch(ctx context.Context, images []*ProductImage) error
	DeleteByIDs(ctx context.Context, ids []uuid.UUID) error
	DeleteByProduct(ctx context.Context, productID uuid.UUID) error
}

// ProductLocationRepository defines the persistence contract for locations
type ProductLocationRepository interface {
	FindByProduct(ctx context.Context, productID uuid.UUID) (*ProductLocation, error)
	Save(ctx context.Context, location *ProductLocation) error
	DeleteByProduct(ctx context.Context, productID uuid.UUID) error
}

// CategoryRepository defines the persistence contract for categories
type CategoryRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Category, error)
}

// SuggestedCategoryRepository defines the persistence contract for
// pending category suggestions
type SuggestedCategoryRepository interface {
	DeleteByProduct(ctx context.Context, productID uuid.UUID) error
}
