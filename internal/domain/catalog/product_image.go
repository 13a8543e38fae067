package catalog

import (
	"github.com/google/uuid"
	"github.com/marketplace/backend/internal/domain/shared"
)

// ProductImage is a secondary (gallery) image attached to a product. Image
// bytes live in file storage; this row only records the generated filename.
type ProductImage struct {
	shared.BaseEntity
	ProductID uuid.UUID `gorm:"type:uuid;not null;index"`
	Image     string    `gorm:"type:varchar(255);not null"`
}

// TableName returns the table name for GORM
func (ProductImage) TableName() string {
	return "product_images"
}

// NewProductImage creates a new secondary image row
func NewProductImage(productID uuid.UUID, filename string) (*ProductImage, error) {
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Product ID cannot be empty")
	}
	if filename == "" {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Image filename cannot be empty")
	}

	return &ProductImage{
		BaseEntity: shared.NewBaseEntity(),
		ProductID:  productID,
		Image:      filename,
	}, nil
}
