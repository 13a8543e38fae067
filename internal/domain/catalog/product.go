package catalog

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/marketplace/backend/internal/domain/shared"
)

// Product represents a listed marketplace product, owned by a supplying
// agent. A product is created only together with its inventory item,
// location and initial stock-in ledger entry, in a single transaction.
//
// A product has no stored "locked" flag: it is considered locked the moment
// any of its inventory items carries a transfer movement in the ledger. That
// state is always derived from inventory_item_logs, never cached here.
type Product struct {
	shared.BaseEntity
	Name        string    `gorm:"type:varchar(200);not null"`
	Description string    `gorm:"type:text;not null"`
	CategoryID  uuid.UUID `gorm:"type:uuid;not null;index"`
	SupplierID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Image       string    `gorm:"type:varchar(255);not null"` // primary image filename
	Published   bool      `gorm:"not null;default:false"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product
func NewProduct(name, description string, categoryID, supplierID uuid.UUID, image string, published bool) (*Product, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Product name cannot be empty")
	}
	if categoryID == uuid.Nil {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Category ID cannot be empty")
	}
	if supplierID == uuid.Nil {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Supplier ID cannot be empty")
	}
	if image == "" {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Primary image is required")
	}

	return &Product{
		BaseEntity:  shared.NewBaseEntity(),
		Name:        name,
		Description: description,
		CategoryID:  categoryID,
		SupplierID:  supplierID,
		Image:       image,
		Published:   published,
	}, nil
}

// Update changes the product's descriptive fields
func (p *Product) Update(name, description string, categoryID uuid.UUID, published bool) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("VALIDATION_FAILED", "Product name cannot be empty")
	}
	if categoryID == uuid.Nil {
		return shared.NewDomainError("VALIDATION_FAILED", "Category ID cannot be empty")
	}

	p.Name = name
	p.Description = description
	p.CategoryID = categoryID
	p.Published = published
	p.UpdatedAt = time.Now()
	return nil
}

// ReplaceImage swaps the primary image, returning the previous filename
func (p *Product) ReplaceImage(filename string) (string, error) {
	if filename == "" {
		return "", shared.NewDomainError("VALIDATION_FAILED", "Primary image filename cannot be empty")
	}
	old := p.Image
	p.Image = filename
	p.UpdatedAt = time.Now()
	return old, nil
}
