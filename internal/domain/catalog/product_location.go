package catalog

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/marketplace/backend/internal/domain/shared"
)

// ProductLocation is the single pickup location of a product (address + city)
type ProductLocation struct {
	shared.BaseEntity
	ProductID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Address   string    `gorm:"type:varchar(255);not null"`
	CityID    uuid.UUID `gorm:"type:uuid;not null;index"`
}

// TableName returns the table name for GORM
func (ProductLocation) TableName() string {
	return "product_locations"
}

// NewProductLocation creates a new product location
func NewProductLocation(productID uuid.UUID, address string, cityID uuid.UUID) (*ProductLocation, error) {
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Product ID cannot be empty")
	}
	if strings.TrimSpace(address) == "" {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Address cannot be empty")
	}
	if cityID == uuid.Nil {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "City ID cannot be empty")
	}

	return &ProductLocation{
		BaseEntity: shared.NewBaseEntity(),
		ProductID:  productID,
		Address:    address,
		CityID:     cityID,
	}, nil
}

// Update changes the location's address and city
func (l *ProductLocation) Update(address string, cityID uuid.UUID) error {
	if strings.TrimSpace(address) == "" {
		return shared.NewDomainError("VALIDATION_FAILED", "Address cannot be empty")
	}
	if cityID == uuid.Nil {
		return shared.NewDomainError("VALIDATION_FAILED", "City ID cannot be empty")
	}

	l.Address = address
	l.CityID = cityID
	l.UpdatedAt = time.Now()
	return nil
}
