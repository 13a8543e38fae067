package catalog

import (
	"github.com/google/uuid"
	"github.com/marketplace/backend/internal/domain/shared"
)

// Category is a product category reference row. Category management is a
// thin CRUD surface outside this core; the entity exists for foreign keys.
type Category struct {
	shared.BaseEntity
	Name string `gorm:"type:varchar(100);not null;uniqueIndex"`
}

// TableName returns the table name for GORM
func (Category) TableName() string {
	return "categories"
}

// City is a city reference row used by product locations
type City struct {
	shared.BaseEntity
	Name string `gorm:"type:varchar(100);not null"`
}

// TableName returns the table name for GORM
func (City) TableName() string {
	return "cities"
}

// SuggestedCategory is a pending category suggestion raised for a product.
// Rows are removed together with the product they reference.
type SuggestedCategory struct {
	shared.BaseEntity
	ProductID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"type:varchar(100);not null"`
}

// TableName returns the table name for GORM
func (SuggestedCategory) TableName() string {
	return "suggested_categories"
}
