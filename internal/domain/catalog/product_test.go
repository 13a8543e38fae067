package catalog

import (
	"testing"

	"github.com/google/uuid"
	"github.com/marketplace/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
)

func TestNewProduct(t *testing.T) {
	categoryID := uuid.New()
	supplierID := uuid.New()

	product, err := NewProduct("Winter Jacket", "Warm", categoryID, supplierID, "primary.jpg", true)

	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, product.ID)
	assert.Equal(t, "Winter Jacket", product.Name)
	assert.Equal(t, supplierID, product.SupplierID)
	assert.True(t, product.Published)
}

func TestNewProduct_Validation(t *testing.T) {
	categoryID := uuid.New()
	supplierID := uuid.New()

	_, err := NewProduct("", "d", categoryID, supplierID, "a.jpg", false)
	assert.ErrorIs(t, err, shared.ErrValidation)

	_, err = NewProduct("Name", "d", uuid.Nil, supplierID, "a.jpg", false)
	assert.ErrorIs(t, err, shared.ErrValidation)

	_, err = NewProduct("Name", "d", categoryID, supplierID, "", false)
	assert.ErrorIs(t, err, shared.ErrValidation)
}

func TestProduct_ReplaceImage(t *testing.T) {
	product, _ := NewProduct("Name", "d", uuid.New(), uuid.New(), "old.jpg", false)

	old, err := product.ReplaceImage("new.jpg")

	assert.NoError(t, err)
	assert.Equal(t, "old.jpg", old)
	assert.Equal(t, "new.jpg", product.Image)

	_, err = product.ReplaceImage("")
	assert.ErrorIs(t, err, shared.ErrValidation)
}

func TestProduct_Update(t *testing.T) {
	product, _ := NewProduct("Name", "d", uuid.New(), uuid.New(), "a.jpg", false)
	newCategory := uuid.New()

	err := product.Update("New Name", "new desc", newCategory, true)

	assert.NoError(t, err)
	assert.Equal(t, "New Name", product.Name)
	assert.Equal(t, newCategory, product.CategoryID)
	assert.True(t, product.Published)

	err = product.Update("", "x", newCategory, true)
	assert.ErrorIs(t, err, shared.ErrValidation)
}
