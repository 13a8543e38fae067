package inventory

import (
	"testing"

	"github.com/google/uuid"
	"github.com/marketplace/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNewMovement_SingleInventory(t *testing.T) {
	log, err := NewMovement(uuid.New(), uuid.New(), decimal.NewFromInt(5), decimal.NewFromInt(100), nil, nil)

	assert.NoError(t, err)
	assert.False(t, log.IsTransfer())
}

func TestNewMovement_Transfer(t *testing.T) {
	from := uuid.New()
	to := uuid.New()

	log, err := NewMovement(uuid.New(), uuid.New(), decimal.NewFromInt(5), decimal.NewFromInt(100), &from, &to)
	assert.NoError(t, err)
	assert.True(t, log.IsTransfer())

	// Either side alone already marks a transfer.
	log, err = NewMovement(uuid.New(), uuid.New(), decimal.NewFromInt(5), decimal.NewFromInt(100), &from, nil)
	assert.NoError(t, err)
	assert.True(t, log.IsTransfer())

	log, err = NewMovement(uuid.New(), uuid.New(), decimal.NewFromInt(5), decimal.NewFromInt(100), nil, &to)
	assert.NoError(t, err)
	assert.True(t, log.IsTransfer())
}

func TestNewMovement_Validation(t *testing.T) {
	_, err := NewMovement(uuid.Nil, uuid.New(), decimal.NewFromInt(1), decimal.NewFromInt(1), nil, nil)
	assert.ErrorIs(t, err, shared.ErrValidation)

	_, err = NewMovement(uuid.New(), uuid.Nil, decimal.NewFromInt(1), decimal.NewFromInt(1), nil, nil)
	assert.ErrorIs(t, err, shared.ErrValidation)

	_, err = NewMovement(uuid.New(), uuid.New(), decimal.NewFromInt(-1), decimal.NewFromInt(1), nil, nil)
	assert.ErrorIs(t, err, shared.ErrValidation)
}

func TestInventoryItem_Adjust(t *testing.T) {
	item, _ := NewInventoryItem(uuid.New(), uuid.New(), decimal.NewFromInt(100), decimal.NewFromInt(10))

	err := item.Adjust(decimal.NewFromInt(90), decimal.NewFromInt(8))
	assert.NoError(t, err)
	assert.True(t, item.Price.Equal(decimal.NewFromInt(90)))
	assert.True(t, item.Qty.Equal(decimal.NewFromInt(8)))

	err = item.Adjust(decimal.NewFromInt(-1), decimal.NewFromInt(8))
	assert.ErrorIs(t, err, shared.ErrValidation)
}
