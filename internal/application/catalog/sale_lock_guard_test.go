package catalog

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/marketplace/backend/internal/domain/inventory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSaleLockGuard_HasSaleLog_NoItems(t *testing.T) {
	itemRepo := new(MockInventoryItemRepository)
	logRepo := new(MockInventoryItemLogRepository)
	guard := NewSaleLockGuard(itemRepo, logRepo)
	productID := uuid.New()

	itemRepo.On("FindByProduct", mock.Anything, productID).Return([]inventory.InventoryItem{}, nil)

	locked, err := guard.HasSaleLog(context.Background(), productID)

	assert.NoError(t, err)
	assert.False(t, locked)
	// A product without items cannot be locked; no log query is needed.
	logRepo.AssertNotCalled(t, "ExistsTransferForItems", mock.Anything, mock.Anything)
}

func TestSaleLockGuard_HasSaleLog_TransferExists(t *testing.T) {
	itemRepo := new(MockInventoryItemRepository)
	logRepo := new(MockInventoryItemLogRepository)
	guard := NewSaleLockGuard(itemRepo, logRepo)
	productID := uuid.New()
	item, _ := inventory.NewInventoryItem(uuid.New(), productID, decimal.NewFromInt(5), decimal.NewFromInt(1))

	itemRepo.On("FindByProduct", mock.Anything, productID).Return([]inventory.InventoryItem{*item}, nil)
	logRepo.On("ExistsTransferForItems", mock.Anything, []uuid.UUID{item.ID}).Return(true, nil)

	locked, err := guard.HasSaleLog(context.Background(), productID)

	assert.NoError(t, err)
	assert.True(t, locked)
}

func TestSaleLockGuard_HasSaleLogBatch(t *testing.T) {
	itemRepo := new(MockInventoryItemRepository)
	logRepo := new(MockInventoryItemLogRepository)
	guard := NewSaleLockGuard(itemRepo, logRepo)

	soldProduct := uuid.New()
	unsoldProduct := uuid.New()
	soldItem, _ := inventory.NewInventoryItem(uuid.New(), soldProduct, decimal.NewFromInt(5), decimal.NewFromInt(1))
	unsoldItem, _ := inventory.NewInventoryItem(uuid.New(), unsoldProduct, decimal.NewFromInt(7), decimal.NewFromInt(2))
	productIDs := []uuid.UUID{soldProduct, unsoldProduct}

	itemRepo.On("FindByProducts", mock.Anything, productIDs).
		Return([]inventory.InventoryItem{*soldItem, *unsoldItem}, nil)
	logRepo.On("FindTransferItemIDs", mock.Anything, []uuid.UUID{soldItem.ID, unsoldItem.ID}).
		Return([]uuid.UUID{soldItem.ID}, nil)

	result, err := guard.HasSaleLogBatch(context.Background(), productIDs)

	assert.NoError(t, err)
	assert.True(t, result[soldProduct])
	assert.False(t, result[unsoldProduct])
	itemRepo.AssertNumberOfCalls(t, "FindByProducts", 1)
	logRepo.AssertNumberOfCalls(t, "FindTransferItemIDs", 1)
}

func TestSaleLockGuard_HasSaleLogBatch_Empty(t *testing.T) {
	itemRepo := new(MockInventoryItemRepository)
	logRepo := new(MockInventoryItemLogRepository)
	guard := NewSaleLockGuard(itemRepo, logRepo)

	result, err := guard.HasSaleLogBatch(context.Background(), nil)

	assert.NoError(t, err)
	assert.Empty(t, result)
	itemRepo.AssertNotCalled(t, "FindByProducts", mock.Anything, mock.Anything)
}
