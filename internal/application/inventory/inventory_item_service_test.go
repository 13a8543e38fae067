package inventory

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/marketplace/backend/internal/domain/inventory"
	"github.com/marketplace/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// MockInventoryItemRepository is a mock implementation of InventoryItemRepository
type MockInventoryItemRepository struct {
	mock.Mock
}

func (m *MockInventoryItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.InventoryItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.InventoryItem), args.Error(1)
}

func (m *MockInventoryItemRepository) FindByProduct(ctx context.Context, productID uuid.UUID) ([]inventory.InventoryItem, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).([]inventory.InventoryItem), args.Error(1)
}

func (m *MockInventoryItemRepository) FindByProducts(ctx context.Context, productIDs []uuid.UUID) ([]inventory.InventoryItem, error) {
	args := m.Called(ctx, productIDs)
	return args.Get(0).([]inventory.InventoryItem), args.Error(1)
}

func (m *MockInventoryItemRepository) Save(ctx context.Context, item *inventory.InventoryItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockInventoryItemRepository) DeleteByProduct(ctx context.Context, productID uuid.UUID) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

// MockInventoryItemLogRepository is a mock implementation of InventoryItemLogRepository
type MockInventoryItemLogRepository struct {
	mock.Mock
}

func (m *MockInventoryItemLogRepository) Append(ctx context.Context, log *inventory.InventoryItemLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *MockInventoryItemLogRepository) ExistsTransferForItems(ctx context.Context, itemIDs []uuid.UUID) (bool, error) {
	args := m.Called(ctx, itemIDs)
	return args.Bool(0), args.Error(1)
}

func (m *MockInventoryItemLogRepository) FindTransferItemIDs(ctx context.Context, itemIDs []uuid.UUID) ([]uuid.UUID, error) {
	args := m.Called(ctx, itemIDs)
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

func (m *MockInventoryItemLogRepository) DeleteByItems(ctx context.Context, itemIDs []uuid.UUID) error {
	args := m.Called(ctx, itemIDs)
	return args.Error(0)
}

// MockInventoryLogTypeRepository is a mock implementation of InventoryLogTypeRepository
type MockInventoryLogTypeRepository struct {
	mock.Mock
}

func (m *MockInventoryLogTypeRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.InventoryLogType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.InventoryLogType), args.Error(1)
}

func (m *MockInventoryLogTypeRepository) FindByCode(ctx context.Context, code string) (*inventory.InventoryLogType, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.InventoryLogType), args.Error(1)
}

func (m *MockInventoryLogTypeRepository) FindAll(ctx context.Context, codes []string) ([]inventory.InventoryLogType, error) {
	args := m.Called(ctx, codes)
	return args.Get(0).([]inventory.InventoryLogType), args.Error(1)
}

type itemServiceFixture struct {
	itemRepo    *MockInventoryItemRepository
	itemLogRepo *MockInventoryItemLogRepository
	logTypeRepo *MockInventoryLogTypeRepository
	service     *InventoryItemService
}

func newItemServiceFixture() *itemServiceFixture {
	f := &itemServiceFixture{
		itemRepo:    new(MockInventoryItemRepository),
		itemLogRepo: new(MockInventoryItemLogRepository),
		logTypeRepo: new(MockInventoryLogTypeRepository),
	}
	txScope := &NoOpTransactionScope{
		Items:    f.itemRepo,
		ItemLogs: f.itemLogRepo,
		LogTypes: f.logTypeRepo,
	}
	f.service = NewInventoryItemService(txScope, f.itemRepo, zap.NewNop())
	return f
}

func TestInventoryItemService_Update_AppendsLedgerEntry(t *testing.T) {
	f := newItemServiceFixture()
	ctx := context.Background()
	item, _ := inventory.NewInventoryItem(uuid.New(), uuid.New(), decimal.NewFromInt(100), decimal.NewFromInt(10))
	logType, _ := inventory.NewInventoryLogType(inventory.LogTypeDamage, "Damage")
	price := decimal.NewFromInt(90)
	qty := decimal.NewFromInt(8)
	req := UpdateInventoryItemRequest{LogTypeID: logType.ID, Price: &price, Qty: &qty}

	f.itemRepo.On("FindByID", ctx, item.ID).Return(item, nil)
	f.logTypeRepo.On("FindByID", ctx, logType.ID).Return(logType, nil)
	f.itemRepo.On("Save", ctx, item).Return(nil)
	f.itemLogRepo.On("Append", ctx, mock.AnythingOfType("*inventory.InventoryItemLog")).Return(nil)

	resp, err := f.service.Update(ctx, item.ID, req)

	assert.NoError(t, err)
	assert.True(t, resp.Item.Price.Equal(price))
	assert.True(t, resp.Item.Qty.Equal(qty))
	assert.False(t, resp.Movement.IsTransfer)

	appended := f.itemLogRepo.Calls[0].Arguments.Get(1).(*inventory.InventoryItemLog)
	assert.Equal(t, item.ID, appended.InventoryItemID)
	assert.Equal(t, logType.ID, appended.InventoryLogTypeID)
	assert.True(t, appended.Price.Equal(price))
	assert.True(t, appended.Qty.Equal(qty))
}

func TestInventoryItemService_Update_TransferCarriesInventories(t *testing.T) {
	f := newItemServiceFixture()
	ctx := context.Background()
	item, _ := inventory.NewInventoryItem(uuid.New(), uuid.New(), decimal.NewFromInt(100), decimal.NewFromInt(10))
	logType, _ := inventory.NewInventoryLogType(inventory.LogTypeTransfer, "Transfer")
	from := uuid.New()
	to := uuid.New()
	req := UpdateInventoryItemRequest{LogTypeID: logType.ID, FromInventoryID: &from, ToInventoryID: &to}

	f.itemRepo.On("FindByID", ctx, item.ID).Return(item, nil)
	f.logTypeRepo.On("FindByID", ctx, logType.ID).Return(logType, nil)
	f.itemRepo.On("Save", ctx, item).Return(nil)
	f.itemLogRepo.On("Append", ctx, mock.AnythingOfType("*inventory.InventoryItemLog")).Return(nil)

	resp, err := f.service.Update(ctx, item.ID, req)

	assert.NoError(t, err)
	assert.True(t, resp.Movement.IsTransfer)
	// Omitted price/qty fall back to the item's current values.
	assert.True(t, resp.Movement.Price.Equal(decimal.NewFromInt(100)))
	assert.True(t, resp.Movement.Qty.Equal(decimal.NewFromInt(10)))
	assert.Equal(t, &from, resp.Movement.FromInventoryID)
	assert.Equal(t, &to, resp.Movement.ToInventoryID)
}

func TestInventoryItemService_Update_ItemNotFound(t *testing.T) {
	f := newItemServiceFixture()
	ctx := context.Background()
	itemID := uuid.New()

	f.itemRepo.On("FindByID", ctx, itemID).Return(nil, shared.ErrNotFound)

	resp, err := f.service.Update(ctx, itemID, UpdateInventoryItemRequest{LogTypeID: uuid.New()})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, shared.ErrNotFound)
	f.itemRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestInventoryItemService_Update_UnknownLogType(t *testing.T) {
	f := newItemServiceFixture()
	ctx := context.Background()
	item, _ := inventory.NewInventoryItem(uuid.New(), uuid.New(), decimal.NewFromInt(100), decimal.NewFromInt(10))
	logTypeID := uuid.New()

	f.itemRepo.On("FindByID", ctx, item.ID).Return(item, nil)
	f.logTypeRepo.On("FindByID", ctx, logTypeID).Return(nil, shared.ErrNotFound)

	resp, err := f.service.Update(ctx, item.ID, UpdateInventoryItemRequest{LogTypeID: logTypeID})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, shared.ErrInvalidReference)
	f.itemRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	f.itemLogRepo.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}
