package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/marketplace/backend/internal/application/partner"
	"github.com/marketplace/backend/internal/domain/catalog"
	"github.com/marketplace/backend/internal/domain/inventory"
	"github.com/marketplace/backend/internal/domain/shared"
	"github.com/stretchr/testify/mock"
)

// MockProductRepository is a mock implementation of ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Product, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindBySupplier(ctx context.Context, supplierID uuid.UUID, filter shared.Filter) ([]catalog.Product, error) {
	args := m.Called(ctx, supplierID, filter)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) CountBySupplier(ctx context.Context, supplierID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, supplierID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockProductImageRepository is a mock implementation of ProductImageRepository
type MockProductImageRepository struct {
	mock.Mock
}

func (m *MockProductImageRepository) FindByProduct(ctx context.Context, productID uuid.UUID) ([]catalog.ProductImage, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).([]catalog.ProductImage), args.Error(1)
}

func (m *MockProductImageRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]catalog.ProductImage, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]catalog.ProductImage), args.Error(1)
}

func (m *MockProductImageRepository) SaveBatch(ctx context.Context, images []*catalog.ProductImage) error {
	args := m.Called(ctx, images)
	return args.Error(0)
}

func (m *MockProductImageRepository) DeleteByIDs(ctx context.Context, ids []uuid.UUID) error {
	args := m.Called(ctx, ids)
	return args.Error(0)
}

func (m *MockProductImageRepository) DeleteByProduct(ctx context.Context, productID uuid.UUID) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

// MockProductLocationRepository is a mock implementation of ProductLocationRepository
type MockProductLocationRepository struct {
	mock.Mock
}

func (m *MockProductLocationRepository) FindByProduct(ctx context.Context, productID uuid.UUID) (*catalog.ProductLocation, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.ProductLocation), args.Error(1)
}

func (m *MockProductLocationRepository) Save(ctx context.Context, location *catalog.ProductLocation) error {
	args := m.Called(ctx, location)
	return args.Error(0)
}

func (m *MockProductLocationRepository) DeleteByProduct(ctx context.Context, productID uuid.UUID) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

// MockCategoryRepository is a mock implementation of CategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Category), args.Error(1)
}

// MockSuggestedCategoryRepository is a mock implementation of SuggestedCategoryRepository
type MockSuggestedCategoryRepository struct {
	mock.Mock
}

func (m *MockSuggestedCategoryRepository) DeleteByProduct(ctx context.Context, productID uuid.UUID) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

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

// MockAgentContextResolver is a mock implementation of AgentContextResolver
type MockAgentContextResolver struct {
	mock.Mock
}

func (m *MockAgentContextResolver) Resolve(ctx context.Context, userID uuid.UUID) (partner.AgentContext, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(partner.AgentContext), args.Error(1)
}

func (m *MockAgentContextResolver) ResolveAgentID(ctx context.Context, userID uuid.UUID) (uuid.UUID, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

// MockFileStore is a mock implementation of FileStore
type MockFileStore struct {
	mock.Mock
}

func (m *MockFileStore) Remove(ctx context.Context, filename string) error {
	args := m.Called(ctx, filename)
	return args.Error(0)
}

func (m *MockFileStore) Exists(ctx context.Context, filename string) (bool, error) {
	args := m.Called(ctx, filename)
	return args.Bool(0), args.Error(1)
}
