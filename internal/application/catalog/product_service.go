package catalog

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/marketplace/backend/internal/application/partner"
	"github.com/marketplace/backend/internal/domain/catalog"
	"github.com/marketplace/backend/internal/domain/inventory"
	"github.com/marketplace/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// AgentContextResolver resolves the acting user to its owning agent and
// inventory. This decouples ProductService from the concrete AgentResolver.
type AgentContextResolver interface {
	Resolve(ctx context.Context, userID uuid.UUID) (partner.AgentContext, error)
	ResolveAgentID(ctx context.Context, userID uuid.UUID) (uuid.UUID, error)
}

// ProductService orchestrates the product lifecycle. Every write is one
// transaction spanning the product row, its location, images, inventory
// item and ledger entry, with file-store compensation when the
// transaction aborts.
type ProductService struct {
	txScope      TransactionScope
	productRepo  catalog.ProductRepository
	imageRepo    catalog.ProductImageRepository
	locationRepo catalog.ProductLocationRepository
	itemRepo     inventory.InventoryItemRepository
	guard        *SaleLockGuard
	resolver     AgentContextResolver
	store        FileStore
	logger       *zap.Logger
}

// NewProductService creates a new ProductService
func NewProductService(
	txScope TransactionScope,
	productRepo catalog.ProductRepository,
	imageRepo catalog.ProductImageRepository,
	locationRepo catalog.ProductLocationRepository,
	itemRepo inventory.InventoryItemRepository,
	itemLogRepo inventory.InventoryItemLogRepository,
	resolver AgentContextResolver,
	store FileStore,
	logger *zap.Logger,
) *ProductService {
	return &ProductService{
		txScope:      txScope,
		productRepo:  productRepo,
		imageRepo:    imageRepo,
		locationRepo: locationRepo,
		itemRepo:     itemRepo,
		guard:        NewSaleLockGuard(itemRepo, itemLogRepo),
		resolver:     resolver,
		store:        store,
		logger:       logger,
	}
}

// Create creates a product together with its inventory item, initial
// stock-in ledger entry, location and image rows, atomically. The image
// files were already written to storage by the upload boundary; if the
// transaction fails they are deleted again so storage and database never
// disagree about which images exist.
func (s *ProductService) Create(ctx context.Context, actingUserID uuid.UUID, req CreateProductRequest) (*ProductResponse, error) {
	// Reject before staging anything: a missing primary image must cause
	// zero database writes and zero file compensation.
	if req.Image == "" {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Primary image is required")
	}

	stage := NewFileStage(s.store, s.logger, req.Image)
	stage.Add(req.ExtraImages...)
	defer stage.Cleanup(ctx)

	agentCtx, err := s.resolver.Resolve(ctx, actingUserID)
	if err != nil {
		return nil, err
	}

	var (
		product  *catalog.Product
		item     *inventory.InventoryItem
		location *catalog.ProductLocation
		images   []catalog.ProductImage
	)

	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		if _, err := repos.CategoryRepo().FindByID(ctx, req.CategoryID); err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return shared.NewDomainError("INVALID_REFERENCE", "Category does not exist")
			}
			return err
		}

		product, err = catalog.NewProduct(req.Name, req.Description, req.CategoryID, agentCtx.AgentID, req.Image, req.Published)
		if err != nil {
			return err
		}
		if err := repos.ProductRepo().Save(ctx, product); err != nil {
			return err
		}

		logType, err := repos.LogTypeRepo().FindByCode(ctx, inventory.LogTypeStockIn)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return shared.NewDomainError("INVALID_STATE", "Movement type stock_in is not provisioned")
			}
			return err
		}

		item, err = inventory.NewInventoryItem(agentCtx.InventoryID, product.ID, req.Price, req.Qty)
		if err != nil {
			return err
		}
		if err := repos.ItemRepo().Save(ctx, item); err != nil {
			return err
		}

		// Initial stocking is not a transfer, so both inventory-id
		// fields stay null and the product starts unlocked.
		entry, err := inventory.NewMovement(item.ID, logType.ID, req.Qty, req.Price, nil, nil)
		if err != nil {
			return err
		}
		if err := repos.ItemLogRepo().Append(ctx, entry); err != nil {
			return err
		}

		location, err = catalog.NewProductLocation(product.ID, req.Address, req.CityID)
		if err != nil {
			return err
		}
		if err := repos.LocationRepo().Save(ctx, location); err != nil {
			return err
		}

		if len(req.ExtraImages) > 0 {
			rows := make([]*catalog.ProductImage, 0, len(req.ExtraImages))
			for _, name := range req.ExtraImages {
				img, err := catalog.NewProductImage(product.ID, name)
				if err != nil {
					return err
				}
				rows = append(rows, img)
			}
			if err := repos.ImageRepo().SaveBatch(ctx, rows); err != nil {
				return err
			}
			for _, img := range rows {
				images = append(images, *img)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	stage.Keep()

	response := ToProductResponse(product, images, location, item, false)
	return &response, nil
}

// GetByID retrieves a product with its images, location, stock and derived
// sale-lock state
func (s *ProductService) GetByID(ctx context.Context, productID uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	images, err := s.imageRepo.FindByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	location, err := s.locationRepo.FindByProduct(ctx, productID)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	items, err := s.itemRepo.FindByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	var item *inventory.InventoryItem
	if len(items) > 0 {
		item = &items[0]
	}

	hasSaleLog, err := s.guard.HasSaleLog(ctx, productID)
	if err != nil {
		return nil, err
	}

	response := ToProductResponse(product, images, location, item, hasSaleLog)
	return &response, nil
}

// List retrieves a page of products enriched with stock and sale state
func (s *ProductService) List(ctx context.Context, filter ProductListFilter) ([]ProductListResponse, int64, error) {
	domainFilter := toDomainFilter(filter)

	products, err := s.productRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.productRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses, err := s.enrichList(ctx, products)
	if err != nil {
		return nil, 0, err
	}
	return responses, total, nil
}

// ListOwned retrieves the acting user's own products, scoped to the agent
// resolved through the main-user/sub-user hierarchy
func (s *ProductService) ListOwned(ctx context.Context, actingUserID uuid.UUID, filter ProductListFilter) ([]ProductListResponse, int64, error) {
	agentID, err := s.resolver.ResolveAgentID(ctx, actingUserID)
	if err != nil {
		return nil, 0, err
	}

	domainFilter := toDomainFilter(filter)

	products, err := s.productRepo.FindBySupplier(ctx, agentID, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.productRepo.CountBySupplier(ctx, agentID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses, err := s.enrichList(ctx, products)
	if err != nil {
		return nil, 0, err
	}
	return responses, total, nil
}

// enrichList attaches stock and sale-lock state to a page of products with
// a fixed number of queries regardless of page size: one for the items,
// one for the transfer logs.
func (s *ProductService) enrichList(ctx context.Context, products []catalog.Product) ([]ProductListResponse, error) {
	responses := make([]ProductListResponse, 0, len(products))
	if len(products) == 0 {
		return responses, nil
	}

	productIDs := make([]uuid.UUID, len(products))
	for i := range products {
		productIDs[i] = products[i].ID
	}

	items, err := s.itemRepo.FindByProducts(ctx, productIDs)
	if err != nil {
		return nil, err
	}
	itemsByProduct := make(map[uuid.UUID]*inventory.InventoryItem, len(items))
	for i := range items {
		if _, ok := itemsByProduct[items[i].ProductID]; !ok {
			itemsByProduct[items[i].ProductID] = &items[i]
		}
	}

	saleByProduct, err := s.guard.HasSaleLogBatch(ctx, productIDs)
	if err != nil {
		return nil, err
	}

	for i := range products {
		p := &products[i]
		responses = append(responses, ToProductListResponse(p, itemsByProduct[p.ID], saleByProduct[p.ID]))
	}
	return responses, nil
}

// Update modifies a product's descriptive fields, location, price/quantity
// and images in one transaction. A plain price/qty correction through this
// path does not append a ledger entry; only the dedicated inventory-item
// update does. Sold products are immutable through this path.
func (s *ProductService) Update(ctx context.Context, productID uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	locked, err := s.guard.HasSaleLog(ctx, productID)
	if err != nil {
		return nil, err
	}
	if locked {
		return nil, shared.NewDomainError("PRODUCT_LOCKED", "Product has recorded sales and can no longer be modified")
	}

	removedImageIDs, err := parseRemovedImageIDs(req.RemovedImageIDs)
	if err != nil {
		return nil, err
	}

	stage := NewFileStage(s.store, s.logger)
	if req.NewImage != "" {
		stage.Add(req.NewImage)
	}
	stage.Add(req.NewExtraImages...)
	defer stage.Cleanup(ctx)

	var (
		obsolete []string
		item     *inventory.InventoryItem
		location *catalog.ProductLocation
		images   []catalog.ProductImage
	)

	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		// The pre-transaction check above ran on a snapshot that may be
		// stale by now. Re-verify against the transactional repositories
		// so a transfer committed in between still blocks this write.
		txGuard := NewSaleLockGuard(repos.ItemRepo(), repos.ItemLogRepo())
		locked, err := txGuard.HasSaleLog(ctx, productID)
		if err != nil {
			return err
		}
		if locked {
			return shared.NewDomainError("PRODUCT_LOCKED", "Product has recorded sales and can no longer be modified")
		}

		if _, err := repos.CategoryRepo().FindByID(ctx, req.CategoryID); err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return shared.NewDomainError("INVALID_REFERENCE", "Category does not exist")
			}
			return err
		}

		if req.NewImage != "" {
			old, err := product.ReplaceImage(req.NewImage)
			if err != nil {
				return err
			}
			obsolete = append(obsolete, old)
		}

		if len(removedImageIDs) > 0 {
			rows, err := repos.ImageRepo().FindByIDs(ctx, removedImageIDs)
			if err != nil {
				return err
			}
			for i := range rows {
				obsolete = append(obsolete, rows[i].Image)
			}
			if err := repos.ImageRepo().DeleteByIDs(ctx, removedImageIDs); err != nil {
				return err
			}
		}

		if len(req.NewExtraImages) > 0 {
			rows := make([]*catalog.ProductImage, 0, len(req.NewExtraImages))
			for _, name := range req.NewExtraImages {
				img, err := catalog.NewProductImage(product.ID, name)
				if err != nil {
					return err
				}
				rows = append(rows, img)
			}
			if err := repos.ImageRepo().SaveBatch(ctx, rows); err != nil {
				return err
			}
		}

		if err := product.Update(req.Name, req.Description, req.CategoryID, req.Published); err != nil {
			return err
		}
		if err := repos.ProductRepo().Save(ctx, product); err != nil {
			return err
		}

		location, err = repos.LocationRepo().FindByProduct(ctx, productID)
		if err != nil {
			if !errors.Is(err, shared.ErrNotFound) {
				return err
			}
			location, err = catalog.NewProductLocation(productID, req.Address, req.CityID)
			if err != nil {
				return err
			}
		} else if err := location.Update(req.Address, req.CityID); err != nil {
			return err
		}
		if err := repos.LocationRepo().Save(ctx, location); err != nil {
			return err
		}

		items, err := repos.ItemRepo().FindByProduct(ctx, productID)
		if err != nil {
			return err
		}
		if len(items) > 0 {
			item = &items[0]
			if err := item.Adjust(req.Price, req.Qty); err != nil {
				return err
			}
			if err := repos.ItemRepo().Save(ctx, item); err != nil {
				return err
			}
		}

		images, err = repos.ImageRepo().FindByProduct(ctx, productID)
		return err
	})
	if err != nil {
		return nil, err
	}

	stage.Keep()
	// The replaced primary and the removed secondary images only become
	// deletable once the transaction committed; before that the database
	// still referenced them.
	removeFiles(ctx, s.store, s.logger, obsolete)

	response := ToProductResponse(product, images, location, item, false)
	return &response, nil
}

// Delete removes a product and every dependent row in one transaction,
// children before parents, then deletes its image files from storage.
// Returns the deleted product's prior state. Sold products cannot be
// deleted.
func (s *ProductService) Delete(ctx context.Context, productID uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	images, err := s.imageRepo.FindByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	location, err := s.locationRepo.FindByProduct(ctx, productID)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	items, err := s.itemRepo.FindByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	var item *inventory.InventoryItem
	if len(items) > 0 {
		item = &items[0]
	}

	locked, err := s.guard.HasSaleLog(ctx, productID)
	if err != nil {
		return nil, err
	}
	if locked {
		return nil, shared.NewDomainError("PRODUCT_LOCKED", "Product has recorded sales and cannot be deleted")
	}

	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		txGuard := NewSaleLockGuard(repos.ItemRepo(), repos.ItemLogRepo())
		locked, err := txGuard.HasSaleLog(ctx, productID)
		if err != nil {
			return err
		}
		if locked {
			return shared.NewDomainError("PRODUCT_LOCKED", "Product has recorded sales and cannot be deleted")
		}

		txItems, err := repos.ItemRepo().FindByProduct(ctx, productID)
		if err != nil {
			return err
		}
		if len(txItems) > 0 {
			itemIDs := make([]uuid.UUID, len(txItems))
			for i := range txItems {
				itemIDs[i] = txItems[i].ID
			}
			if err := repos.ItemLogRepo().DeleteByItems(ctx, itemIDs); err != nil {
				return err
			}
		}
		if err := repos.ItemRepo().DeleteByProduct(ctx, productID); err != nil {
			return err
		}
		if err := repos.LocationRepo().DeleteByProduct(ctx, productID); err != nil {
			return err
		}
		if err := repos.SuggestedCategoryRepo().DeleteByProduct(ctx, productID); err != nil {
			return err
		}
		if err := repos.ImageRepo().DeleteByProduct(ctx, productID); err != nil {
			return err
		}
		return repos.ProductRepo().Delete(ctx, productID)
	})
	if err != nil {
		return nil, err
	}

	files := make([]string, 0, len(images)+1)
	files = append(files, product.Image)
	for i := range images {
		files = append(files, images[i].Image)
	}
	removeFiles(ctx, s.store, s.logger, files)

	response := ToProductResponse(product, images, location, item, false)
	return &response, nil
}

// parseRemovedImageIDs decodes the submitted JSON id list. An empty string
// means nothing to remove; anything else must be a valid JSON array of
// uuids.
func parseRemovedImageIDs(raw string) ([]uuid.UUID, error) {
	if raw == "" {
		return nil, nil
	}
	var ids []uuid.UUID
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Removed image id list is not a valid JSON array of ids")
	}
	return ids, nil
}

// toDomainFilter maps the API filter to the shared repository filter
func toDomainFilter(filter ProductListFilter) shared.Filter {
	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	if filter.OrderBy != "" {
		domainFilter.OrderBy = filter.OrderBy
	}
	if filter.OrderDir != "" {
		domainFilter.OrderDir = filter.OrderDir
	}
	domainFilter.Search = filter.Search
	if filter.CategoryID != nil {
		domainFilter.Filters["category_id"] = *filter.CategoryID
	}
	if filter.Published != nil {
		domainFilter.Filters["published"] = *filter.Published
	}
	return domainFilter
}
