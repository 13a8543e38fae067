package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/marketplace/backend/internal/domain/catalog"
	"github.com/marketplace/backend/internal/domain/inventory"
	"github.com/shopspring/decimal"
)

// CreateProductRequest represents a request to create a new product.
// Image fields carry the generated filenames the upload boundary has
// already written to storage; the primary image is mandatory.
type CreateProductRequest struct {
	Name        string          `json:"name" binding:"required,min=1,max=200"`
	Description string          `json:"description" binding:"max=2000"`
	CategoryID  uuid.UUID       `json:"category_id" binding:"required"`
	Published   bool            `json:"published"`
	Price       decimal.Decimal `json:"price"`
	Qty         decimal.Decimal `json:"qty"`
	Address     string          `json:"address" binding:"required,min=1,max=255"`
	CityID      uuid.UUID       `json:"city_id" binding:"required"`
	Image       string          `json:"image"`
	ExtraImages []string        `json:"extra_images"`
}

// UpdateProductRequest represents a request to update a product.
// RemovedImageIDs is the raw JSON array of secondary-image ids to drop,
// as submitted by the multipart form; it is parsed by the service so a
// malformed list fails validation instead of being silently ignored.
type UpdateProductRequest struct {
	Name            string          `json:"name" binding:"required,min=1,max=200"`
	Description     string          `json:"description" binding:"max=2000"`
	CategoryID      uuid.UUID       `json:"category_id" binding:"required"`
	Published       bool            `json:"published"`
	Price           decimal.Decimal `json:"price"`
	Qty             decimal.Decimal `json:"qty"`
	Address         string          `json:"address" binding:"required,min=1,max=255"`
	CityID          uuid.UUID       `json:"city_id" binding:"required"`
	NewImage        string          `json:"new_image"`
	NewExtraImages  []string        `json:"new_extra_images"`
	RemovedImageIDs string          `json:"removed_image_ids"`
}

// ProductImageResponse represents a secondary image in API responses
type ProductImageResponse struct {
	ID    uuid.UUID `json:"id"`
	Image string    `json:"image"`
}

// ProductLocationResponse represents a product location in API responses
type ProductLocationResponse struct {
	Address string    `json:"address"`
	CityID  uuid.UUID `json:"city_id"`
}

// ProductResponse represents a full product in API responses
type ProductResponse struct {
	ID          uuid.UUID                `json:"id"`
	Name        string                   `json:"name"`
	Description string                   `json:"description"`
	CategoryID  uuid.UUID                `json:"category_id"`
	SupplierID  uuid.UUID                `json:"supplier_id"`
	Image       string                   `json:"image"`
	Published   bool                     `json:"published"`
	Price       decimal.Decimal          `json:"price"`
	Qty         decimal.Decimal          `json:"qty"`
	Images      []ProductImageResponse   `json:"images"`
	Location    *ProductLocationResponse `json:"location,omitempty"`
	HasSaleLog  bool                     `json:"has_sale_log"`
	CreatedAt   time.Time                `json:"created_at"`
	UpdatedAt   time.Time                `json:"updated_at"`
}

// ProductListResponse represents a list item for products
type ProductListResponse struct {
	ID         uuid.UUID       `json:"id"`
	Name       string          `json:"name"`
	CategoryID uuid.UUID       `json:"category_id"`
	SupplierID uuid.UUID       `json:"supplier_id"`
	Image      string          `json:"image"`
	Published  bool            `json:"published"`
	Price      decimal.Decimal `json:"price"`
	Qty        decimal.Decimal `json:"qty"`
	HasSale    bool            `json:"has_sale"`
	CreatedAt  time.Time       `json:"created_at"`
}

// ProductListFilter represents filter options for product list
type ProductListFilter struct {
	Search     string     `form:"search"`
	CategoryID *uuid.UUID `form:"category_id"`
	Published  *bool      `form:"published"`
	Page       int        `form:"page" binding:"omitempty,min=1"`
	PageSize   int        `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy    string     `form:"order_by"`
	OrderDir   string     `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ToProductResponse converts a domain Product with its associations to
// a ProductResponse
func ToProductResponse(
	p *catalog.Product,
	images []catalog.ProductImage,
	location *catalog.ProductLocation,
	item *inventory.InventoryItem,
	hasSaleLog bool,
) ProductResponse {
	resp := ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		CategoryID:  p.CategoryID,
		SupplierID:  p.SupplierID,
		Image:       p.Image,
		Published:   p.Published,
		Images:      make([]ProductImageResponse, 0, len(images)),
		HasSaleLog:  hasSaleLog,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	for i := range images {
		resp.Images = append(resp.Images, ProductImageResponse{
			ID:    images[i].ID,
			Image: images[i].Image,
		})
	}
	if location != nil {
		resp.Location = &ProductLocationResponse{
			Address: location.Address,
			CityID:  location.CityID,
		}
	}
	if item != nil {
		resp.Price = item.Price
		resp.Qty = item.Qty
	}
	return resp
}

// ToProductListResponse converts a domain Product to ProductListResponse
func ToProductListResponse(p *catalog.Product, item *inventory.InventoryItem, hasSale bool) ProductListResponse {
	resp := ProductListResponse{
		ID:         p.ID,
		Name:       p.Name,
		CategoryID: p.CategoryID,
		SupplierID: p.SupplierID,
		Image:      p.Image,
		Published:  p.Published,
		HasSale:    hasSale,
		CreatedAt:  p.CreatedAt,
	}
	if item != nil {
		resp.Price = item.Price
		resp.Qty = item.Qty
	}
	return resp
}
