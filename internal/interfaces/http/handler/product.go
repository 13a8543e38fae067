package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	catalogapp "github.com/marketplace/backend/internal/application/catalog"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ProductStore is the storage surface the product handler needs: saving
// fresh uploads and removing them again when binding fails after some
// files were already written.
type ProductStore interface {
	FileSaver
	catalogapp.FileStore
}

// ProductHandler handles product lifecycle endpoints
type ProductHandler struct {
	BaseHandler
	productService *catalogapp.ProductService
	store          ProductStore
	logger         *zap.Logger
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(productService *catalogapp.ProductService, store ProductStore, logger *zap.Logger) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		store:          store,
		logger:         logger,
	}
}

// productForm carries the non-file fields of the multipart product forms
type productForm struct {
	Name            string  `form:"name" binding:"required,min=1,max=200"`
	Description     string  `form:"description" binding:"max=2000"`
	CategoryID      string  `form:"category_id" binding:"required,uuid"`
	Published       bool    `form:"published"`
	Price           float64 `form:"price" binding:"gte=0"`
	Qty             float64 `form:"qty" binding:"gte=0"`
	Address         string  `form:"address" binding:"required,min=1,max=255"`
	CityID          string  `form:"city_id" binding:"required,uuid"`
	RemovedImageIDs string  `form:"removed_image_ids"`
}

// Create handles POST /products (multipart)
func (h *ProductHandler) Create(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var form productForm
	if err := c.ShouldBind(&form); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	ctx := c.Request.Context()

	var saved []string
	image, err := c.FormFile("image")
	if err != nil {
		h.BadRequest(c, "Primary image file is required")
		return
	}
	imageName, err := saveUpload(ctx, h.store, image)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	saved = append(saved, imageName)

	extraNames, err := h.saveExtraImages(c, "extra_images", &saved)
	if err != nil {
		h.discardUploads(c, saved)
		h.BadRequest(c, err.Error())
		return
	}

	req := catalogapp.CreateProductRequest{
		Name:        form.Name,
		Description: form.Description,
		CategoryID:  uuid.MustParse(form.CategoryID),
		Published:   form.Published,
		Price:       decimal.NewFromFloat(form.Price),
		Qty:         decimal.NewFromFloat(form.Qty),
		Address:     form.Address,
		CityID:      uuid.MustParse(form.CityID),
		Image:       imageName,
		ExtraImages: extraNames,
	}

	resp, err := h.productService.Create(ctx, userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// GetByID handles GET /products/:id
func (h *ProductHandler) GetByID(c *gin.Context) {
	productID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid product id")
		return
	}

	resp, err := h.productService.GetByID(c.Request.Context(), productID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// List handles GET /products
func (h *ProductHandler) List(c *gin.Context) {
	var filter catalogapp.ProductListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	items, total, err := h.productService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, items, total, pageOf(filter), pageSizeOf(filter))
}

// ListOwned handles GET /products/mine
func (h *ProductHandler) ListOwned(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var filter catalogapp.ProductListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	items, total, err := h.productService.ListOwned(c.Request.Context(), userID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, items, total, pageOf(filter), pageSizeOf(filter))
}

// Update handles PUT /products/:id (multipart)
func (h *ProductHandler) Update(c *gin.Context) {
	productID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid product id")
		return
	}

	var form productForm
	if err := c.ShouldBind(&form); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	ctx := c.Request.Context()

	var saved []string
	newImageName := ""
	if fh, err := c.FormFile("new_image"); err == nil {
		newImageName, err = saveUpload(ctx, h.store, fh)
		if err != nil {
			h.BadRequest(c, err.Error())
			return
		}
		saved = append(saved, newImageName)
	}

	newExtraNames, err := h.saveExtraImages(c, "new_extra_images", &saved)
	if err != nil {
		h.discardUploads(c, saved)
		h.BadRequest(c, err.Error())
		return
	}

	req := catalogapp.UpdateProductRequest{
		Name:            form.Name,
		Description:     form.Description,
		CategoryID:      uuid.MustParse(form.CategoryID),
		Published:       form.Published,
		Price:           decimal.NewFromFloat(form.Price),
		Qty:             decimal.NewFromFloat(form.Qty),
		Address:         form.Address,
		CityID:          uuid.MustParse(form.CityID),
		NewImage:        newImageName,
		NewExtraImages:  newExtraNames,
		RemovedImageIDs: form.RemovedImageIDs,
	}

	resp, err := h.productService.Update(ctx, productID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Delete handles DELETE /products/:id
func (h *ProductHandler) Delete(c *gin.Context) {
	productID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid product id")
		return
	}

	resp, err := h.productService.Delete(c.Request.Context(), productID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// saveExtraImages stores every file under the given multipart field,
// appending the generated names to saved as it goes
func (h *ProductHandler) saveExtraImages(c *gin.Context, field string, saved *[]string) ([]string, error) {
	mf, err := c.MultipartForm()
	if err != nil || mf == nil {
		return nil, nil
	}
	fhs := mf.File[field]
	if len(fhs) == 0 {
		return nil, nil
	}

	names, err := saveUploads(c.Request.Context(), h.store, fhs)
	*saved = append(*saved, names...)
	if err != nil {
		return nil, err
	}
	return names, nil
}

// discardUploads removes files written before binding failed, so aborted
// requests leave no orphans on disk
func (h *ProductHandler) discardUploads(c *gin.Context, names []string) {
	ctx := c.Request.Context()
	for _, name := range names {
		if err := h.store.Remove(ctx, name); err != nil {
			h.logger.Warn("failed to remove uploaded file",
				zap.String("filename", name),
				zap.Error(err))
		}
	}
}

func pageOf(filter catalogapp.ProductListFilter) int {
	if filter.Page <= 0 {
		return 1
	}
	return filter.Page
}

func pageSizeOf(filter catalogapp.ProductListFilter) int {
	if filter.PageSize <= 0 {
		return 20
	}
	return filter.PageSize
}
