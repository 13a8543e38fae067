package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	inventoryapp "github.com/marketplace/backend/internal/application/inventory"
	"github.com/shopspring/decimal"
)

// InventoryItemHandler handles inventory item endpoints
type InventoryItemHandler struct {
	BaseHandler
	itemService    *inventoryapp.InventoryItemService
	logTypeService *inventoryapp.LogTypeService
}

// NewInventoryItemHandler creates a new InventoryItemHandler
func NewInventoryItemHandler(itemService *inventoryapp.InventoryItemService, logTypeService *inventoryapp.LogTypeService) *InventoryItemHandler {
	return &InventoryItemHandler{
		itemService:    itemService,
		logTypeService: logTypeService,
	}
}

// updateInventoryItemBody is the JSON body for movement recording.
// Price and qty are optional; absent values keep the item's current ones.
type updateInventoryItemBody struct {
	LogTypeID       string   `json:"log_type_id" binding:"required,uuid"`
	Price           *float64 `json:"price" binding:"omitempty,gte=0"`
	Qty             *float64 `json:"qty" binding:"omitempty,gte=0"`
	FromInventoryID *string  `json:"from_inventory_id" binding:"omitempty,uuid"`
	ToInventoryID   *string  `json:"to_inventory_id" binding:"omitempty,uuid"`
}

// Update handles PUT /inventory-items/:id
func (h *InventoryItemHandler) Update(c *gin.Context) {
	itemID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid inventory item id")
		return
	}

	var body updateInventoryItemBody
	if err := c.ShouldBindJSON(&body); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	req := inventoryapp.UpdateInventoryItemRequest{
		LogTypeID:       uuid.MustParse(body.LogTypeID),
		Price:           toDecimalPtr(body.Price),
		Qty:             toDecimalPtr(body.Qty),
		FromInventoryID: toUUIDPtr(body.FromInventoryID),
		ToInventoryID:   toUUIDPtr(body.ToInventoryID),
	}

	resp, err := h.itemService.Update(c.Request.Context(), itemID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// GetByID handles GET /inventory-items/:id
func (h *InventoryItemHandler) GetByID(c *gin.Context) {
	itemID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid inventory item id")
		return
	}

	resp, err := h.itemService.GetByID(c.Request.Context(), itemID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// ListLogTypes handles GET /inventory-log-types
func (h *InventoryItemHandler) ListLogTypes(c *gin.Context) {
	types, err := h.logTypeService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, types)
}

// toDecimalPtr converts an optional float64 to an optional decimal
func toDecimalPtr(f *float64) *decimal.Decimal {
	if f == nil {
		return nil
	}
	d := decimal.NewFromFloat(*f)
	return &d
}

// toUUIDPtr converts an optional validated uuid string
func toUUIDPtr(s *string) *uuid.UUID {
	if s == nil || *s == "" {
		return nil
	}
	id := uuid.MustParse(*s)
	return &id
}
