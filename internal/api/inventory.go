package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pageza/homebar/backend/internal/models"
	"github.com/pageza/homebar/backend/internal/service"
)

// InventoryHandler handles inventory CRUD requests
type InventoryHandler struct {
	inventoryService *service.InventoryService
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(inventoryService *service.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

// ListInventory returns all inventory items
func (h *InventoryHandler) ListInventory(c *gin.Context) {
	items, err := h.inventoryService.ListItems(c.Request.Context(), c.Query("category"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list inventory items"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items": items,
		"count": len(items),
	})
}

// GetExpiringItems returns items expiring within the next N days (default 7)
func (h *InventoryHandler) GetExpiringItems(c *gin.Context) {
	daysAhead := 7
	if days := c.Query("days"); days != "" {
		n, err := strconv.Atoi(days)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid days parameter"})
			return
		}
		daysAhead = n
	}

	items, err := h.inventoryService.ListExpiring(c.Request.Context(), daysAhead)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get expiring items"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items":     items,
		"count":     len(items),
		"daysAhead": daysAhead,
	})
}

// GetInventoryItem returns one item by ID
func (h *InventoryHandler) GetInventoryItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id"})
		return
	}

	item, err := h.inventoryService.GetItem(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get inventory item"})
		return
	}

	c.JSON(http.StatusOK, item)
}

// CreateInventoryItem creates a new item
func (h *InventoryHandler) CreateInventoryItem(c *gin.Context) {
	var item models.InventoryItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if item.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}
	if item.Quantity < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantity cannot be negative"})
		return
	}

	created, err := h.inventoryService.CreateItem(c.Request.Context(), &item)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create inventory item"})
		return
	}

	c.JSON(http.StatusCreated, created)
}

// UpdateInventoryItem applies a partial update to an item
func (h *InventoryHandler) UpdateInventoryItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id"})
		return
	}

	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	for field, column := range inventoryUpdatableFields {
		if v, ok := body[field]; ok {
			updates[column] = v
		}
	}
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No valid fields to update"})
		return
	}
	if q, ok := updates["quantity"].(float64); ok && q < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantity cannot be negative"})
		return
	}

	item, err := h.inventoryService.UpdateItem(c.Request.Context(), id, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update inventory item"})
		return
	}

	c.JSON(http.StatusOK, item)
}

// inventoryUpdatableFields maps JSON field names to database columns for
// partial updates.
var inventoryUpdatableFields = map[string]string{
	"name":           "name",
	"category":       "category",
	"quantity":       "quantity",
	"unit":           "unit",
	"expirationDate": "expiration_date",
	"brand":          "brand",
	"notes":          "notes",
}

// DeleteInventoryItem deletes an item
func (h *InventoryHandler) DeleteInventoryItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id"})
		return
	}

	if err := h.inventoryService.DeleteItem(c.Request.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete inventory item"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item deleted successfully",
		"itemId":  id.String(),
	})
}
