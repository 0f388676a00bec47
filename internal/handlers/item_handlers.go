package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/polarxpression/batterybuddy-golang/internal/filter"
	"github.com/polarxpression/batterybuddy-golang/internal/models"
	"github.com/polarxpression/batterybuddy-golang/internal/store"
)

//
// --- Battery Item Handlers ---
//

// BatteryItemInput defines the JSON for creating/updating a battery item
type BatteryItemInput struct {
	Brand             string `json:"brand" binding:"required"`
	Model             string `json:"model" binding:"required"`
	BatteryType       string `json:"batteryType" binding:"required"`
	Location          string `json:"location"`
	Quantity          int    `json:"quantity" binding:"gte=0"`
	LowStockThreshold *int   `json:"lowStockThreshold" binding:"omitempty,gte=0"`
}

// AdjustQuantityInput carries the signed delta for the adjust endpoint.
// Delta is a pointer so an explicit zero binds cleanly; gin's "required"
// rejects zero values on plain ints.
type AdjustQuantityInput struct {
	Delta *int `json:"delta" binding:"required"`
}

// CreateItem is the handler for POST /v1/inventory
func (h *Handlers) CreateItem(c *gin.Context) {
	// 1. --- Bind & Validate JSON ---
	var input BatteryItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// 2. --- Create Model ---
	item := models.BatteryItem{
		Brand:             input.Brand,
		Model:             input.Model,
		BatteryType:       input.BatteryType,
		Location:          input.Location,
		Quantity:          input.Quantity,
		LowStockThreshold: models.DefaultLowStockThreshold,
	}
	if input.LowStockThreshold != nil {
		item.LowStockThreshold = *input.LowStockThreshold
	}

	// 3. --- Save to Store ---
	created, err := h.Store.CreateItem(c.Request.Context(), item)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create battery item"})
		return
	}

	h.Activity.Append("add", fmt.Sprintf("Added %s %s (%s) x%d", created.Brand, created.Model, created.BatteryType, created.Quantity))
	h.broadcastSnapshot(c.Request.Context())

	c.JSON(http.StatusCreated, gin.H{
		"message": "Battery item created successfully",
		"item":    created,
	})
}

// GetItems is the handler for GET /v1/inventory.
// The filter pipeline runs server-side over the full list: ?search=,
// ?type=, ?low_stock=true map to the three derived-view inputs.
func (h *Handlers) GetItems(c *gin.Context) {
	items, err := h.Store.ListItems(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list battery items"})
		return
	}

	params := filter.Params{
		Search:       c.Query("search"),
		BatteryType:  c.Query("type"),
		LowStockOnly: c.Query("low_stock") == "true",
	}

	c.JSON(http.StatusOK, gin.H{
		"items": filter.Apply(items, params),
	})
}

// GetItem is the handler for GET /v1/inventory/:id
func (h *Handlers) GetItem(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item ID"})
		return
	}

	item, err := h.Store.GetItem(c.Request.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Battery item not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load battery item"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"item": item})
}

// UpdateItem is the handler for PUT /v1/inventory/:id.
// The whole record is overwritten; the last writer wins.
func (h *Handlers) UpdateItem(c *gin.Context) {
	// 1. --- Get ID ---
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item ID"})
		return
	}

	// 2. --- Bind & Validate JSON ---
	var input BatteryItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item := models.BatteryItem{
		ID:                id,
		Brand:             input.Brand,
		Model:             input.Model,
		BatteryType:       input.BatteryType,
		Location:          input.Location,
		Quantity:          input.Quantity,
		LowStockThreshold: models.DefaultLowStockThreshold,
	}
	if input.LowStockThreshold != nil {
		item.LowStockThreshold = *input.LowStockThreshold
	}

	// 3. --- Overwrite in Store ---
	err = h.Store.UpdateItem(c.Request.Context(), item)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Battery item not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update battery item"})
		return
	}

	h.Activity.Append("update", fmt.Sprintf("Updated %s %s", item.Brand, item.Model))
	h.broadcastSnapshot(c.Request.Context())

	c.JSON(http.StatusOK, gin.H{"message": "Battery item updated successfully"})
}

// DeleteItem is the handler for DELETE /v1/inventory/:id
func (h *Handlers) DeleteItem(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item ID"})
		return
	}

	// Read the record first so the activity feed can name what was removed.
	item, err := h.Store.GetItem(c.Request.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Battery item not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load battery item"})
		return
	}

	err = h.Store.DeleteItem(c.Request.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		// Deleted by someone else between the read above and now.
		c.JSON(http.StatusNotFound, gin.H{"error": "Battery item not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete battery item"})
		return
	}

	h.Activity.Append("delete", fmt.Sprintf("Deleted %s %s", item.Brand, item.Model))
	h.broadcastSnapshot(c.Request.Context())

	c.JSON(http.StatusOK, gin.H{"message": "Battery item deleted successfully"})
}

// AdjustQuantity is the handler for PATCH /v1/inventory/:id/adjust.
// A delta that would push the quantity below zero is rejected with 409 and
// nothing is written.
func (h *Handlers) AdjustQuantity(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item ID"})
		return
	}

	var input AdjustQuantityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	delta := *input.Delta
	item, err := h.Store.AdjustQuantity(c.Request.Context(), id, delta)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Battery item not found"})
		return
	}
	if errors.Is(err, store.ErrNegativeQuantity) {
		c.JSON(http.StatusConflict, gin.H{"error": "Quantity cannot go below zero"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to adjust quantity"})
		return
	}

	verb := "Increased"
	amount := delta
	if delta < 0 {
		verb = "Decreased"
		amount = -delta
	}
	h.Activity.Append("adjust", fmt.Sprintf("%s %s %s by %d (now %d)", verb, item.Brand, item.Model, amount, item.Quantity))
	h.broadcastSnapshot(c.Request.Context())

	c.JSON(http.StatusOK, gin.H{
		"message": "Quantity adjusted successfully",
		"item":    item,
	})
}
