package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

//
// --- Dashboard Stats ---
//

type DashboardStats struct {
	TotalItems    int `json:"totalItems"`
	TotalUnits    int `json:"totalUnits"`
	LowStockCount int `json:"lowStockCount"`
	TypesTracked  int `json:"typesTracked"`
}

// GetDashboardStats returns KPI data for the home screen
// GET /v1/dashboard-stats
func (h *Handlers) GetDashboardStats(c *gin.Context) {
	items, err := h.Store.ListItems(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load inventory"})
		return
	}

	stats := DashboardStats{TotalItems: len(items)}
	seenTypes := map[string]struct{}{}
	for _, item := range items {
		stats.TotalUnits += item.Quantity
		if item.IsLowStock() {
			stats.LowStockCount++
		}
		seenTypes[item.BatteryType] = struct{}{}
	}
	stats.TypesTracked = len(seenTypes)

	c.JSON(http.StatusOK, stats)
}
