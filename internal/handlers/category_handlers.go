package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"
	"github.com/polarxpression/batterybuddy-golang/internal/models"
)

//
// --- Battery Type Handlers ---
//
// The permitted type labels live in a single configuration record. If that
// record cannot be read the handlers fall back to the hardcoded defaults,
// and the "Other" sentinel is guaranteed in every response.
//

type CreateBatteryTypeInput struct {
	Name string `json:"name" binding:"required"`
}

// loadBatteryTypes reads the configured labels, falling back to the default
// set on any error. The "Other" sentinel is appended if missing.
func (h *Handlers) loadBatteryTypes(c *gin.Context) []string {
	types, err := h.Store.GetBatteryTypes(c.Request.Context())
	if err != nil {
		log.Printf("battery types unavailable, using defaults: %v", err)
		types = models.DefaultBatteryTypes()
	}
	return ensureOther(types)
}

// ensureOther keeps the sentinel entry last.
func ensureOther(types []string) []string {
	out := make([]string, 0, len(types)+1)
	for _, name := range types {
		if name != models.BatteryTypeOther {
			out = append(out, name)
		}
	}
	return append(out, models.BatteryTypeOther)
}

func toBatteryTypes(names []string) []models.BatteryType {
	out := make([]models.BatteryType, len(names))
	for i, name := range names {
		out[i] = models.BatteryType{Name: name, Slug: slug.Make(name)}
	}
	return out
}

// GetBatteryTypes is the handler for GET /v1/battery-types (public).
func (h *Handlers) GetBatteryTypes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"types": toBatteryTypes(h.loadBatteryTypes(c)),
	})
}

// CreateBatteryType is the handler for POST /v1/battery-types
func (h *Handlers) CreateBatteryType(c *gin.Context) {
	var input CreateBatteryTypeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	types := h.loadBatteryTypes(c)

	// Duplicate labels (same slug) are rejected, not silently merged.
	newSlug := slug.Make(input.Name)
	for _, name := range types {
		if slug.Make(name) == newSlug {
			c.JSON(http.StatusConflict, gin.H{"error": "Battery type already exists"})
			return
		}
	}

	// Insert before the "Other" sentinel so it stays last.
	types = append(types[:len(types)-1], input.Name, models.BatteryTypeOther)

	if err := h.Store.SaveBatteryTypes(c.Request.Context(), types); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save battery types"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Battery type created",
		"type":    models.BatteryType{Name: input.Name, Slug: newSlug},
	})
}

// DeleteBatteryType is the handler for DELETE /v1/battery-types/:slug
func (h *Handlers) DeleteBatteryType(c *gin.Context) {
	target := c.Param("slug")
	if target == slug.Make(models.BatteryTypeOther) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "The 'Other' type cannot be removed"})
		return
	}

	types := h.loadBatteryTypes(c)
	kept := make([]string, 0, len(types))
	found := false
	for _, name := range types {
		if slug.Make(name) == target {
			found = true
			continue
		}
		kept = append(kept, name)
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Battery type not found"})
		return
	}

	if err := h.Store.SaveBatteryTypes(c.Request.Context(), kept); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save battery types"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Battery type removed"})
}
