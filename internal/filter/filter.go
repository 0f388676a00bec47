// Package filter is the derived-view step: a pure function over the full
// item list. It is recomputed from scratch on every call; there is no
// incremental maintenance.
package filter

import (
	"sort"
	"strings"

	"github.com/polarxpression/batterybuddy-golang/internal/models"
)

// Params are the three client-controlled inputs of the pipeline.
type Params struct {
	Search       string // case-insensitive substring over brand, model, location
	BatteryType  string // exact type label; empty or "All" disables the filter
	LowStockOnly bool
}

// Apply filters and sorts a copy of items. Low-stock items come first, then
// lexicographic by brand (ties broken by model). The input slice is never
// mutated.
func Apply(items []models.BatteryItem, p Params) []models.BatteryItem {
	out := make([]models.BatteryItem, 0, len(items))

	search := strings.ToLower(strings.TrimSpace(p.Search))
	for _, item := range items {
		if p.LowStockOnly && !item.IsLowStock() {
			continue
		}
		if p.BatteryType != "" && p.BatteryType != "All" && item.BatteryType != p.BatteryType {
			continue
		}
		if search != "" && !matches(item, search) {
			continue
		}
		out = append(out, item)
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.IsLowStock() != b.IsLowStock() {
			return a.IsLowStock()
		}
		brandA, brandB := strings.ToLower(a.Brand), strings.ToLower(b.Brand)
		if brandA != brandB {
			return brandA < brandB
		}
		return strings.ToLower(a.Model) < strings.ToLower(b.Model)
	})

	return out
}

func matches(item models.BatteryItem, search string) bool {
	return strings.Contains(strings.ToLower(item.Brand), search) ||
		strings.Contains(strings.ToLower(item.Model), search) ||
		strings.Contains(strings.ToLower(item.Location), search)
}
