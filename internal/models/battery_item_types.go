package models

import "time"

// DefaultLowStockThreshold is applied when a new item doesn't specify one.
const DefaultLowStockThreshold = 5

// BatteryItem is the model for the 'battery_items' table
type BatteryItem struct {
	ID                int64     `json:"id" db:"id"`
	Brand             string    `json:"brand" db:"brand"`
	Model             string    `json:"model" db:"model"`
	BatteryType       string    `json:"batteryType" db:"battery_type"`
	Location          string    `json:"location" db:"location"`
	Quantity          int       `json:"quantity" db:"quantity"`
	LowStockThreshold int       `json:"lowStockThreshold" db:"low_stock_threshold"`
	UpdatedAt         time.Time `json:"updatedAt" db:"updated_at"`
}

// IsLowStock is the derived predicate. It is never stored; clients and the
// filter pipeline recompute it from quantity and threshold.
func (b BatteryItem) IsLowStock() bool {
	return b.Quantity <= b.LowStockThreshold
}
