package store

import (
	"context"
	"errors"

	"github.com/polarxpression/batterybuddy-golang/internal/models"
)

// ErrNotFound is returned when no item exists for the given ID so handlers
// can respond with 404.
var ErrNotFound = errors.New("battery item not found")

// ErrNegativeQuantity is returned when a delta-adjust would push the
// quantity below zero. The adjustment is rejected and nothing is written.
var ErrNegativeQuantity = errors.New("quantity cannot go negative")

// Store is the boundary to the authoritative inventory store. The service is
// a passive mirror of whatever lives behind this interface: writes are
// whole-record overwrites, last writer wins, and reads always return the
// full current state.
type Store interface {
	ListItems(ctx context.Context) ([]models.BatteryItem, error)
	GetItem(ctx context.Context, id int64) (models.BatteryItem, error)
	CreateItem(ctx context.Context, item models.BatteryItem) (models.BatteryItem, error)
	UpdateItem(ctx context.Context, item models.BatteryItem) error
	DeleteItem(ctx context.Context, id int64) error

	// AdjustQuantity applies a signed delta and returns the updated item.
	// It fails with ErrNegativeQuantity instead of storing a negative count.
	AdjustQuantity(ctx context.Context, id int64, delta int) (models.BatteryItem, error)

	// GetBatteryTypes reads the battery-type configuration record.
	// Callers fall back to models.DefaultBatteryTypes() on error.
	GetBatteryTypes(ctx context.Context) ([]string, error)
	SaveBatteryTypes(ctx context.Context, types []string) error
}
