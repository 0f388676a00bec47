package filter

import (
	"testing"

	"github.com/polarxpression/batterybuddy-golang/internal/models"
)

func sampleItems() []models.BatteryItem {
	return []models.BatteryItem{
		{ID: 1, Brand: "Varta", Model: "Longlife", BatteryType: "AA", Location: "Kitchen drawer", Quantity: 20, LowStockThreshold: 5},
		{ID: 2, Brand: "Duracell", Model: "Plus", BatteryType: "AAA", Location: "Garage", Quantity: 2, LowStockThreshold: 5},
		{ID: 3, Brand: "Energizer", Model: "Max", BatteryType: "AA", Location: "Office", Quantity: 9, LowStockThreshold: 10},
		{ID: 4, Brand: "Amazon Basics", Model: "Alkaline", BatteryType: "9V", Location: "Garage", Quantity: 30, LowStockThreshold: 5},
	}
}

func ids(items []models.BatteryItem) []int64 {
	out := make([]int64, len(items))
	for i, item := range items {
		out[i] = item.ID
	}
	return out
}

func TestApplySortsLowStockFirstThenBrand(t *testing.T) {
	got := Apply(sampleItems(), Params{})

	// Items 2 and 3 are low stock (3 because threshold 10 >= quantity 9),
	// ordered by brand; then the rest by brand.
	want := []int64{2, 3, 4, 1}
	if len(got) != len(want) {
		t.Fatalf("expected %d items, got %d", len(want), len(got))
	}
	for i, id := range ids(got) {
		if id != want[i] {
			t.Fatalf("wrong order: got %v, want %v", ids(got), want)
		}
	}
}

func TestApplySearchIsCaseInsensitive(t *testing.T) {
	got := Apply(sampleItems(), Params{Search: "gara"})
	if len(got) != 2 {
		t.Fatalf("expected 2 matches on location, got %d", len(got))
	}

	got = Apply(sampleItems(), Params{Search: "DURACELL"})
	if len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("expected only the Duracell item, got %v", ids(got))
	}
}

func TestApplyTypeFilter(t *testing.T) {
	got := Apply(sampleItems(), Params{BatteryType: "AA"})
	if len(got) != 2 {
		t.Fatalf("expected 2 AA items, got %d", len(got))
	}

	// "All" and empty both disable the type filter.
	if n := len(Apply(sampleItems(), Params{BatteryType: "All"})); n != 4 {
		t.Fatalf("expected all 4 items for type \"All\", got %d", n)
	}
}

func TestApplyLowStockOnly(t *testing.T) {
	got := Apply(sampleItems(), Params{LowStockOnly: true})
	if len(got) != 2 {
		t.Fatalf("expected 2 low-stock items, got %d", len(got))
	}
	for _, item := range got {
		if !item.IsLowStock() {
			t.Fatalf("item %d is not low stock", item.ID)
		}
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	items := sampleItems()
	Apply(items, Params{Search: "x"})
	if items[0].ID != 1 || items[3].ID != 4 {
		t.Fatalf("input slice was reordered")
	}
}
