package watch

import (
	"testing"
	"time"

	"github.com/polarxpression/batterybuddy-golang/internal/models"
)

func snapshot(n int) []models.BatteryItem {
	items := make([]models.BatteryItem, n)
	for i := range items {
		items[i].ID = int64(i + 1)
	}
	return items
}

func TestHubDeliversSnapshots(t *testing.T) {
	hub := NewHub()
	sub := hub.Subscribe()
	defer hub.Unsubscribe(sub)

	hub.Broadcast(snapshot(3))

	select {
	case items := <-sub.C:
		if len(items) != 3 {
			t.Fatalf("expected 3 items, got %d", len(items))
		}
	case <-time.After(time.Second):
		t.Fatalf("no snapshot delivered")
	}
}

func TestHubSlowSubscriberSeesOnlyLatest(t *testing.T) {
	hub := NewHub()
	sub := hub.Subscribe()
	defer hub.Unsubscribe(sub)

	// Subscriber never reads between these; the stale snapshot must be
	// dropped, not queued.
	hub.Broadcast(snapshot(1))
	hub.Broadcast(snapshot(2))
	hub.Broadcast(snapshot(5))

	items := <-sub.C
	if len(items) != 5 {
		t.Fatalf("expected the latest snapshot (5 items), got %d", len(items))
	}

	select {
	case extra := <-sub.C:
		t.Fatalf("unexpected queued snapshot with %d items", len(extra))
	default:
	}
}

func TestHubUnsubscribeClosesChannel(t *testing.T) {
	hub := NewHub()
	sub := hub.Subscribe()

	hub.Unsubscribe(sub)
	if _, ok := <-sub.C; ok {
		t.Fatalf("channel still open after Unsubscribe")
	}
	if hub.Count() != 0 {
		t.Fatalf("subscriber still registered")
	}

	// A second Unsubscribe must be harmless.
	hub.Unsubscribe(sub)

	// Broadcasting with no subscribers must not panic either.
	hub.Broadcast(snapshot(1))
}
