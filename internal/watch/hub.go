// Package watch implements the synchronization mirror: after every mutation
// the full item list is pushed to every subscriber. Subscribers always
// replace their local copy wholesale; there is no diffing and no replay.
package watch

import (
	"sync"

	"github.com/polarxpression/batterybuddy-golang/internal/models"
)

// Subscriber receives complete snapshots on C until Unsubscribe is called.
type Subscriber struct {
	C chan []models.BatteryItem
}

// Hub fans out snapshots. Each subscriber channel is buffered with a single
// slot holding the latest snapshot; if a subscriber lags, the stale snapshot
// is dropped and replaced so slow clients only ever see current state.
type Hub struct {
	mu   sync.Mutex
	subs map[*Subscriber]struct{}
}

func NewHub() *Hub {
	return &Hub{subs: make(map[*Subscriber]struct{})}
}

func (h *Hub) Subscribe() *Subscriber {
	sub := &Subscriber{C: make(chan []models.BatteryItem, 1)}
	h.mu.Lock()
	h.subs[sub] = struct{}{}
	h.mu.Unlock()
	return sub
}

func (h *Hub) Unsubscribe(sub *Subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.subs[sub]; ok {
		delete(h.subs, sub)
		close(sub.C)
	}
}

// Broadcast replaces each subscriber's pending snapshot with the new one.
func (h *Hub) Broadcast(items []models.BatteryItem) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for sub := range h.subs {
		// Drain the stale snapshot, if any, then deliver the fresh one.
		select {
		case <-sub.C:
		default:
		}
		sub.C <- items
	}
}

// Count reports the number of live subscribers.
func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}
