package handlers

import (
	"context"
	"log"

	"github.com/polarxpression/batterybuddy-golang/internal/activity"
	"github.com/polarxpression/batterybuddy-golang/internal/ai"
	"github.com/polarxpression/batterybuddy-golang/internal/store"
	"github.com/polarxpression/batterybuddy-golang/internal/watch"
)

// Handlers struct holds all dependencies for our handlers.
type Handlers struct {
	Store     store.Store   // Authoritative inventory store
	Activity  *activity.Log // In-memory recent-activity feed
	Hub       *watch.Hub    // Snapshot fan-out for watching clients
	AIService *ai.AIService // nil when GEMINI_API_KEY is not set
}

// broadcastSnapshot pushes the full current list to every watcher. Called
// after every successful mutation. A failed read only costs watchers one
// refresh, so it is logged and swallowed.
func (h *Handlers) broadcastSnapshot(ctx context.Context) {
	items, err := h.Store.ListItems(ctx)
	if err != nil {
		log.Printf("snapshot broadcast skipped: %v", err)
		return
	}
	h.Hub.Broadcast(items)
}
