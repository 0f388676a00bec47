package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

// WatchInventory is the handler for GET /v1/inventory/watch.
// It streams server-sent events: one "snapshot" event with the complete item
// list immediately on connect, then another after every mutation. Clients
// replace their local list wholesale on each event.
func (h *Handlers) WatchInventory(c *gin.Context) {
	// Subscribe before the initial read: a mutation landing between the two
	// is then queued on the subscription instead of lost.
	sub := h.Hub.Subscribe()
	defer h.Hub.Unsubscribe(sub)

	items, err := h.Store.ListItems(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load inventory"})
		return
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	// Initial state first, so the client never renders an empty mirror.
	c.SSEvent("snapshot", gin.H{"items": items})
	c.Writer.Flush()

	c.Stream(func(w io.Writer) bool {
		select {
		case snapshot, ok := <-sub.C:
			if !ok {
				return false
			}
			c.SSEvent("snapshot", gin.H{"items": snapshot})
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
