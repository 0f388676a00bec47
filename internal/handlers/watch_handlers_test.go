package handlers

import (
	"bufio"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/polarxpression/batterybuddy-golang/internal/models"
	"github.com/polarxpression/batterybuddy-golang/internal/store"
	"github.com/polarxpression/batterybuddy-golang/internal/watch"
)

// broadcastDuringListStore simulates another client mutating the inventory
// while the watch handler performs its initial read.
type broadcastDuringListStore struct {
	store.Store
	hub  *watch.Hub
	once sync.Once
}

func (s *broadcastDuringListStore) ListItems(ctx context.Context) ([]models.BatteryItem, error) {
	items, err := s.Store.ListItems(ctx)
	s.once.Do(func() {
		s.hub.Broadcast([]models.BatteryItem{{ID: 99, Brand: "Varta"}})
	})
	return items, err
}

func TestWatchInventoryQueuesMutationDuringInitialRead(t *testing.T) {
	gin.SetMode(gin.TestMode)

	hub := watch.NewHub()
	h := &Handlers{
		Store: &broadcastDuringListStore{Store: store.NewMemoryStore(), hub: hub},
		Hub:   hub,
	}
	router := gin.New()
	router.GET("/v1/inventory/watch", h.WatchInventory)

	// SSE needs a live connection; the recorder cannot stream.
	srv := httptest.NewServer(router)
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/v1/inventory/watch", nil)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	// First event is the initial (empty) snapshot; the mutation that landed
	// during the read must follow as a second snapshot, not vanish.
	var dataLines []string
	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() {
		if strings.HasPrefix(scanner.Text(), "data:") {
			dataLines = append(dataLines, scanner.Text())
			if len(dataLines) == 2 {
				break
			}
		}
	}
	if len(dataLines) != 2 {
		t.Fatalf("expected 2 snapshot events, got %d (%v)", len(dataLines), dataLines)
	}
	if !strings.Contains(dataLines[1], `"id":99`) {
		t.Fatalf("second snapshot does not carry the concurrent mutation: %s", dataLines[1])
	}
}
