// Package activity keeps the session-local feed of recent mutations. The
// feed is deliberately ephemeral: it lives in process memory, holds at most
// MaxEntries rows, and is lost on restart.
package activity

import (
	"sync"
	"time"

	"github.com/polarxpression/batterybuddy-golang/internal/models"
)

// MaxEntries caps the feed at the 20 most recent entries.
const MaxEntries = 20

// Log is a bounded, concurrency-safe ring of activity entries.
type Log struct {
	mu      sync.Mutex
	entries []models.ActivityEntry
}

func NewLog() *Log {
	return &Log{}
}

// Append records a mutation. The oldest entry is dropped once the cap is hit.
func (l *Log) Append(action, description string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry := models.ActivityEntry{
		Action:      action,
		Description: description,
		CreatedAt:   time.Now(),
	}
	l.entries = append(l.entries, entry)
	if len(l.entries) > MaxEntries {
		l.entries = l.entries[len(l.entries)-MaxEntries:]
	}
}

// Recent returns the entries newest first.
func (l *Log) Recent() []models.ActivityEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]models.ActivityEntry, len(l.entries))
	for i, entry := range l.entries {
		out[len(l.entries)-1-i] = entry
	}
	return out
}
