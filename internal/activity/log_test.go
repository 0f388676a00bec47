package activity

import (
	"fmt"
	"testing"
)

func TestLogNewestFirst(t *testing.T) {
	l := NewLog()
	l.Append("add", "Added Duracell AA")
	l.Append("adjust", "Increased Duracell AA by 4")

	recent := l.Recent()
	if len(recent) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(recent))
	}
	if recent[0].Action != "adjust" || recent[1].Action != "add" {
		t.Fatalf("entries not newest first: %+v", recent)
	}
	if recent[0].CreatedAt.IsZero() {
		t.Fatalf("timestamp was not set")
	}
}

func TestLogCapsAtMaxEntries(t *testing.T) {
	l := NewLog()
	for i := 0; i < MaxEntries+7; i++ {
		l.Append("add", fmt.Sprintf("entry %d", i))
	}

	recent := l.Recent()
	if len(recent) != MaxEntries {
		t.Fatalf("expected %d entries, got %d", MaxEntries, len(recent))
	}
	// Newest survives at the front, oldest kept is entry 7.
	if recent[0].Description != fmt.Sprintf("entry %d", MaxEntries+6) {
		t.Fatalf("unexpected newest entry: %s", recent[0].Description)
	}
	if recent[len(recent)-1].Description != "entry 7" {
		t.Fatalf("unexpected oldest entry: %s", recent[len(recent)-1].Description)
	}
}
