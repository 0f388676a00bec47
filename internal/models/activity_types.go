package models

import "time"

// ActivityEntry is one row of the recent-activity feed. Entries live only in
// process memory and are never written to the database.
type ActivityEntry struct {
	Action      string    `json:"action"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}
