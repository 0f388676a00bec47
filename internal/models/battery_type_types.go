package models

// BatteryTypeOther is the sentinel entry. It is always present in the
// configured list and cannot be removed.
const BatteryTypeOther = "Other"

// BatteryType is one permitted type label plus its URL-safe slug.
// The slug is the stable key clients use for deletion.
type BatteryType struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// DefaultBatteryTypes is the hardcoded fallback used when the configuration
// record cannot be read.
func DefaultBatteryTypes() []string {
	return []string{"AA", "AAA", "AAAA", "C", "D", "9V", "CR2032", "CR2025", "18650", "Button Cell", BatteryTypeOther}
}
