package models

// StreamTemplate is a saved rate/duration bundle. Only UsageCount changes
// after creation.
type StreamTemplate struct {
	ID           uint64    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	DurationSecs uint64    `json:"duration_secs"`
	SatsPerSec   uint64    `json:"sats_per_sec"`
	Creator      Principal `json:"creator"`
	CreatedAt    uint64    `json:"created_at"`
	UsageCount   uint64    `json:"usage_count"`
}
