package models

// Track is a named lane used by the UI to group shots. The edit engine never
// reads or mutates tracks; they ride along for grouping only.
type Track struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Kind   string `json:"kind"` // e.g. "video", "audio", "overlay"
	Muted  bool   `json:"muted"`
	Locked bool   `json:"locked"`
}
