package models

import "time"

// SeatStatus is the cached view of one seat, held by the optional
// read cache. Only reserved seats are cached; Reference is always
// non-empty for a cached entry.
type SeatStatus struct {
	Seat      string    `json:"seat"`
	Reference string    `json:"reference"`
	CachedAt  time.Time `json:"cached_at"`
}
