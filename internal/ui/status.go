package ui

import "time"

// Status is the per-frame snapshot the HUD renders.
type Status struct {
	Generation  uint64
	Population  int
	PooledSlots int
	Running     bool
	Interval    time.Duration
	Placing     string // active placement pattern, empty when none
}
