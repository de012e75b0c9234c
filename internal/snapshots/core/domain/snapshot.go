package domain

import "time"

// Snapshot is a point-in-time observation of the external scan counter.
// Snapshots are never updated; only the newest one at-or-before a given
// instant is ever read back.
type Snapshot struct {
	ID          int64
	CapturedAt  time.Time
	TotalCount  int64
	UniqueCount int64
}
