package ports

import (
	"context"
	"time"

	"funnel-report-service/internal/snapshots/core/domain"
)

type SnapshotRepositoryPort interface {
	// Record inserts a snapshot stamped with the store's current time and
	// returns that timestamp.
	Record(ctx context.Context, totalCount, uniqueCount int64) (time.Time, error)

	// LastAtOrBefore returns the newest snapshot with captured_at <= t.
	// (nil, nil) means no such snapshot exists, which is expected on
	// first run.
	LastAtOrBefore(ctx context.Context, t time.Time) (*domain.Snapshot, error)
}
