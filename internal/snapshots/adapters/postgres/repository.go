package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"funnel-report-service/internal/snapshots/core/domain"
	"funnel-report-service/internal/snapshots/core/ports"
)

type SnapshotRepository struct {
	db DB
}

func NewSnapshotRepository(db DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

var _ ports.SnapshotRepositoryPort = (*SnapshotRepository)(nil)

// SQL templates
const recordSnapshotSQL = `
INSERT INTO scan_snapshots (
    total_count,
    unique_count
) VALUES (
    $1, $2
)
RETURNING captured_at;
`

const lastAtOrBeforeSQL = `
SELECT id, captured_at, total_count, unique_count
FROM scan_snapshots
WHERE captured_at <= $1
ORDER BY captured_at DESC
LIMIT 1;
`

func (r *SnapshotRepository) Record(ctx context.Context, totalCount, uniqueCount int64) (time.Time, error) {
	var capturedAt time.Time

	row := r.db.QueryRowContext(ctx, recordSnapshotSQL, totalCount, uniqueCount)
	if err := row.Scan(&capturedAt); err != nil {
		return time.Time{}, err
	}

	return capturedAt, nil
}

func (r *SnapshotRepository) LastAtOrBefore(ctx context.Context, t time.Time) (*domain.Snapshot, error) {
	var s domain.Snapshot

	row := r.db.QueryRowContext(ctx, lastAtOrBeforeSQL, t)
	err := row.Scan(&s.ID, &s.CapturedAt, &s.TotalCount, &s.UniqueCount)
	if errors.Is(err, sql.ErrNoRows) {
		// No prior observation yet.
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &s, nil
}
