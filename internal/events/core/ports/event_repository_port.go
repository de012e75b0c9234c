package ports

import (
	"context"
	"time"

	"funnel-report-service/internal/events/core/domain"
)

type EventRepositoryPort interface {
	// InsertEvent appends e and returns the store-assigned ID. The store
	// stamps OccurredAt at write time; a failed write is returned as-is
	// and the event must be assumed not persisted.
	InsertEvent(ctx context.Context, e *domain.Event) (int64, error)

	// QueryWindow aggregates events with start <= occurred_at < end,
	// grouped by type.
	QueryWindow(ctx context.Context, start, end time.Time) (domain.WindowStats, error)
}
