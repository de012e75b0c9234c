package postgres

import (
	"context"
	"encoding/json"
	"time"

	"funnel-report-service/internal/events/core/domain"
	"funnel-report-service/internal/events/core/ports"
)

type EventRepository struct {
	db DB
}

func NewEventRepository(db DB) *EventRepository {
	return &EventRepository{db: db}
}

var _ ports.EventRepositoryPort = (*EventRepository)(nil)

// SQL templates
const insertEventSQL = `
INSERT INTO events (
    event_type,
    payload,
    amount_cents
) VALUES (
    $1, $2, $3
)
RETURNING id, occurred_at;
`

const queryWindowSQL = `
SELECT
    event_type,
    COUNT(*) AS total,
    COALESCE(SUM(amount_cents), 0) AS amount_cents
FROM events
WHERE occurred_at >= $1
  AND occurred_at < $2
GROUP BY event_type;
`

func (r *EventRepository) InsertEvent(ctx context.Context, e *domain.Event) (int64, error) {
	payloadJSON, err := json.Marshal(e.Payload)
	if err != nil {
		return 0, err
	}

	row := r.db.QueryRowContext(ctx, insertEventSQL,
		string(e.Type),
		payloadJSON,
		e.AmountCents,
	)

	if err := row.Scan(&e.ID, &e.OccurredAt); err != nil {
		return 0, err
	}

	return e.ID, nil
}

func (r *EventRepository) QueryWindow(ctx context.Context, start, end time.Time) (domain.WindowStats, error) {
	rows, err := r.db.QueryContext(ctx, queryWindowSQL, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := domain.WindowStats{}
	for rows.Next() {
		var (
			eventType string
			ts        domain.TypeStats
		)
		if err := rows.Scan(&eventType, &ts.Count, &ts.AmountCents); err != nil {
			return nil, err
		}
		stats[domain.EventType(eventType)] = ts
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return stats, nil
}
