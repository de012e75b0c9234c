package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"funnel-report-service/internal/events/core/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepo(t *testing.T) (*EventRepository, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	return NewEventRepository(NewSQLDB(mockDB)), mock
}

func TestEventRepository_InsertEvent(t *testing.T) {
	repo, mock := newMockRepo(t)

	occurredAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO events")).
		WithArgs("purchase", []byte(`{"session_id":"sess_1"}`), int64(4900)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "occurred_at"}).AddRow(int64(42), occurredAt))

	e := &domain.Event{
		Type:        domain.TypePurchase,
		Payload:     map[string]any{"session_id": "sess_1"},
		AmountCents: 4900,
	}

	id, err := repo.InsertEvent(context.Background(), e)
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
	assert.Equal(t, int64(42), e.ID)
	assert.Equal(t, occurredAt, e.OccurredAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_InsertEvent_DBError(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO events")).
		WillReturnError(assert.AnError)

	_, err := repo.InsertEvent(context.Background(), &domain.Event{
		Type:    domain.TypeScan,
		Payload: map[string]any{},
	})
	assert.Error(t, err)
}

func TestEventRepository_QueryWindow(t *testing.T) {
	repo, mock := newMockRepo(t)

	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)

	rows := sqlmock.NewRows([]string{"event_type", "total", "amount_cents"}).
		AddRow("scan", int64(10), int64(0)).
		AddRow("click", int64(4), int64(0)).
		AddRow("purchase", int64(1), int64(4900))

	mock.ExpectQuery(regexp.QuoteMeta("FROM events")).
		WithArgs(start, end).
		WillReturnRows(rows)

	stats, err := repo.QueryWindow(context.Background(), start, end)
	require.NoError(t, err)

	assert.Equal(t, int64(10), stats.Count(domain.TypeScan))
	assert.Equal(t, int64(4), stats.Count(domain.TypeClick))
	assert.Equal(t, int64(1), stats.Count(domain.TypePurchase))
	assert.Equal(t, int64(4900), stats.AmountCents(domain.TypePurchase))

	// Types with no rows report zero.
	assert.Zero(t, stats.Count(domain.TypeSignup))
	assert.Zero(t, stats.AmountCents(domain.TypeSignup))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_QueryWindow_Empty(t *testing.T) {
	repo, mock := newMockRepo(t)

	start := time.Now().Add(-time.Hour)
	end := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("FROM events")).
		WithArgs(start, end).
		WillReturnRows(sqlmock.NewRows([]string{"event_type", "total", "amount_cents"}))

	stats, err := repo.QueryWindow(context.Background(), start, end)
	require.NoError(t, err)
	assert.Empty(t, stats)
	assert.Zero(t, stats.Count(domain.TypeScan))
}

func TestEventRepository_QueryWindow_DBError(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM events")).
		WillReturnError(assert.AnError)

	_, err := repo.QueryWindow(context.Background(), time.Now().Add(-time.Hour), time.Now())
	assert.Error(t, err)
}
