package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	eventsdomain "funnel-report-service/internal/events/core/domain"
	snapshotsdomain "funnel-report-service/internal/snapshots/core/domain"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 3, 1, 15, 0, 0, 0, time.UTC)

type fakeEventStore struct {
	windows  map[time.Time]eventsdomain.WindowStats
	queryErr error
}

func (f *fakeEventStore) InsertEvent(ctx context.Context, e *eventsdomain.Event) (int64, error) {
	panic("report cycle never writes events")
}

func (f *fakeEventStore) QueryWindow(ctx context.Context, start, end time.Time) (eventsdomain.WindowStats, error) {
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	if stats, ok := f.windows[start]; ok {
		return stats, nil
	}
	return eventsdomain.WindowStats{}, nil
}

type recordCall struct {
	total  int64
	unique int64
}

type fakeSnapshotStore struct {
	priors    map[time.Time]*snapshotsdomain.Snapshot
	lookupErr error
	recordErr error
	records   []recordCall
}

func (f *fakeSnapshotStore) Record(ctx context.Context, total, unique int64) (time.Time, error) {
	f.records = append(f.records, recordCall{total: total, unique: unique})
	if f.recordErr != nil {
		return time.Time{}, f.recordErr
	}
	return fixedNow, nil
}

func (f *fakeSnapshotStore) LastAtOrBefore(ctx context.Context, t time.Time) (*snapshotsdomain.Snapshot, error) {
	if f.lookupErr != nil {
		return nil, f.lookupErr
	}
	return f.priors[t], nil
}

type fakeCounter struct {
	total  int64
	unique int64
	err    error
}

func (f *fakeCounter) FetchCounter(ctx context.Context) (int64, int64, error) {
	return f.total, f.unique, f.err
}

type fakeNotifier struct {
	messages []string
	ok       bool
}

func (f *fakeNotifier) Notify(ctx context.Context, text string) bool {
	f.messages = append(f.messages, text)
	return f.ok
}

func newCycleUC(events *fakeEventStore, snaps *fakeSnapshotStore, ctr *fakeCounter, notif *fakeNotifier) *ReportCycleUseCase {
	uc := NewReportCycleUseCase(events, snaps, ctr, notif, time.UTC, zerolog.Nop())
	uc.now = func() time.Time { return fixedNow }
	return uc
}

func hourStart() time.Time  { return fixedNow.Add(-time.Hour) }
func todayStart() time.Time { return time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC) }

func TestReportCycle_DeltasAndDelivery(t *testing.T) {
	events := &fakeEventStore{
		windows: map[time.Time]eventsdomain.WindowStats{
			hourStart(): {
				eventsdomain.TypeScan:     {Count: 3},
				eventsdomain.TypeClick:    {Count: 2},
				eventsdomain.TypePurchase: {Count: 1, AmountCents: 4900},
			},
			todayStart(): {
				eventsdomain.TypeScan:     {Count: 20},
				eventsdomain.TypeClick:    {Count: 10},
				eventsdomain.TypePurchase: {Count: 2, AmountCents: 9800},
			},
		},
	}
	snaps := &fakeSnapshotStore{
		priors: map[time.Time]*snapshotsdomain.Snapshot{
			hourStart():  {TotalCount: 140},
			todayStart(): {TotalCount: 100},
		},
	}
	ctr := &fakeCounter{total: 150, unique: 90}
	notif := &fakeNotifier{ok: true}

	uc := newCycleUC(events, snaps, ctr, notif)

	require.NoError(t, uc.Execute(context.Background()))

	// One snapshot per run, with the freshly fetched values.
	require.Len(t, snaps.records, 1)
	assert.Equal(t, recordCall{total: 150, unique: 90}, snaps.records[0])

	require.Len(t, notif.messages, 1)
	msg := notif.messages[0]
	assert.Contains(t, msg, "Last hour: 10")           // 150-140
	assert.Contains(t, msg, "Today: 50")               // 150-100
	assert.Contains(t, msg, "2 ($98.00)")              // today purchases
	assert.Contains(t, msg, "Scan → Click: 20%")       // 10/50
	assert.Contains(t, msg, "Click → Purchase: 20%")   // 2/10
	assert.NotContains(t, msg, "scan counter unreachable")
}

func TestReportCycle_NoPriorSnapshotFallsBackToLoggedScans(t *testing.T) {
	events := &fakeEventStore{
		windows: map[time.Time]eventsdomain.WindowStats{
			hourStart():  {eventsdomain.TypeScan: {Count: 3}},
			todayStart(): {eventsdomain.TypeScan: {Count: 7}},
		},
	}
	snaps := &fakeSnapshotStore{}
	ctr := &fakeCounter{total: 150, unique: 90}
	notif := &fakeNotifier{ok: true}

	uc := newCycleUC(events, snaps, ctr, notif)
	require.NoError(t, uc.Execute(context.Background()))

	// Absent prior gives delta 0, then the local log fills in.
	require.Len(t, notif.messages, 1)
	assert.Contains(t, notif.messages[0], "Last hour: 3")
	assert.Contains(t, notif.messages[0], "Today: 7")
}

func TestReportCycle_CounterRegressionClampsToZero(t *testing.T) {
	events := &fakeEventStore{
		windows: map[time.Time]eventsdomain.WindowStats{
			todayStart(): {eventsdomain.TypeScan: {Count: 5}},
		},
	}
	snaps := &fakeSnapshotStore{
		priors: map[time.Time]*snapshotsdomain.Snapshot{
			hourStart():  {TotalCount: 100},
			todayStart(): {TotalCount: 100},
		},
	}
	// Source regressed from 100 to 80.
	ctr := &fakeCounter{total: 80, unique: 40}
	notif := &fakeNotifier{ok: true}

	uc := newCycleUC(events, snaps, ctr, notif)
	require.NoError(t, uc.Execute(context.Background()))

	// Never negative: clamped to zero, then today falls back to the log.
	require.Len(t, notif.messages, 1)
	assert.Contains(t, notif.messages[0], "Today: 5")
}

func TestReportCycle_CounterFailureDegrades(t *testing.T) {
	events := &fakeEventStore{
		windows: map[time.Time]eventsdomain.WindowStats{
			hourStart():  {eventsdomain.TypeScan: {Count: 2}},
			todayStart(): {eventsdomain.TypeScan: {Count: 9}},
		},
	}
	snaps := &fakeSnapshotStore{}
	ctr := &fakeCounter{err: errors.New("dial tcp: connection refused")}
	notif := &fakeNotifier{ok: true}

	uc := newCycleUC(events, snaps, ctr, notif)

	// The cycle still completes and delivers.
	require.NoError(t, uc.Execute(context.Background()))

	// No snapshot without a counter value.
	assert.Empty(t, snaps.records)

	require.Len(t, notif.messages, 1)
	msg := notif.messages[0]
	assert.Contains(t, msg, "scan counter unreachable")
	assert.Contains(t, msg, "Last hour: 2")
	assert.Contains(t, msg, "Today: 9")
}

func TestReportCycle_StorageFailureAbortsCycle(t *testing.T) {
	events := &fakeEventStore{queryErr: errors.New("db failure")}
	notif := &fakeNotifier{ok: true}

	uc := newCycleUC(events, &fakeSnapshotStore{}, &fakeCounter{}, notif)

	err := uc.Execute(context.Background())
	assert.Error(t, err)
	assert.Empty(t, notif.messages)
}

func TestReportCycle_SnapshotLookupFailureAbortsCycle(t *testing.T) {
	events := &fakeEventStore{}
	snaps := &fakeSnapshotStore{lookupErr: errors.New("db failure")}
	notif := &fakeNotifier{ok: true}

	uc := newCycleUC(events, snaps, &fakeCounter{total: 10}, notif)

	err := uc.Execute(context.Background())
	assert.Error(t, err)
	assert.Empty(t, notif.messages)
}

func TestReportCycle_SnapshotWriteFailureDoesNotAbort(t *testing.T) {
	events := &fakeEventStore{}
	snaps := &fakeSnapshotStore{recordErr: errors.New("db failure")}
	ctr := &fakeCounter{total: 150, unique: 90}
	notif := &fakeNotifier{ok: true}

	uc := newCycleUC(events, snaps, ctr, notif)

	require.NoError(t, uc.Execute(context.Background()))
	assert.Len(t, notif.messages, 1)
}

func TestReportCycle_DeliveryFailureIsAdvisory(t *testing.T) {
	events := &fakeEventStore{}
	snaps := &fakeSnapshotStore{}
	ctr := &fakeCounter{total: 10, unique: 5}
	notif := &fakeNotifier{ok: false}

	uc := newCycleUC(events, snaps, ctr, notif)

	// The snapshot stands even when delivery fails.
	require.NoError(t, uc.Execute(context.Background()))
	assert.Len(t, snaps.records, 1)
}

func TestReportCycle_PurchaseEndToEnd(t *testing.T) {
	// One purchase of $49.00 logged at T, reported over a window
	// containing it.
	events := &fakeEventStore{
		windows: map[time.Time]eventsdomain.WindowStats{
			hourStart(): {
				eventsdomain.TypePurchase: {Count: 1, AmountCents: 4900},
			},
			todayStart(): {
				eventsdomain.TypePurchase: {Count: 1, AmountCents: 4900},
			},
		},
	}
	snaps := &fakeSnapshotStore{}
	ctr := &fakeCounter{total: 0, unique: 0}
	notif := &fakeNotifier{ok: true}

	uc := newCycleUC(events, snaps, ctr, notif)
	require.NoError(t, uc.Execute(context.Background()))

	require.Len(t, notif.messages, 1)
	assert.Contains(t, notif.messages[0], "1 ($49.00)")
}
