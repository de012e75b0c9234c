package usecase

import (
	"context"
	"fmt"
	"time"

	eventsdomain "funnel-report-service/internal/events/core/domain"
	eventsports "funnel-report-service/internal/events/core/ports"
	"funnel-report-service/internal/report/core/domain"
	snapshotsdomain "funnel-report-service/internal/snapshots/core/domain"
	snapshotsports "funnel-report-service/internal/snapshots/core/ports"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type CounterSource interface {
	FetchCounter(ctx context.Context) (total, unique int64, err error)
}

type Notifier interface {
	Notify(ctx context.Context, text string) bool
}

// ReportCycleUseCase produces one funnel summary and delivers it. It is
// the single entry point the scheduler (and the manual debug trigger)
// invokes; running it twice is safe, each run just records one more
// snapshot and sends one more report.
type ReportCycleUseCase struct {
	events    eventsports.EventRepositoryPort
	snapshots snapshotsports.SnapshotRepositoryPort
	counter   CounterSource
	notifier  Notifier
	loc       *time.Location
	log       zerolog.Logger

	now func() time.Time
}

func NewReportCycleUseCase(
	events eventsports.EventRepositoryPort,
	snapshots snapshotsports.SnapshotRepositoryPort,
	counter CounterSource,
	notifier Notifier,
	loc *time.Location,
	log zerolog.Logger,
) *ReportCycleUseCase {
	return &ReportCycleUseCase{
		events:    events,
		snapshots: snapshots,
		counter:   counter,
		notifier:  notifier,
		loc:       loc,
		log:       log,
		now:       time.Now,
	}
}

// Execute runs one report cycle. A storage failure aborts the cycle; a
// counter failure degrades it; a delivery failure is only logged.
func (uc *ReportCycleUseCase) Execute(ctx context.Context) error {
	runID := uuid.NewString()
	log := uc.log.With().Str("run_id", runID).Logger()

	now := uc.now()
	hourStart := now.Add(-time.Hour)
	todayStart := localMidnight(now, uc.loc)

	summary, err := uc.buildSummary(ctx, log, now, hourStart, todayStart)
	if err != nil {
		return err
	}

	text := FormatReport(summary)
	if ok := uc.notifier.Notify(ctx, text); !ok {
		// Advisory only; the snapshot already recorded above stands and
		// the next cycle self-corrects.
		log.Warn().Msg("report not delivered to all destinations")
	}

	log.Info().
		Bool("degraded", summary.Degraded).
		Int64("hour_scans", summary.Hour.Scans).
		Int64("today_scans", summary.Today.Scans).
		Int64("today_purchases", summary.Today.Purchases).
		Msg("report cycle completed")

	return nil
}

func (uc *ReportCycleUseCase) buildSummary(
	ctx context.Context,
	log zerolog.Logger,
	now, hourStart, todayStart time.Time,
) (*domain.FunnelSummary, error) {
	hourStats, err := uc.events.QueryWindow(ctx, hourStart, now)
	if err != nil {
		return nil, fmt.Errorf("query hour window: %w", err)
	}
	todayStats, err := uc.events.QueryWindow(ctx, todayStart, now)
	if err != nil {
		return nil, fmt.Errorf("query today window: %w", err)
	}

	summary := &domain.FunnelSummary{
		GeneratedAt: now.In(uc.loc),
		Hour:        totalsFromStats(hourStats),
		Today:       totalsFromStats(todayStats),
	}

	total, unique, err := uc.counter.FetchCounter(ctx)
	if err != nil {
		// Degraded mode: proceed on logged scan events only.
		log.Warn().Err(err).Msg("scan counter fetch failed, using logged scans")
		summary.Degraded = true
		summary.Hour.Scans = summary.Hour.LoggedScans
		summary.Today.Scans = summary.Today.LoggedScans
		return summary, nil
	}

	hourPrior, err := uc.snapshots.LastAtOrBefore(ctx, hourStart)
	if err != nil {
		return nil, fmt.Errorf("lookup hour snapshot: %w", err)
	}
	todayPrior, err := uc.snapshots.LastAtOrBefore(ctx, todayStart)
	if err != nil {
		return nil, fmt.Errorf("lookup today snapshot: %w", err)
	}

	summary.Hour.Scans = clampedDelta(total, hourPrior)
	summary.Today.Scans = clampedDelta(total, todayPrior)

	// Every run contributes one snapshot, changed counter or not. A
	// failed write is logged, not fatal: the next run's delta recovers.
	if _, err := uc.snapshots.Record(ctx, total, unique); err != nil {
		log.Error().Err(err).Msg("failed to record scan snapshot")
	}

	// A zero today-delta means the feed is stale or freshly provisioned;
	// conversion math falls back to the local log rather than reporting
	// an empty funnel.
	if summary.Today.Scans == 0 {
		summary.Today.Scans = summary.Today.LoggedScans
	}
	if summary.Hour.Scans == 0 {
		summary.Hour.Scans = summary.Hour.LoggedScans
	}

	return summary, nil
}

// clampedDelta is max(0, current-prior); an absent prior observation
// establishes no history and yields 0.
func clampedDelta(current int64, prior *snapshotsdomain.Snapshot) int64 {
	if prior == nil {
		return 0
	}
	if current < prior.TotalCount {
		// Source regressed; never report a negative delta.
		return 0
	}
	return current - prior.TotalCount
}

func totalsFromStats(stats eventsdomain.WindowStats) domain.WindowTotals {
	return domain.WindowTotals{
		LoggedScans:      stats.Count(eventsdomain.TypeScan),
		Clicks:           stats.Count(eventsdomain.TypeClick),
		Purchases:        stats.Count(eventsdomain.TypePurchase),
		RevenueCents:     stats.AmountCents(eventsdomain.TypePurchase),
		ExpiredCheckouts: stats.Count(eventsdomain.TypeExpiredCheckout),
		Signups:          stats.Count(eventsdomain.TypeSignup),
	}
}

// localMidnight returns the start of t's day in loc; "today" resets at
// local midnight while the trailing-hour window is absolute time.
func localMidnight(t time.Time, loc *time.Location) time.Time {
	lt := t.In(loc)
	return time.Date(lt.Year(), lt.Month(), lt.Day(), 0, 0, 0, 0, loc)
}
