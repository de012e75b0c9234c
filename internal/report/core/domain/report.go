package domain

import "time"

// WindowTotals are the funnel numbers for one aggregation window.
// Scans is the counter-derived scan count after delta/fallback handling;
// LoggedScans is the raw scan-event count from the local log.
type WindowTotals struct {
	Scans            int64
	LoggedScans      int64
	Clicks           int64
	Purchases        int64
	RevenueCents     int64
	ExpiredCheckouts int64
	Signups          int64
}

// FunnelSummary is one report-ready aggregation: the trailing hour plus
// today-so-far, stamped in the configured timezone. Degraded marks a run
// where the external scan counter could not be read and every scan
// figure comes from the local event log instead.
type FunnelSummary struct {
	GeneratedAt time.Time
	Degraded    bool
	Hour        WindowTotals
	Today       WindowTotals
}
