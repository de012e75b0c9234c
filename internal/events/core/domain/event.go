package domain

import "time"

// EventType identifies a funnel stage.
type EventType string

const (
	TypeScan            EventType = "scan"
	TypeClick           EventType = "click"
	TypePurchase        EventType = "purchase"
	TypeExpiredCheckout EventType = "expired_checkout"
	TypeSignup          EventType = "signup"
)

// Known reports whether t is one of the recognized event types.
func (t EventType) Known() bool {
	switch t {
	case TypeScan, TypeClick, TypePurchase, TypeExpiredCheckout, TypeSignup:
		return true
	}
	return false
}

// Event is a single immutable funnel event. OccurredAt is assigned by the
// store at write time; AmountCents is only meaningful for purchases.
type Event struct {
	ID          int64
	Type        EventType
	OccurredAt  time.Time
	Payload     map[string]any
	AmountCents int64
}

// TypeStats holds per-type totals over a window.
type TypeStats struct {
	Count       int64
	AmountCents int64
}

// WindowStats maps event types to their totals over a half-open window
// [start, end). Types with no events in the window are absent.
type WindowStats map[EventType]TypeStats

func (w WindowStats) Count(t EventType) int64 {
	return w[t].Count
}

func (w WindowStats) AmountCents(t EventType) int64 {
	return w[t].AmountCents
}
