package usecase

import (
	"fmt"
	"math"
	"strings"

	"funnel-report-service/internal/report/core/domain"
)

// RateUndefined renders a conversion rate whose denominator is zero.
const RateUndefined = "—"

// Rate formats numerator/denominator as a whole percentage. Division by
// zero is not an error here, it renders as RateUndefined.
func Rate(numerator, denominator int64) string {
	if denominator == 0 {
		return RateUndefined
	}
	pct := math.Round(float64(numerator) / float64(denominator) * 100)
	return fmt.Sprintf("%d%%", int64(pct))
}

// FormatReport renders a summary as the Telegram HTML-subset message
// body.
func FormatReport(s *domain.FunnelSummary) string {
	var b strings.Builder

	b.WriteString("📊 <b>Hourly Funnel Report</b>\n")
	b.WriteString("━━━━━━━━━━━━━━━━━━━━\n")
	if s.Degraded {
		b.WriteString("⚠️ scan counter unreachable — scan figures from local event log\n")
	}
	b.WriteString("\n")

	b.WriteString("🔲 <b>QR Scans</b>\n")
	fmt.Fprintf(&b, "   • Last hour: %d\n", s.Hour.Scans)
	fmt.Fprintf(&b, "   • Today: %d\n\n", s.Today.Scans)

	b.WriteString("🖱 <b>Pre-order Clicks</b>\n")
	fmt.Fprintf(&b, "   • Last hour: %d\n", s.Hour.Clicks)
	fmt.Fprintf(&b, "   • Today: %d\n\n", s.Today.Clicks)

	b.WriteString("💰 <b>Completed Purchases</b>\n")
	fmt.Fprintf(&b, "   • Last hour: %d ($%.2f)\n", s.Hour.Purchases, dollars(s.Hour.RevenueCents))
	fmt.Fprintf(&b, "   • Today: %d ($%.2f)\n\n", s.Today.Purchases, dollars(s.Today.RevenueCents))

	if s.Hour.ExpiredCheckouts > 0 || s.Today.ExpiredCheckouts > 0 {
		b.WriteString("🛒 <b>Expired Checkouts</b>\n")
		fmt.Fprintf(&b, "   • Last hour: %d\n", s.Hour.ExpiredCheckouts)
		fmt.Fprintf(&b, "   • Today: %d\n\n", s.Today.ExpiredCheckouts)
	}

	if s.Hour.Signups > 0 || s.Today.Signups > 0 {
		b.WriteString("📧 <b>Email Signups</b>\n")
		fmt.Fprintf(&b, "   • Last hour: %d\n", s.Hour.Signups)
		fmt.Fprintf(&b, "   • Today: %d\n\n", s.Today.Signups)
	}

	b.WriteString("📈 <b>Conversion Rate (Today)</b>\n")
	fmt.Fprintf(&b, "   • Scan → Click: %s\n", Rate(s.Today.Clicks, s.Today.Scans))
	fmt.Fprintf(&b, "   • Click → Purchase: %s\n\n", Rate(s.Today.Purchases, s.Today.Clicks))

	fmt.Fprintf(&b, "🕐 %s", s.GeneratedAt.Format("3:04 PM MST"))

	return b.String()
}

func dollars(cents int64) float64 {
	return float64(cents) / 100
}
