package notifier

import (
	"fmt"
	"time"
)

// PurchaseMessage is the immediate notification sent when a purchase
// webhook lands, ahead of the next scheduled report.
func PurchaseMessage(amountCents int64, at time.Time) string {
	return fmt.Sprintf(
		"🎉 <b>New Pre-Order!</b>\n\n💰 Amount: $%.2f\n🕐 Time: %s",
		float64(amountCents)/100,
		at.Format("3:04 PM"),
	)
}

// SignupMessage is the immediate notification sent when a new email
// signup is captured. Duplicates never reach this point.
func SignupMessage(email, source string, at time.Time) string {
	if source == "" {
		source = "unknown"
	}
	return fmt.Sprintf(
		"📧 <b>New Signup</b>\n\n%s\nSource: %s\n🕐 Time: %s",
		email,
		source,
		at.Format("3:04 PM"),
	)
}
