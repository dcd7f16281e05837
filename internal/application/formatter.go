package application

import (
	"fmt"
	"time"

	"github.com/finnroth/expiryd/internal/domain/model"
)

// Display strings for the categorical expiry states. The menu-bar client
// renders these verbatim.
const (
	TextSignInRequired = "Sign in required"
	TextNeverExpires   = "Never expires"
	TextExpiresToday   = "Expires today"
	TextExpired        = "Expired"
	TextUnknown        = "Expiration unknown"
)

// FormatStatus renders the display string for an expiry result. Rules apply
// in priority order: sign-in state dominates everything, then "never
// expires", then the seconds-based or date-based day count.
//
// The seconds path reports a final partial day as "Expires today" while the
// date path renders a zero-day difference through the regular "Expires in N
// days" template; the two backend families are intentionally inconsistent
// here and clients rely on the distinction.
func FormatStatus(info model.ExpiryInfo, now time.Time) string {
	switch {
	case !info.SignedIn:
		return TextSignInRequired
	case info.NeverExpires:
		return TextNeverExpires
	}

	if s := info.SecondsRemaining; s != nil {
		switch {
		case *s == 0:
			return TextExpired
		case *s < model.SecondsPerDay:
			return TextExpiresToday
		default:
			return formatDays(*s / model.SecondsPerDay)
		}
	}

	if info.ExpiryDate != nil {
		days := model.CalendarDaysBetween(now, *info.ExpiryDate)
		if days < 0 {
			return TextExpired
		}
		return formatDays(days)
	}

	return TextUnknown
}

// formatDays pluralizes on exactly one day; every other count, including
// zero, uses the plural form.
func formatDays(days int64) string {
	if days == 1 {
		return "Expires in 1 day"
	}
	return fmt.Sprintf("Expires in %d days", days)
}
