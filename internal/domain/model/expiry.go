package model

import "time"

// SecondsPerDay is the divisor for converting a seconds-based expiry value
// into whole days remaining (truncating division).
const SecondsPerDay = 86400

// ExpiryInfo is the normalized result of querying one identity backend.
// At most one of SecondsRemaining/ExpiryDate is populated, depending on
// which representation the backend reports. Recomputed on every poll,
// never persisted.
type ExpiryInfo struct {
	SecondsRemaining *int64
	ExpiryDate       *time.Time
	NeverExpires     bool
	SignedIn         bool
}

// DaysRemaining returns the whole days until the password expires and whether
// a finite remaining duration is known. Seconds-based backends use truncating
// division; date-based backends count calendar day boundaries, so crossing
// midnight counts as a day even when less than 24 hours away.
func (e ExpiryInfo) DaysRemaining(now time.Time) (int64, bool) {
	switch {
	case !e.SignedIn || e.NeverExpires:
		return 0, false
	case e.SecondsRemaining != nil:
		return *e.SecondsRemaining / SecondsPerDay, true
	case e.ExpiryDate != nil:
		return CalendarDaysBetween(now, *e.ExpiryDate), true
	}
	return 0, false
}

// CalendarDaysBetween returns the number of local calendar day boundaries
// between now and later. Negative when later is on an earlier day. The
// midnight-to-midnight span is rounded rather than truncated so days
// shortened or stretched by a DST transition still count as one boundary.
func CalendarDaysBetween(now, later time.Time) int64 {
	nowDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	laterLocal := later.In(now.Location())
	laterDay := time.Date(laterLocal.Year(), laterLocal.Month(), laterLocal.Day(), 0, 0, 0, 0, now.Location())

	span := laterDay.Sub(nowDay)
	if span < 0 {
		return -int64((-span + 12*time.Hour) / (24 * time.Hour))
	}
	return int64((span + 12*time.Hour) / (24 * time.Hour))
}
