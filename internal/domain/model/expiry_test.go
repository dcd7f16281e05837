package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePasswordSource(t *testing.T) {
	for _, valid := range []string{"local", "jamfconnect", "kerberos", "nomad"} {
		src, err := ParsePasswordSource(valid)
		require.NoError(t, err)
		assert.Equal(t, PasswordSource(valid), src)
	}

	src, err := ParsePasswordSource("activedirectory")
	assert.Error(t, err)
	assert.Equal(t, SourceUnknown, src)
}

func TestDaysRemaining_SecondsTruncate(t *testing.T) {
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.Local)

	tests := []struct {
		seconds int64
		want    int64
	}{
		{0, 0},
		{86399, 0},
		{86400, 1},
		{90000, 1},
		{172800, 2},
		{200000, 2},
	}

	for _, tt := range tests {
		v := tt.seconds
		info := ExpiryInfo{SignedIn: true, SecondsRemaining: &v}
		days, ok := info.DaysRemaining(now)
		require.True(t, ok)
		assert.Equal(t, tt.want, days, "seconds=%d", tt.seconds)
	}
}

func TestDaysRemaining_CalendarBoundaries(t *testing.T) {
	// 23:00 local: the next morning is 9 elapsed hours away but one
	// calendar day out.
	now := time.Date(2026, time.March, 10, 23, 0, 0, 0, time.Local)

	tomorrow := time.Date(2026, time.March, 11, 8, 0, 0, 0, time.Local)
	info := ExpiryInfo{SignedIn: true, ExpiryDate: &tomorrow}
	days, ok := info.DaysRemaining(now)
	require.True(t, ok)
	assert.Equal(t, int64(1), days)

	sameDay := time.Date(2026, time.March, 10, 23, 59, 0, 0, time.Local)
	info = ExpiryInfo{SignedIn: true, ExpiryDate: &sameDay}
	days, ok = info.DaysRemaining(now)
	require.True(t, ok)
	assert.Equal(t, int64(0), days)

	yesterday := time.Date(2026, time.March, 9, 1, 0, 0, 0, time.Local)
	info = ExpiryInfo{SignedIn: true, ExpiryDate: &yesterday}
	days, ok = info.DaysRemaining(now)
	require.True(t, ok)
	assert.Equal(t, int64(-1), days)
}

func TestCalendarDaysBetween_DSTTransitions(t *testing.T) {
	// US DST: 2026-03-08 springs forward (23h day), 2026-11-01 falls
	// back (25h day). Boundary counts must not depend on day length.
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	springEve := time.Date(2026, time.March, 8, 22, 0, 0, 0, loc)
	springNext := time.Date(2026, time.March, 9, 8, 0, 0, 0, loc)
	assert.Equal(t, int64(1), CalendarDaysBetween(springEve, springNext))

	// A week containing the transition is still seven boundaries.
	springWeek := time.Date(2026, time.March, 14, 8, 0, 0, 0, loc)
	assert.Equal(t, int64(6), CalendarDaysBetween(springEve, springWeek))

	fallEve := time.Date(2026, time.October, 31, 22, 0, 0, 0, loc)
	fallNext := time.Date(2026, time.November, 1, 8, 0, 0, 0, loc)
	assert.Equal(t, int64(1), CalendarDaysBetween(fallEve, fallNext))

	// Negative direction across the transition.
	assert.Equal(t, int64(-1), CalendarDaysBetween(springNext, springEve))
}

func TestDaysRemaining_NoFiniteDuration(t *testing.T) {
	now := time.Now()
	v := int64(86400)

	tests := []struct {
		name string
		info ExpiryInfo
	}{
		{"not signed in", ExpiryInfo{SecondsRemaining: &v}},
		{"never expires", ExpiryInfo{SignedIn: true, NeverExpires: true, SecondsRemaining: &v}},
		{"no expiry fields", ExpiryInfo{SignedIn: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := tt.info.DaysRemaining(now)
			assert.False(t, ok)
		})
	}
}

func TestBackendFailureError_CarriesOutput(t *testing.T) {
	err := &BackendFailureError{
		Source: SourceKerberosSSO,
		Output: "realm unreachable\n",
		Err:    assert.AnError,
	}

	assert.Contains(t, err.Error(), "realm unreachable")
	assert.ErrorIs(t, err, assert.AnError)
}
