package availability_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/rental-marketplace/backend/internal/availability"
	"github.com/pkordes/rental-marketplace/backend/testutil"
)

func month(loc *time.Location, y int, m time.Month) time.Time {
	return time.Date(y, m, 1, 0, 0, 0, 0, loc)
}

func TestCalendar_NavigateWithinWindow(t *testing.T) {
	utc := time.UTC
	clock := testutil.NewClock(time.Date(2025, 6, 2, 12, 0, 0, 0, utc))

	cal := availability.NewCalendar(clock, utc)
	require.Equal(t, month(utc, 2025, time.June), cal.CurrentMonth)

	// The picker cannot go back past today's month.
	_, ok := cal.Navigate(availability.DirectionPrev, clock, utc, 90)
	assert.False(t, ok)

	// 90 days from June 2 ends on August 30, so July and August are reachable
	// but September is not.
	cal, ok = cal.Navigate(availability.DirectionNext, clock, utc, 90)
	require.True(t, ok)
	assert.Equal(t, month(utc, 2025, time.July), cal.CurrentMonth)

	cal, ok = cal.Navigate(availability.DirectionNext, clock, utc, 90)
	require.True(t, ok)
	assert.Equal(t, month(utc, 2025, time.August), cal.CurrentMonth)

	same, ok := cal.Navigate(availability.DirectionNext, clock, utc, 90)
	assert.False(t, ok)
	assert.Equal(t, cal, same)

	cal, ok = cal.Navigate(availability.DirectionPrev, clock, utc, 90)
	require.True(t, ok)
	assert.Equal(t, month(utc, 2025, time.July), cal.CurrentMonth)
}

func TestCanNavigateNext_WindowEndingOnFirstOfMonth(t *testing.T) {
	utc := time.UTC
	today := time.Date(2025, 6, 30, 0, 0, 0, 0, utc)

	// A two-day window ends on July 1: July's first day is still bookable.
	assert.True(t, availability.CanNavigateNext(month(utc, 2025, time.June), today, utc, 2))
	assert.False(t, availability.CanNavigateNext(month(utc, 2025, time.June), today, utc, 1))
}

func TestCalendar_YearBoundary(t *testing.T) {
	utc := time.UTC
	clock := testutil.NewClock(time.Date(2025, 12, 20, 0, 0, 0, 0, utc))

	cal, ok := availability.NewCalendar(clock, utc).Navigate(availability.DirectionNext, clock, utc, 90)

	require.True(t, ok)
	assert.Equal(t, month(utc, 2026, time.January), cal.CurrentMonth)
}

func TestCalendar_ResetAndUnknownDirection(t *testing.T) {
	utc := time.UTC
	clock := testutil.NewClock(time.Date(2025, 6, 2, 0, 0, 0, 0, utc))
	cal := availability.Calendar{CurrentMonth: month(utc, 2025, time.August)}

	_, ok := cal.Navigate("sideways", clock, utc, 90)
	assert.False(t, ok)

	assert.Equal(t, month(utc, 2025, time.June), cal.Reset(clock, utc).CurrentMonth)
}

func TestCalendar_NilZoneDisablesNavigation(t *testing.T) {
	today := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	assert.False(t, availability.CanNavigateNext(today, today, nil, 90))
	assert.False(t, availability.CanNavigatePrev(today, today, nil))
}

func TestMonthID_RoundTrip(t *testing.T) {
	helsinki, err := time.LoadLocation("Europe/Helsinki")
	require.NoError(t, err)

	// 22:30 UTC on June 30 is already July 1 in Helsinki.
	instant := time.Date(2025, 6, 30, 22, 30, 0, 0, time.UTC)
	id := availability.MonthID(instant, helsinki)
	assert.Equal(t, "2025-07", id)

	first, err := availability.ParseMonthID(id, helsinki)
	require.NoError(t, err)
	assert.True(t, availability.StartOfMonth(instant, helsinki).Equal(first))

	_, err = availability.ParseMonthID("July", helsinki)
	assert.Error(t, err)
	_, err = availability.ParseMonthID("2025-07", nil)
	assert.Error(t, err)
}

func TestLoadZone(t *testing.T) {
	assert.Nil(t, availability.LoadZone(""))
	assert.Nil(t, availability.LoadZone("Mars/Olympus_Mons"))
	assert.NotNil(t, availability.LoadZone("Europe/Helsinki"))
}
