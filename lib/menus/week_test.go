package menus

import (
	"testing"
	"time"

	"lunchboard-backend/lib/timezone"

	"github.com/stretchr/testify/require"
)

func TestCurrentWeekAnchorsToMonday(t *testing.T) {
	// every day of a sample week must anchor to the same Monday
	for day := 11; day <= 17; day++ {
		now := time.Date(2016, 4, day, 13, 37, 0, 0, timezone.Location)
		week := CurrentWeek(now)

		require.Equal(t, time.Monday, week.Monday.Weekday(), "now=%s", now)
		require.Equal(t, "2016-04-11", week.DayISO(0), "now=%s", now)
	}
}

func TestCurrentWeekAcrossBoundaries(t *testing.T) {
	testCases := []struct {
		now    time.Time
		monday string
	}{
		// year boundary, friday Jan 1st
		{time.Date(2016, 1, 1, 8, 0, 0, 0, timezone.Location), "2015-12-28"},
		// month boundary
		{time.Date(2016, 5, 1, 8, 0, 0, 0, timezone.Location), "2016-04-25"},
		// monday itself at midnight
		{time.Date(2016, 4, 11, 0, 0, 0, 0, timezone.Location), "2016-04-11"},
	}

	for _, test := range testCases {
		week := CurrentWeek(test.now)
		require.Equal(t, test.monday, week.DayISO(0), "now=%s", test.now)
	}
}

func TestWeekDaysAreConsecutiveWeekdays(t *testing.T) {
	week := CurrentWeek(time.Date(2016, 4, 13, 12, 0, 0, 0, timezone.Location))
	days := week.Days()
	require.Len(t, days, 5)

	for i, day := range days {
		require.NotEqual(t, time.Saturday, day.Weekday())
		require.NotEqual(t, time.Sunday, day.Weekday())
		if i > 0 {
			require.Equal(t, days[i-1].AddDate(0, 0, 1), day)
		}
	}
}

func TestParseDate(t *testing.T) {
	week := CurrentWeek(time.Date(2016, 4, 13, 12, 0, 0, 0, timezone.Location))

	testCases := []struct {
		input    string
		expected string
		ok       bool
	}{
		{"2016-04-11T00:00:00", "2016-04-11", true},
		{"2016-04-12", "2016-04-12", true},
		{"13.4.2016", "2016-04-13", true},
		{"02.05.2016", "2016-05-02", true},
		{"maanantai", "2016-04-11", true},
		{"Keskiviikko", "2016-04-13", true},
		{"Friday", "2016-04-15", true},
		{"pe", "2016-04-15", true},
		{"", "", false},
		{"not a date", "", false},
	}

	for _, test := range testCases {
		date, ok := week.ParseDate(test.input)
		require.Equal(t, test.ok, ok, "input=%q", test.input)
		require.Equal(t, test.expected, date, "input=%q", test.input)
	}
}

func TestParseDateRejectsNonWeekdayWords(t *testing.T) {
	week := CurrentWeek(time.Date(2016, 4, 13, 12, 0, 0, 0, timezone.Location))

	// finnish words that happen to contain a weekday abbreviation must
	// not resolve to a fabricated date, an unparseable field means the
	// day is dropped
	for _, input := range []string{
		"peruttu",
		"Toukokuu 2016",
		"tiedote",
		"keittiö suljettu",
	} {
		date, ok := week.ParseDate(input)
		require.False(t, ok, "input=%q", input)
		require.Empty(t, date, "input=%q", input)
	}
}

func TestByWeekdayToleratesTypos(t *testing.T) {
	week := CurrentWeek(time.Date(2016, 4, 13, 12, 0, 0, 0, timezone.Location))

	date, ok := week.ByWeekday("Tisstai")
	require.True(t, ok)
	require.Equal(t, "2016-04-12", date)

	_, ok = week.ByWeekday("lauantai")
	require.False(t, ok)
}

func TestContains(t *testing.T) {
	week := CurrentWeek(time.Date(2016, 4, 13, 12, 0, 0, 0, timezone.Location))

	require.True(t, week.Contains(time.Date(2016, 4, 11, 10, 0, 0, 0, timezone.Location)))
	require.True(t, week.Contains(time.Date(2016, 4, 15, 23, 0, 0, 0, timezone.Location)))
	// weekend of the same week is out
	require.False(t, week.Contains(time.Date(2016, 4, 16, 10, 0, 0, 0, timezone.Location)))
	// previous monday is out
	require.False(t, week.Contains(time.Date(2016, 4, 4, 10, 0, 0, 0, timezone.Location)))

	require.True(t, week.ContainsISO("2016-04-13"))
	require.False(t, week.ContainsISO("2016-04-18"))
}
