package menus

import (
	"regexp"
	"strconv"
	"time"

	"lunchboard-backend/lib/textutil"
	"lunchboard-backend/lib/timezone"
)

// Week is the Monday..Friday range a scrape run targets.
type Week struct {
	Monday time.Time
}

// CurrentWeek anchors to the most recent Monday at or before `now`.
func CurrentWeek(now time.Time) Week {
	now = now.In(timezone.Location)
	offset := (int(now.Weekday()) + 6) % 7
	monday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, timezone.Location).
		AddDate(0, 0, -offset)
	return Week{Monday: monday}
}

// Day returns the date of weekday i, where 0 is Monday and 4 is Friday.
func (w Week) Day(i int) time.Time {
	return w.Monday.AddDate(0, 0, i)
}

func (w Week) Days() []time.Time {
	days := make([]time.Time, 5)
	for i := range days {
		days[i] = w.Day(i)
	}
	return days
}

func (w Week) DayISO(i int) string {
	return w.Day(i).Format(time.DateOnly)
}

// Contains reports whether the date falls on one of the five weekdays.
func (w Week) Contains(t time.Time) bool {
	return w.ContainsISO(t.Format(time.DateOnly))
}

// ContainsISO is Contains for an already formatted YYYY-MM-DD date.
func (w Week) ContainsISO(iso string) bool {
	for i := 0; i < 5; i++ {
		if iso == w.DayISO(i) {
			return true
		}
	}
	return false
}

var weekdayMatchers = [5][]string{
	{"monday", "maanantai", "mon", "ma"},
	{"tuesday", "tiistai", "tue", "ti"},
	{"wednesday", "keskiviikko", "wed", "ke"},
	{"thursday", "torstai", "thu", "to"},
	{"friday", "perjantai", "fri", "pe"},
}

// ByWeekday translates a weekday label (finnish or english, long or
// short form, minor typos tolerated) into the ISO date it lands on
// within this week. Some feeds key their days this way instead of
// carrying real dates.
func (w Week) ByWeekday(name string) (string, bool) {
	for i, matchers := range weekdayMatchers {
		if textutil.MatchName(name, matchers) {
			return w.DayISO(i), true
		}
	}
	return "", false
}

var dayMonthYearRegex = regexp.MustCompile(`^(\d{1,2})\.(\d{1,2})\.(\d{4})$`)
var isoDateRegex = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})`)

// ParseDate normalizes the date representations seen across providers
// into YYYY-MM-DD: ISO dates, ISO timestamps, d.m.yyyy strings and
// bare weekday labels (resolved against the week).
func (w Week) ParseDate(s string) (string, bool) {
	s = textutil.CleanCourse(s)
	if s == "" {
		return "", false
	}

	if m := isoDateRegex.FindStringSubmatch(s); m != nil {
		return m[1], true
	}
	if m := dayMonthYearRegex.FindStringSubmatch(s); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, timezone.Location)
		return t.Format(time.DateOnly), true
	}

	return w.ByWeekday(s)
}
