// Package menus holds the common shape every lunch menu source is
// normalized into, plus the week-anchor date math shared by all of the
// scrapers.
package menus

import (
	"sort"
)

// DayMenu maps an ISO calendar date (YYYY-MM-DD) to the ordered list
// of course descriptions extracted for that day. A date key is only
// present when the day passed its provider's minimum-content check.
type DayMenu map[string][]string

func (m DayMenu) Empty() bool {
	return len(m) == 0
}

// Dates returns the date keys in ascending order. ISO dates sort
// correctly as plain strings.
func (m DayMenu) Dates() []string {
	dates := make([]string, 0, len(m))
	for d := range m {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return dates
}

type RestaurantMenu struct {
	Name string  `json:"name"`
	Menu DayMenu `json:"menu"`
}

// MenuBatch is the unit of transmission to the backend: one entry per
// restaurant that produced a non-empty menu, in roster order.
type MenuBatch []RestaurantMenu

// BatchRange returns the min and max date keys across the whole batch.
func BatchRange(batch MenuBatch) (start, end string) {
	for _, r := range batch {
		for d := range r.Menu {
			if start == "" || d < start {
				start = d
			}
			if d > end {
				end = d
			}
		}
	}
	return start, end
}
