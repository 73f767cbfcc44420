package domain

import "time"

// FilterType selects which points are visible in the board list.
type FilterType string

const (
	// FilterEverything shows all points.
	FilterEverything FilterType = "everything"
	// FilterFuture shows points that start after now.
	FilterFuture FilterType = "future"
	// FilterPresent shows points whose window contains now.
	// Both boundaries are inclusive: a point starting or ending exactly at
	// now is present, not future or past.
	FilterPresent FilterType = "present"
	// FilterPast shows points that ended before now.
	FilterPast FilterType = "past"
)

// FilterTypes lists all filters in the order the UI presents them.
var FilterTypes = []FilterType{FilterEverything, FilterFuture, FilterPresent, FilterPast}

// Matches reports whether the point passes this filter at the given moment.
// FilterEverything always matches; an unknown filter matches nothing.
func (f FilterType) Matches(p Point, now time.Time) bool {
	switch f {
	case FilterEverything:
		return true
	case FilterFuture:
		return p.DateFrom.After(now)
	case FilterPresent:
		return !p.DateFrom.After(now) && !p.DateTo.Before(now)
	case FilterPast:
		return p.DateTo.Before(now)
	}
	return false
}

// AvailableFilters reports which filters currently match at least one point.
// FilterEverything is always available. The UI uses this to disable filter
// options that would show an empty list.
func AvailableFilters(points []Point, now time.Time) map[FilterType]bool {
	available := map[FilterType]bool{FilterEverything: true}
	for _, f := range []FilterType{FilterFuture, FilterPresent, FilterPast} {
		for _, p := range points {
			if f.Matches(p, now) {
				available[f] = true
				break
			}
		}
	}
	return available
}
