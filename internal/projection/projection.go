// Package projection derives the visible point list from source state.
// Project is a pure function: the board never mutates the list it shows,
// it only recomputes it from the collection, filter, and sort models.
package projection

import (
	"cmp"
	"slices"
	"time"

	"github.com/mkraev/trip-planner/internal/domain"
)

// Project applies the filter predicate (evaluated against now), then the
// stable comparator for the sort type, and returns a new ordered slice.
// The input is never mutated. Ties keep their input order, so repeated
// calls with unchanged inputs yield the same result; the wall clock only
// matters for the time-relative filters.
func Project(points []domain.Point, filter domain.FilterType, sort domain.SortType, now time.Time) []domain.Point {
	out := make([]domain.Point, 0, len(points))
	for _, p := range points {
		if filter.Matches(p, now) {
			out = append(out, p)
		}
	}

	switch sort {
	case domain.SortDay:
		slices.SortStableFunc(out, func(a, b domain.Point) int {
			return a.DateFrom.Compare(b.DateFrom)
		})
	case domain.SortTime:
		slices.SortStableFunc(out, func(a, b domain.Point) int {
			return cmp.Compare(b.Duration(), a.Duration())
		})
	case domain.SortPrice:
		slices.SortStableFunc(out, func(a, b domain.Point) int {
			return cmp.Compare(b.BasePrice, a.BasePrice)
		})
	default:
		// SortEvent and SortOffer define no ordering: input order stands.
	}
	return out
}
