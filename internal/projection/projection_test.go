package projection_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkraev/trip-planner/internal/domain"
	"github.com/mkraev/trip-planner/internal/projection"
	"github.com/mkraev/trip-planner/testutil"
)

func ids(points []domain.Point) []string {
	out := make([]string, 0, len(points))
	for _, p := range points {
		out = append(out, p.ID)
	}
	return out
}

// ---- sorting ---------------------------------------------------------------

func TestProject_SortDay(t *testing.T) {
	// Input order 1, 2, 3; by DateFrom ascending: 1 (Jan 10), 3 (Jan 12), 2 (Feb 1).
	got := projection.Project(testutil.Points(), domain.FilterEverything, domain.SortDay, testutil.Now)

	assert.Equal(t, []string{"1", "3", "2"}, ids(got))
}

func TestProject_SortTime(t *testing.T) {
	// By duration descending: 3 (24h), 2 (5h), 1 (1h).
	got := projection.Project(testutil.Points(), domain.FilterEverything, domain.SortTime, testutil.Now)

	assert.Equal(t, []string{"3", "2", "1"}, ids(got))
}

func TestProject_SortPrice(t *testing.T) {
	// By base price descending: 3 (600), 2 (160), 1 (20).
	got := projection.Project(testutil.Points(), domain.FilterEverything, domain.SortPrice, testutil.Now)

	assert.Equal(t, []string{"3", "2", "1"}, ids(got))
}

func TestProject_DisplayOnlySortsKeepInputOrder(t *testing.T) {
	for _, sort := range []domain.SortType{domain.SortEvent, domain.SortOffer} {
		got := projection.Project(testutil.Points(), domain.FilterEverything, sort, testutil.Now)
		assert.Equal(t, []string{"1", "2", "3"}, ids(got), "sort %s", sort)
	}
}

func TestProject_StableOnEqualKeys(t *testing.T) {
	when := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	points := []domain.Point{
		{ID: "a", DateFrom: when, DateTo: when.Add(time.Hour), BasePrice: 100},
		{ID: "b", DateFrom: when, DateTo: when.Add(time.Hour), BasePrice: 100},
		{ID: "c", DateFrom: when, DateTo: when.Add(time.Hour), BasePrice: 100},
	}

	for _, sort := range []domain.SortType{domain.SortDay, domain.SortTime, domain.SortPrice} {
		got := projection.Project(points, domain.FilterEverything, sort, testutil.Now)
		assert.Equal(t, []string{"a", "b", "c"}, ids(got), "sort %s", sort)
	}
}

// ---- filtering -------------------------------------------------------------

func TestProject_FilterMembership(t *testing.T) {
	// No projected point may fail its filter's predicate.
	for _, filter := range domain.FilterTypes {
		got := projection.Project(testutil.Points(), filter, domain.SortDay, testutil.Now)
		for _, p := range got {
			assert.True(t, filter.Matches(p, testutil.Now), "filter %s leaked point %s", filter, p.ID)
		}
	}
}

func TestProject_PresentEmptyFutureExact(t *testing.T) {
	// Now sits in the gap between the fixture points: Present is empty,
	// Future is exactly the February point.
	present := projection.Project(testutil.Points(), domain.FilterPresent, domain.SortDay, testutil.Now)
	assert.Empty(t, present)

	future := projection.Project(testutil.Points(), domain.FilterFuture, domain.SortDay, testutil.Now)
	assert.Equal(t, []string{"2"}, ids(future))
}

// ---- purity ----------------------------------------------------------------

func TestProject_DoesNotMutateInput(t *testing.T) {
	input := testutil.Points()

	_ = projection.Project(input, domain.FilterEverything, domain.SortPrice, testutil.Now)

	assert.Equal(t, testutil.Points(), input)
}

func TestProject_Deterministic(t *testing.T) {
	first := projection.Project(testutil.Points(), domain.FilterPast, domain.SortTime, testutil.Now)
	second := projection.Project(testutil.Points(), domain.FilterPast, domain.SortTime, testutil.Now)

	require.Equal(t, first, second)
}
