// Package summary computes the trip header line: the route title, the trip
// period, and the total cost of all points including their selected offers.
package summary

import (
	"strings"
	"time"

	"github.com/mkraev/trip-planner/internal/domain"
	"github.com/mkraev/trip-planner/internal/projection"
)

// Summary is the computed trip header.
type Summary struct {
	// Route is the destination names in day order, e.g.
	// "Amsterdam — Chamonix — Geneva". With more than three destinations
	// the middle is elided: "Amsterdam — ... — Geneva".
	Route string
	// Period is the trip's date span, e.g. "01 Jun — 15 Jun".
	Period string
	// TotalCost sums every point's base price plus its selected offers.
	TotalCost int
}

// Build derives a Summary from plain data. An empty collection yields the
// zero Summary.
func Build(points []domain.Point, destinations []domain.Destination, groups []domain.OfferGroup) Summary {
	if len(points) == 0 {
		return Summary{}
	}

	ordered := projection.Project(points, domain.FilterEverything, domain.SortDay, time.Time{})

	names := make(map[string]string, len(destinations))
	for _, d := range destinations {
		names[d.ID] = d.Name
	}
	offerPrices := make(map[domain.PointType]map[string]int, len(groups))
	for _, g := range groups {
		prices := make(map[string]int, len(g.Offers))
		for _, o := range g.Offers {
			prices[o.ID] = o.Price
		}
		offerPrices[g.Type] = prices
	}

	var stops []string
	total := 0
	for _, p := range ordered {
		if name := names[p.DestinationID]; name != "" {
			// Consecutive repeats collapse: a flight into and a check-in at
			// the same destination is one stop.
			if len(stops) == 0 || stops[len(stops)-1] != name {
				stops = append(stops, name)
			}
		}
		total += p.BasePrice
		for _, id := range p.OfferIDs {
			total += offerPrices[p.Type][id]
		}
	}

	return Summary{
		Route:     routeTitle(stops),
		Period:    periodTitle(ordered[0].DateFrom, ordered[len(ordered)-1].DateTo),
		TotalCost: total,
	}
}

func routeTitle(stops []string) string {
	if len(stops) > 3 {
		stops = []string{stops[0], "...", stops[len(stops)-1]}
	}
	return strings.Join(stops, " — ")
}

func periodTitle(from, to time.Time) string {
	if from.IsZero() {
		return ""
	}
	return from.Format("02 Jan") + " — " + to.Format("02 Jan")
}
