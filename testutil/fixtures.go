// Package testutil provides shared fixtures for tests across packages.
// The datasets are deterministic: fixed ids, fixed dates in January and
// February 2024, so time-relative assertions can pin "now" between them.
package testutil

import (
	"time"

	"github.com/mkraev/trip-planner/internal/domain"
)

// Now is a moment strictly between the past and future fixture points.
var Now = time.Date(2024, 1, 20, 12, 0, 0, 0, time.UTC)

// Points returns three points: "1" in the past, "3" in the past with a
// long duration and high price, "2" in the future. All sort keys are
// distinct so ordering assertions are unambiguous.
func Points() []domain.Point {
	return []domain.Point{
		{
			ID:            "1",
			Type:          domain.Taxi,
			DestinationID: "amsterdam",
			DateFrom:      time.Date(2024, 1, 10, 10, 0, 0, 0, time.UTC),
			DateTo:        time.Date(2024, 1, 10, 11, 0, 0, 0, time.UTC),
			BasePrice:     20,
			OfferIDs:      []string{"taxi-uber"},
		},
		{
			ID:            "2",
			Type:          domain.Flight,
			DestinationID: "chamonix",
			DateFrom:      time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC),
			DateTo:        time.Date(2024, 2, 1, 14, 0, 0, 0, time.UTC),
			BasePrice:     160,
			OfferIDs:      []string{"flight-luggage"},
		},
		{
			ID:            "3",
			Type:          domain.CheckIn,
			DestinationID: "geneva",
			DateFrom:      time.Date(2024, 1, 12, 12, 0, 0, 0, time.UTC),
			DateTo:        time.Date(2024, 1, 13, 12, 0, 0, 0, time.UTC),
			BasePrice:     600,
			OfferIDs:      []string{},
		},
	}
}

// Destinations returns the reference destinations the fixture points use.
func Destinations() []domain.Destination {
	return []domain.Destination{
		{ID: "amsterdam", Name: "Amsterdam", Description: "Canal houses and museums.",
			Pictures: []domain.Picture{{Src: "https://example.com/ams-1.jpg", Description: "Amsterdam 1"}}},
		{ID: "chamonix", Name: "Chamonix", Description: "At the foot of Mont Blanc."},
		{ID: "geneva", Name: "Geneva", Description: "On the shore of Lake Geneva."},
	}
}

// OfferGroups returns offers for the types the fixture points use.
func OfferGroups() []domain.OfferGroup {
	return []domain.OfferGroup{
		{Type: domain.Taxi, Offers: []domain.Offer{
			{ID: "taxi-uber", Title: "Order Uber", Price: 20},
			{ID: "taxi-business", Title: "Upgrade to a business class", Price: 120},
		}},
		{Type: domain.Flight, Offers: []domain.Offer{
			{ID: "flight-luggage", Title: "Add luggage", Price: 50},
			{ID: "flight-comfort", Title: "Switch to comfort", Price: 80},
		}},
		{Type: domain.CheckIn, Offers: []domain.Offer{
			{ID: "checkin-breakfast", Title: "Add breakfast", Price: 50},
		}},
	}
}
