package stub

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// seed fills the stub with a small itinerary: three destinations, offers
// for the common types, and a handful of points spread across past,
// present, and future so every filter has something to show.
func (s *Server) seed() {
	s.destinations = []destination{
		{
			ID:          "amsterdam",
			Name:        "Amsterdam",
			Description: "Amsterdam, famous for its canal houses and museums.",
			Pictures:    seedPictures("amsterdam", 2),
		},
		{
			ID:          "chamonix",
			Name:        "Chamonix",
			Description: "Chamonix, a mountain resort at the foot of Mont Blanc.",
			Pictures:    seedPictures("chamonix", 3),
		},
		{
			ID:          "geneva",
			Name:        "Geneva",
			Description: "Geneva, a city on the shore of Lake Geneva.",
			Pictures:    seedPictures("geneva", 1),
		},
	}

	s.offers = []offerGroup{
		{Type: "taxi", Offers: []offer{
			{ID: "taxi-uber", Title: "Order Uber", Price: 20},
			{ID: "taxi-business", Title: "Upgrade to a business class", Price: 120},
		}},
		{Type: "flight", Offers: []offer{
			{ID: "flight-luggage", Title: "Add luggage", Price: 50},
			{ID: "flight-comfort", Title: "Switch to comfort", Price: 80},
			{ID: "flight-meal", Title: "Add meal", Price: 15},
		}},
		{Type: "drive", Offers: []offer{
			{ID: "drive-rent", Title: "Rent a car", Price: 200},
		}},
		{Type: "check-in", Offers: []offer{
			{ID: "checkin-breakfast", Title: "Add breakfast", Price: 50},
		}},
		{Type: "sightseeing", Offers: []offer{}},
	}

	now := time.Now().UTC().Truncate(time.Hour)
	s.points = []point{
		seedPoint("flight", "amsterdam", now.AddDate(0, 0, -14), 5*time.Hour, 160, true, "flight-luggage"),
		seedPoint("check-in", "chamonix", now.AddDate(0, 0, -13), 18*time.Hour, 600, false, "checkin-breakfast"),
		seedPoint("sightseeing", "chamonix", now.Add(-2*time.Hour), 6*time.Hour, 50, false),
		seedPoint("taxi", "geneva", now.AddDate(0, 0, 7), time.Hour, 20, false, "taxi-uber"),
		seedPoint("drive", "geneva", now.AddDate(0, 0, 8), 3*time.Hour, 110, true),
	}
}

func seedPoint(pointType, dest string, from time.Time, d time.Duration, price int, favorite bool, offerIDs ...string) point {
	if offerIDs == nil {
		offerIDs = []string{}
	}
	return point{
		ID:          uuid.NewString(),
		Type:        pointType,
		Destination: dest,
		DateFrom:    from.Format(time.RFC3339),
		DateTo:      from.Add(d).Format(time.RFC3339),
		BasePrice:   price,
		IsFavorite:  favorite,
		Offers:      offerIDs,
	}
}

func seedPictures(dest string, n int) []picture {
	pictures := make([]picture, 0, n)
	for i := 1; i <= n; i++ {
		pictures = append(pictures, picture{
			Src:         fmt.Sprintf("https://loremflickr.com/248/152?random=%s-%d", dest, i),
			Description: fmt.Sprintf("%s photo %d", dest, i),
		})
	}
	return pictures
}
