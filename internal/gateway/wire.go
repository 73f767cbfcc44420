package gateway

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/mkraev/trip-planner/internal/domain"
)

// wirePoint is the snake_case shape points travel in on the wire, distinct
// from the camelCase in-memory domain.Point. The adapter owns the
// translation in both directions.
//
// BasePrice is kept raw on the way in because the service has been observed
// to deliver it as a number, a quoted number, or garbage; decodePrice maps
// anything unusable to the inbound default of 0.
type wirePoint struct {
	ID          string          `json:"id,omitempty"`
	Type        string          `json:"type"`
	Destination string          `json:"destination"`
	DateFrom    time.Time       `json:"date_from"`
	DateTo      time.Time       `json:"date_to"`
	BasePrice   json.RawMessage `json:"base_price"`
	IsFavorite  bool            `json:"is_favorite"`
	Offers      []string        `json:"offers"`
}

type wirePicture struct {
	Src         string `json:"src"`
	Description string `json:"description"`
}

type wireDestination struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Pictures    []wirePicture `json:"pictures"`
}

type wireOffer struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Price int    `json:"price"`
}

type wireOfferGroup struct {
	Type   string      `json:"type"`
	Offers []wireOffer `json:"offers"`
}

// toWire converts a point for an outbound write, applying the normalization
// rules first: price floored at 1, reversed dates corrected, default type,
// offers never null.
func toWire(p domain.Point) wirePoint {
	p = domain.Normalize(p)
	return wirePoint{
		ID:          p.ID,
		Type:        string(p.Type),
		Destination: p.DestinationID,
		DateFrom:    p.DateFrom.UTC(),
		DateTo:      p.DateTo.UTC(),
		BasePrice:   json.RawMessage(strconv.Itoa(p.BasePrice)),
		IsFavorite:  p.IsFavorite,
		Offers:      p.OfferIDs,
	}
}

// fromWire converts an inbound point to the in-memory shape.
// Missing or unknown types default to flight; a null offers array becomes an
// empty slice so the rest of the client never sees nil.
func fromWire(w wirePoint) domain.Point {
	t := domain.PointType(w.Type)
	if !t.Valid() {
		t = domain.DefaultPointType
	}
	offers := w.Offers
	if offers == nil {
		offers = []string{}
	}
	return domain.Point{
		ID:            w.ID,
		Type:          t,
		DestinationID: w.Destination,
		DateFrom:      w.DateFrom,
		DateTo:        w.DateTo,
		BasePrice:     decodePrice(w.BasePrice),
		IsFavorite:    w.IsFavorite,
		OfferIDs:      offers,
	}
}

// decodePrice extracts an integer base price from a raw JSON value.
// Accepts a JSON number or a quoted number; anything else (missing, null,
// "abc", negative) yields 0, the inbound default-display value.
func decodePrice(raw json.RawMessage) int {
	if len(raw) == 0 {
		return 0
	}
	var n int
	if err := json.Unmarshal(raw, &n); err == nil {
		if n < 0 {
			return 0
		}
		return n
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return domain.ParsePrice(s)
	}
	return 0
}

func fromWireDestination(w wireDestination) domain.Destination {
	pictures := make([]domain.Picture, 0, len(w.Pictures))
	for _, pic := range w.Pictures {
		pictures = append(pictures, domain.Picture{Src: pic.Src, Description: pic.Description})
	}
	return domain.Destination{
		ID:          w.ID,
		Name:        w.Name,
		Description: w.Description,
		Pictures:    pictures,
	}
}

func fromWireOfferGroup(w wireOfferGroup) domain.OfferGroup {
	offers := make([]domain.Offer, 0, len(w.Offers))
	for _, o := range w.Offers {
		offers = append(offers, domain.Offer{ID: o.ID, Title: o.Title, Price: o.Price})
	}
	return domain.OfferGroup{Type: domain.PointType(w.Type), Offers: offers}
}
