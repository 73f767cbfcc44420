// Package domain contains the core data types for the trip planner client.
// This package has zero external dependencies and is imported by every other
// internal package (gateway, model, projection, presenter).
package domain

import "time"

// PointType is the kind of trip leg a point represents.
// The set of types is fixed by the remote service.
type PointType string

const (
	Taxi        PointType = "taxi"
	Bus         PointType = "bus"
	Train       PointType = "train"
	Ship        PointType = "ship"
	Drive       PointType = "drive"
	Flight      PointType = "flight"
	CheckIn     PointType = "check-in"
	Sightseeing PointType = "sightseeing"
	Restaurant  PointType = "restaurant"
)

// DefaultPointType is used for drafts and for inbound points that arrive
// without a type.
const DefaultPointType = Flight

// PointTypes lists all valid point types in the order forms present them.
var PointTypes = []PointType{
	Taxi, Bus, Train, Ship, Drive, Flight, CheckIn, Sightseeing, Restaurant,
}

// Valid reports whether t is one of the fixed point types.
func (t PointType) Valid() bool {
	for _, known := range PointTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Point represents a single trip leg.
// A point with an empty ID is a draft: it exists only client-side until the
// remote service assigns an id on create. Points are replaced wholesale on
// update, never patched field by field.
type Point struct {
	ID            string
	Type          PointType
	DestinationID string
	DateFrom      time.Time
	DateTo        time.Time
	BasePrice     int
	IsFavorite    bool
	// OfferIDs holds the ids of selected offers. Must be a subset of the
	// offer ids valid for Type; the form layer enforces this on input.
	OfferIDs []string
}

// IsDraft reports whether the point has not yet been assigned an id by the
// remote service.
func (p Point) IsDraft() bool {
	return p.ID == ""
}

// Duration returns the length of the point's time window.
func (p Point) Duration() time.Duration {
	return p.DateTo.Sub(p.DateFrom)
}

// HasOffer reports whether the offer with the given id is selected.
func (p Point) HasOffer(id string) bool {
	for _, selected := range p.OfferIDs {
		if selected == id {
			return true
		}
	}
	return false
}

// NewDraft returns a blank point to seed the "new point" form:
// default type, a one-hour window starting at now, and no destination.
func NewDraft(now time.Time) Point {
	return Point{
		Type:     DefaultPointType,
		DateFrom: now,
		DateTo:   now.Add(time.Hour),
		OfferIDs: []string{},
	}
}
