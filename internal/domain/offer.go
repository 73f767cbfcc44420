package domain

// Offer is a priced add-on available for points of a particular type.
type Offer struct {
	ID    string
	Title string
	Price int
}

// OfferGroup holds all offers available for one point type.
// Groups are loaded once from the remote service and are immutable afterwards.
type OfferGroup struct {
	Type   PointType
	Offers []Offer
}
