package domain

// SortType selects the ordering of the visible point list.
type SortType string

const (
	// SortDay orders by DateFrom ascending. This is the default.
	SortDay SortType = "day"
	// SortEvent is display-only: no reordering is defined for it.
	SortEvent SortType = "event"
	// SortTime orders by duration (DateTo - DateFrom) descending.
	SortTime SortType = "time"
	// SortPrice orders by BasePrice descending.
	SortPrice SortType = "price"
	// SortOffer is display-only: no reordering is defined for it.
	SortOffer SortType = "offer"
)

// SortTypes lists all sort options in the order the UI presents them.
var SortTypes = []SortType{SortDay, SortEvent, SortTime, SortPrice, SortOffer}

// DefaultSortType is applied on load and whenever the filter changes.
const DefaultSortType = SortDay

// Reorders reports whether this sort type defines an ordering.
// SortEvent and SortOffer are selectable in the UI but leave the list in
// input order.
func (s SortType) Reorders() bool {
	return s == SortDay || s == SortTime || s == SortPrice
}
