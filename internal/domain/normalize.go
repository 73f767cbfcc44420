package domain

import (
	"strconv"
	"strings"
	"time"
)

// Normalize repairs a point for an outbound write so the payload always
// satisfies the remote service's invariants:
//   - Type defaults to DefaultPointType when absent or unknown.
//   - BasePrice is floored at 1.
//   - DateTo is pushed to DateFrom + 1h when the window is empty or reversed.
//   - OfferIDs is never nil.
//
// The input is not mutated; a corrected copy is returned.
func Normalize(p Point) Point {
	if !p.Type.Valid() {
		p.Type = DefaultPointType
	}
	if p.BasePrice < 1 {
		p.BasePrice = 1
	}
	if !p.DateFrom.Before(p.DateTo) {
		p.DateTo = p.DateFrom.Add(time.Hour)
	}
	if p.OfferIDs == nil {
		p.OfferIDs = []string{}
	}
	return p
}

// ParsePrice converts raw user input into a base price.
// Invalid or negative input yields 0, the inbound default; Normalize floors
// it to 1 before the value ever reaches the wire.
func ParsePrice(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
