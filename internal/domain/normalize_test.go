package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mkraev/trip-planner/internal/domain"
)

func basePoint() domain.Point {
	return domain.Point{
		ID:            "1",
		Type:          domain.Flight,
		DestinationID: "amsterdam",
		DateFrom:      time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC),
		DateTo:        time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
		BasePrice:     100,
		OfferIDs:      []string{},
	}
}

// ---- Normalize tests -------------------------------------------------------

func TestNormalize_ValidPointUnchanged(t *testing.T) {
	p := basePoint()

	got := domain.Normalize(p)

	assert.Equal(t, p, got)
}

func TestNormalize_PriceFlooredAtOne(t *testing.T) {
	p := basePoint()
	p.BasePrice = 0

	got := domain.Normalize(p)

	assert.Equal(t, 1, got.BasePrice)
}

func TestNormalize_NegativePriceFlooredAtOne(t *testing.T) {
	p := basePoint()
	p.BasePrice = -50

	got := domain.Normalize(p)

	assert.Equal(t, 1, got.BasePrice)
}

func TestNormalize_ReversedDatesCorrected(t *testing.T) {
	p := basePoint()
	p.DateTo = p.DateFrom.Add(-time.Hour)

	got := domain.Normalize(p)

	assert.Equal(t, p.DateFrom.Add(time.Hour), got.DateTo)
}

func TestNormalize_EqualDatesCorrected(t *testing.T) {
	p := basePoint()
	p.DateTo = p.DateFrom

	got := domain.Normalize(p)

	assert.Equal(t, p.DateFrom.Add(time.Hour), got.DateTo)
}

func TestNormalize_UnknownTypeDefaultsToFlight(t *testing.T) {
	p := basePoint()
	p.Type = "zeppelin"

	got := domain.Normalize(p)

	assert.Equal(t, domain.Flight, got.Type)
}

func TestNormalize_NilOffersBecomeEmpty(t *testing.T) {
	p := basePoint()
	p.OfferIDs = nil

	got := domain.Normalize(p)

	assert.NotNil(t, got.OfferIDs)
	assert.Empty(t, got.OfferIDs)
}

func TestNormalize_DoesNotMutateInput(t *testing.T) {
	p := basePoint()
	p.BasePrice = 0

	_ = domain.Normalize(p)

	assert.Equal(t, 0, p.BasePrice)
}

// ---- ParsePrice tests ------------------------------------------------------

func TestParsePrice(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"160", 160},
		{" 42 ", 42},
		{"0", 0},
		{"abc", 0},
		{"", 0},
		{"-5", 0},
		{"12.5", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, domain.ParsePrice(tt.raw), "input %q", tt.raw)
	}
}
