package model

import (
	"context"
	"fmt"
	"slices"

	"github.com/mkraev/trip-planner/internal/domain"
	"github.com/mkraev/trip-planner/internal/event"
)

// OffersGateway is the remote operation the offer cache needs.
type OffersGateway interface {
	FetchOffers(ctx context.Context) ([]domain.OfferGroup, error)
}

// Offers is a read-only cache of the offer reference data, grouped by point
// type and loaded once at startup.
type Offers struct {
	gw       OffersGateway
	notifier *event.Notifier
	groups   []domain.OfferGroup
	byType   map[domain.PointType][]domain.Offer
}

// NewOffers constructs an empty cache backed by the given gateway.
func NewOffers(gw OffersGateway) *Offers {
	return &Offers{gw: gw, notifier: event.NewNotifier(), byType: map[domain.PointType][]domain.Offer{}}
}

// Subscribe registers a handler for the Init/Error load notification.
func (m *Offers) Subscribe(h event.Handler) func() {
	return m.notifier.Subscribe(h)
}

// Init fetches the dataset once; same degraded-mode contract as
// Destinations.Init.
func (m *Offers) Init(ctx context.Context) error {
	groups, err := m.gw.FetchOffers(ctx)
	if err != nil {
		m.groups = nil
		m.byType = map[domain.PointType][]domain.Offer{}
		m.notifier.Notify(domain.ScopeError, nil)
		return fmt.Errorf("model.Offers.Init: %w", err)
	}
	m.groups = groups
	m.byType = make(map[domain.PointType][]domain.Offer, len(groups))
	for _, g := range groups {
		m.byType[g.Type] = g.Offers
	}
	m.notifier.Notify(domain.ScopeInit, nil)
	return nil
}

// Groups returns a copy of the raw dataset in load order.
func (m *Offers) Groups() []domain.OfferGroup {
	return slices.Clone(m.groups)
}

// ByType returns a copy of the offers available for the given point type.
// Unknown types yield an empty slice, never nil.
func (m *Offers) ByType(t domain.PointType) []domain.Offer {
	offers := m.byType[t]
	if offers == nil {
		return []domain.Offer{}
	}
	return slices.Clone(offers)
}

// Selected resolves a point's selected offer ids against the offers valid
// for its type, preserving catalog order. Ids that are not valid for the
// type are dropped.
func (m *Offers) Selected(p domain.Point) []domain.Offer {
	selected := []domain.Offer{}
	for _, offer := range m.byType[p.Type] {
		if p.HasOffer(offer.ID) {
			selected = append(selected, offer)
		}
	}
	return selected
}
