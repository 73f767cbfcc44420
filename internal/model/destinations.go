package model

import (
	"context"
	"fmt"
	"slices"

	"github.com/mkraev/trip-planner/internal/domain"
	"github.com/mkraev/trip-planner/internal/event"
)

// DestinationsGateway is the remote operation the destination cache needs.
type DestinationsGateway interface {
	FetchDestinations(ctx context.Context) ([]domain.Destination, error)
}

// Destinations is a read-only cache of the destination reference data,
// loaded once at startup. Lookups never fail: a missing id yields the zero
// value and ok=false.
type Destinations struct {
	gw       DestinationsGateway
	notifier *event.Notifier
	list     []domain.Destination
	byID     map[string]domain.Destination
}

// NewDestinations constructs an empty cache backed by the given gateway.
func NewDestinations(gw DestinationsGateway) *Destinations {
	return &Destinations{gw: gw, notifier: event.NewNotifier(), byID: map[string]domain.Destination{}}
}

// Subscribe registers a handler for the Init/Error load notification.
func (m *Destinations) Subscribe(h event.Handler) func() {
	return m.notifier.Subscribe(h)
}

// Init fetches the dataset once. On failure the cache stays empty,
// ScopeError is published, and the load failure is returned so the caller
// can decide whether to continue in degraded mode.
func (m *Destinations) Init(ctx context.Context) error {
	destinations, err := m.gw.FetchDestinations(ctx)
	if err != nil {
		m.list = nil
		m.byID = map[string]domain.Destination{}
		m.notifier.Notify(domain.ScopeError, nil)
		return fmt.Errorf("model.Destinations.Init: %w", err)
	}
	m.list = destinations
	m.byID = make(map[string]domain.Destination, len(destinations))
	for _, d := range destinations {
		m.byID[d.ID] = d
	}
	m.notifier.Notify(domain.ScopeInit, nil)
	return nil
}

// ByID looks up a destination. The zero value and false mean "unknown id";
// callers render an unnamed destination rather than failing.
func (m *Destinations) ByID(id string) (domain.Destination, bool) {
	d, ok := m.byID[id]
	return d, ok
}

// All returns a copy of the dataset in load order, for destination pickers.
func (m *Destinations) All() []domain.Destination {
	return slices.Clone(m.list)
}
