// Package model holds the client-side models: the mutable point collection,
// the read-only destination and offer caches, and the filter/sort selections.
// Models are the single source of truth; presenters never mutate data
// directly — they dispatch through the collection model and react to its
// notifications. Models are not safe for concurrent use: the host serializes
// all calls on one goroutine, mirroring a UI event loop.
package model

import (
	"context"
	"fmt"
	"slices"

	"github.com/mkraev/trip-planner/internal/domain"
	"github.com/mkraev/trip-planner/internal/event"
)

// PointsGateway defines the remote operations the point collection depends
// on. Defining the interface here (in the consumer package) lets tests
// inject a mock without any HTTP.
type PointsGateway interface {
	FetchPoints(ctx context.Context) ([]domain.Point, error)
	CreatePoint(ctx context.Context, draft domain.Point) (domain.Point, error)
	UpdatePoint(ctx context.Context, point domain.Point) (domain.Point, error)
	DeletePoint(ctx context.Context, id string) error
}

// Points owns the mutable list of trip points. All writes go through the
// gateway first; the in-memory collection changes only after the service
// confirms, so a failed write leaves the collection exactly as it was.
// Optimistic "saving" indication is a presenter concern, not a model one.
type Points struct {
	gw       PointsGateway
	notifier *event.Notifier
	points   []domain.Point
}

// NewPoints constructs an empty collection backed by the given gateway.
func NewPoints(gw PointsGateway) *Points {
	return &Points{gw: gw, notifier: event.NewNotifier()}
}

// Subscribe registers a handler for collection notifications and returns an
// unsubscribe function.
func (m *Points) Subscribe(h event.Handler) func() {
	return m.notifier.Subscribe(h)
}

// Points returns a copy of the collection. Callers must treat the view they
// build from it as derived state, never a second source of truth.
func (m *Points) Points() []domain.Point {
	return slices.Clone(m.points)
}

// ByID returns the point with the given id, if the collection holds it.
func (m *Points) ByID(id string) (domain.Point, bool) {
	for _, p := range m.points {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Point{}, false
}

// Init loads the collection from the remote service. On success the
// collection is replaced and ScopeInit published; on failure the collection
// is emptied, ScopeError published, and the load failure returned so the
// caller can decide whether to proceed in degraded mode.
func (m *Points) Init(ctx context.Context) error {
	points, err := m.gw.FetchPoints(ctx)
	if err != nil {
		m.points = nil
		m.notifier.Notify(domain.ScopeError, nil)
		return fmt.Errorf("model.Points.Init: %w", err)
	}
	m.points = points
	m.notifier.Notify(domain.ScopeInit, nil)
	return nil
}

// Create sends the draft to the service. On success the server-assigned
// point is inserted at the front of the collection and the given scope
// published. On failure nothing changes and the error is returned — the
// draft is not retained here; keeping the form open for a retry is the
// draft presenter's job.
func (m *Points) Create(ctx context.Context, scope domain.UpdateScope, draft domain.Point) error {
	created, err := m.gw.CreatePoint(ctx, draft)
	if err != nil {
		return fmt.Errorf("model.Points.Create: %w", err)
	}
	m.points = append([]domain.Point{created}, m.points...)
	m.notifier.Notify(scope, created)
	return nil
}

// Update sends the full point to the service and, on success, replaces the
// matching entry wholesale and publishes the given scope (ScopePatch for
// favorite-only changes, ScopeMinor otherwise).
// Updating an id the collection does not hold is a contract violation.
func (m *Points) Update(ctx context.Context, scope domain.UpdateScope, point domain.Point) error {
	idx := slices.IndexFunc(m.points, func(p domain.Point) bool { return p.ID == point.ID })
	if idx < 0 {
		return fmt.Errorf("model.Points.Update: %w: unknown point %q", domain.ErrPrecondition, point.ID)
	}
	saved, err := m.gw.UpdatePoint(ctx, point)
	if err != nil {
		return fmt.Errorf("model.Points.Update: %w", err)
	}
	m.points[idx] = saved
	m.notifier.Notify(scope, saved)
	return nil
}

// Delete removes the point with the given id after the service confirms.
func (m *Points) Delete(ctx context.Context, scope domain.UpdateScope, id string) error {
	idx := slices.IndexFunc(m.points, func(p domain.Point) bool { return p.ID == id })
	if idx < 0 {
		return fmt.Errorf("model.Points.Delete: %w: unknown point %q", domain.ErrPrecondition, id)
	}
	if err := m.gw.DeletePoint(ctx, id); err != nil {
		return fmt.Errorf("model.Points.Delete: %w", err)
	}
	deleted := m.points[idx]
	m.points = append(m.points[:idx:idx], m.points[idx+1:]...)
	m.notifier.Notify(scope, deleted)
	return nil
}
