package presenter

import (
	"context"
	"fmt"
	"time"

	"github.com/mkraev/trip-planner/internal/domain"
	"github.com/mkraev/trip-planner/internal/event"
	"github.com/mkraev/trip-planner/internal/projection"
)

// PointStore is the slice of the collection model the list presenter uses.
type PointStore interface {
	Points() []domain.Point
	Create(ctx context.Context, scope domain.UpdateScope, draft domain.Point) error
	Update(ctx context.Context, scope domain.UpdateScope, point domain.Point) error
	Delete(ctx context.Context, scope domain.UpdateScope, id string) error
	Subscribe(h event.Handler) func()
}

// DestinationSource is the slice of the destination model the presenters use.
type DestinationSource interface {
	ByID(id string) (domain.Destination, bool)
	All() []domain.Destination
}

// OfferSource is the slice of the offer model the presenters use.
type OfferSource interface {
	ByType(t domain.PointType) []domain.Offer
	Selected(p domain.Point) []domain.Offer
}

// FilterState is the slice of the filter model the list presenter uses.
type FilterState interface {
	Value() domain.FilterType
	Set(value domain.FilterType, silent bool)
	Subscribe(h event.Handler) func()
}

// SortState is the slice of the sort model the list presenter uses.
type SortState interface {
	Value() domain.SortType
	Set(value domain.SortType, silent bool)
	Subscribe(h event.Handler) func()
}

// Deps bundles everything a List needs. Board and Escape come from the
// rendering host; the rest are the models.
type Deps struct {
	Board        BoardView
	Escape       EscapeBinder
	Points       PointStore
	Destinations DestinationSource
	Offers       OfferSource
	Filter       FilterState
	Sort         SortState
	// Now supplies the moment time-relative filters evaluate against.
	// Defaults to time.Now.
	Now func() time.Time
}

// List owns one Point presenter per projected point plus at most one Draft.
// On every model notification it re-projects, diffs against the ids it
// currently holds, and reconciles: stale presenters are destroyed, new ones
// constructed, survivors re-inited with fresh data.
type List struct {
	ctx   context.Context
	board BoardView
	esc   EscapeBinder

	points PointStore
	filter FilterState
	sort   SortState
	refs   referenceLookup
	now    func() time.Time

	items map[string]*Point
	draft *Draft

	loading    bool
	loadFailed bool
	unsubs     []func()
}

// NewList wires the presenter to its models and shows the loading
// placeholder; the board renders for real once the collection publishes
// ScopeInit or ScopeError. ctx is attached to every write the presenter
// dispatches.
func NewList(ctx context.Context, deps Deps) *List {
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	l := &List{
		ctx:     ctx,
		board:   deps.Board,
		esc:     deps.Escape,
		points:  deps.Points,
		filter:  deps.Filter,
		sort:    deps.Sort,
		refs:    referenceLookup{destinations: deps.Destinations, offers: deps.Offers},
		now:     now,
		items:   map[string]*Point{},
		loading: true,
	}
	l.unsubs = append(l.unsubs,
		deps.Points.Subscribe(l.onPointsEvent),
		deps.Filter.Subscribe(l.onFilterEvent),
		deps.Sort.Subscribe(l.onSortEvent),
	)
	l.board.ShowLoading()
	return l
}

// Close tears the presenter down: child presenters destroyed, model
// subscriptions released. The List must not be used afterwards.
func (l *List) Close() {
	for _, unsub := range l.unsubs {
		unsub()
	}
	l.unsubs = nil
	if l.draft != nil {
		l.draft.Destroy()
	}
	for id, item := range l.items {
		item.Destroy()
		delete(l.items, id)
	}
}

// IsCreating reports whether the draft form is open. The filter/sort UI
// uses it to veto criteria changes mid-draft.
func (l *List) IsCreating() bool {
	return l.draft != nil
}

// StartCreating opens the "new point" form. It forces every open editor
// back to its card, resets the filter to Everything (with the usual Major
// cascade) so the form is visible, and then attaches the draft. Returns
// false when the draft cannot open: a write is in flight on some item.
// Calling it while the draft is already open is a no-op success.
func (l *List) StartCreating() bool {
	if l.draft != nil {
		return true
	}
	for _, item := range l.items {
		if item.Mode() == ModeSaving || item.Mode() == ModeDeleting {
			return false
		}
	}
	for _, item := range l.items {
		item.ResetView()
	}
	if l.filter.Value() != domain.FilterEverything {
		l.filter.Set(domain.FilterEverything, false)
	}
	l.draft = newDraft(l.board, l.esc, l, l.refs, l.now(), func() {
		l.draft = nil
		l.refreshPlaceholder()
	})
	l.refreshPlaceholder()
	return true
}

// RequestExclusiveEdit implements Coordinator. Granting resets every other
// open editor first, so at most one form exists when it returns. Denied
// while the draft is open: the draft must close before a point can edit.
func (l *List) RequestExclusiveEdit(id string) bool {
	if l.draft != nil {
		return false
	}
	for otherID, item := range l.items {
		if otherID != id {
			item.ResetView()
		}
	}
	return true
}

// Dispatch implements Coordinator: it forwards the intent to the collection
// model. The model notifies before this returns, so the board has already
// reconciled when the originating presenter sees the result.
func (l *List) Dispatch(action domain.UserAction, scope domain.UpdateScope, point domain.Point) error {
	switch action {
	case domain.ActionCreate:
		return l.points.Create(l.ctx, scope, point)
	case domain.ActionUpdate:
		return l.points.Update(l.ctx, scope, point)
	case domain.ActionDelete:
		return l.points.Delete(l.ctx, scope, point.ID)
	}
	return fmt.Errorf("presenter.List.Dispatch: %w: unknown action %q", domain.ErrPrecondition, action)
}

func (l *List) onPointsEvent(scope domain.UpdateScope, payload any) {
	switch scope {
	case domain.ScopePatch:
		// Single-field change: re-render just the affected item, no
		// refilter or resort.
		if point, ok := payload.(domain.Point); ok {
			if item, held := l.items[point.ID]; held {
				item.Init(point)
			}
		}
	case domain.ScopeMinor, domain.ScopeMajor:
		l.refresh()
	case domain.ScopeInit:
		l.loading = false
		l.refresh()
	case domain.ScopeError:
		l.loading = false
		l.loadFailed = true
		l.board.ShowLoadError()
	}
}

func (l *List) onFilterEvent(domain.UpdateScope, any) {
	// A filter change invalidates the sort selection; reset it silently —
	// this rebuild is already running.
	l.sort.Set(domain.DefaultSortType, true)
	l.refresh()
}

func (l *List) onSortEvent(domain.UpdateScope, any) {
	l.refresh()
}

// refresh recomputes the projection and reconciles child presenters by id.
func (l *List) refresh() {
	if l.loading || l.loadFailed {
		return
	}

	projected := projection.Project(l.points.Points(), l.filter.Value(), l.sort.Value(), l.now())

	ids := make([]string, 0, len(projected))
	want := make(map[string]struct{}, len(projected))
	for _, p := range projected {
		ids = append(ids, p.ID)
		want[p.ID] = struct{}{}
	}

	for id, item := range l.items {
		if _, keep := want[id]; !keep {
			item.Destroy()
			delete(l.items, id)
		}
	}
	for _, p := range projected {
		if item, held := l.items[p.ID]; held {
			item.Init(p)
		} else {
			l.items[p.ID] = newPoint(l.board, l.esc, l, l.refs, p)
		}
	}
	l.board.Reorder(ids)
	l.refreshPlaceholder()
}

// refreshPlaceholder shows or clears the list placeholder based on the
// current item count and draft state.
func (l *List) refreshPlaceholder() {
	if l.loading || l.loadFailed {
		return
	}
	if len(l.items) == 0 {
		l.board.ShowEmpty(l.filter.Value(), l.IsCreating())
		return
	}
	l.board.ClearPlaceholder()
}

// referenceLookup adapts the two reference models to the single
// ReferenceLookup interface the child presenters take.
type referenceLookup struct {
	destinations DestinationSource
	offers       OfferSource
}

func (r referenceLookup) Destination(id string) (domain.Destination, bool) {
	return r.destinations.ByID(id)
}

func (r referenceLookup) AllDestinations() []domain.Destination {
	return r.destinations.All()
}

func (r referenceLookup) OffersFor(t domain.PointType) []domain.Offer {
	return r.offers.ByType(t)
}

func (r referenceLookup) SelectedOffers(p domain.Point) []domain.Offer {
	return r.offers.Selected(p)
}
