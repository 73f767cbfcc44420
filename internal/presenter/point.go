package presenter

import (
	"github.com/mkraev/trip-planner/internal/domain"
)

// Mode is the point presenter's current state.
type Mode int

const (
	// ModeViewing shows the read-only card. Initial and re-entrant.
	ModeViewing Mode = iota
	// ModeEditing shows the form.
	ModeEditing
	// ModeSaving is the transient state while a submit or favorite toggle
	// is in flight.
	ModeSaving
	// ModeDeleting is the transient state while a delete is in flight.
	ModeDeleting
)

// Point drives one point through the viewing/editing/saving/deleting state
// machine. It owns exactly one view slot and swaps the card and form
// representations in it; the list presenter creates and destroys Point
// presenters as the projection changes.
type Point struct {
	coord  Coordinator
	esc    EscapeBinder
	view   ItemView
	lookup ReferenceLookup

	point domain.Point
	mode  Mode
	// formUp tracks which representation the slot shows. Mode alone cannot
	// tell: ModeSaving covers both a form submit and a card-side favorite
	// toggle.
	formUp    bool
	unbindEsc func()
	destroyed bool
}

// ReferenceLookup resolves a point's references for display. Satisfied by
// the destination and offer models together; see List's Deps.
type ReferenceLookup interface {
	Destination(id string) (domain.Destination, bool)
	AllDestinations() []domain.Destination
	OffersFor(t domain.PointType) []domain.Offer
	SelectedOffers(p domain.Point) []domain.Offer
}

// newPoint attaches a view slot for the point and renders its card.
func newPoint(board BoardView, esc EscapeBinder, coord Coordinator, lookup ReferenceLookup, p domain.Point) *Point {
	pres := &Point{coord: coord, esc: esc, lookup: lookup, point: p}
	pres.view = board.NewItem(ItemHandlers{
		OnEdit:     pres.startEditing,
		OnFavorite: pres.toggleFavorite,
		OnSubmit:   pres.submit,
		OnDelete:   pres.remove,
		OnClose:    pres.ResetView,
	})
	pres.view.ShowCard(pres.card())
	return pres
}

// ID returns the id of the point this presenter renders.
func (pr *Point) ID() string {
	return pr.point.ID
}

// Mode returns the presenter's current state.
func (pr *Point) Mode() Mode {
	return pr.mode
}

// Init re-renders the presenter with fresh data. The list presenter calls
// it for a ScopePatch payload and for every survivor of a reconcile, since
// the reference datasets may have changed independently of the point.
func (pr *Point) Init(p domain.Point) {
	pr.point = p
	if pr.formUp {
		// Mid-edit the form stays up; refresh its field values.
		pr.view.ShowForm(pr.form())
		return
	}
	pr.view.ShowCard(pr.card())
}

// ResetView forces the presenter back to its card. In-progress edits are
// discarded and the last-known-good values restored. No-op outside
// ModeEditing: during Saving/Deleting the controls are disabled and the
// transition is resolved by the write outcome instead.
func (pr *Point) ResetView() {
	if pr.mode != ModeEditing {
		return
	}
	pr.closeForm()
}

// Destroy removes the view slot and marks the presenter dead so that any
// write continuation still on the stack becomes a no-op.
func (pr *Point) Destroy() {
	if pr.destroyed {
		return
	}
	pr.destroyed = true
	pr.dropEscape()
	pr.view.Remove()
}

// startEditing swaps the card for the form, after winning exclusivity.
func (pr *Point) startEditing() {
	if pr.mode != ModeViewing {
		return
	}
	if !pr.coord.RequestExclusiveEdit(pr.point.ID) {
		return
	}
	pr.mode = ModeEditing
	pr.formUp = true
	pr.view.ShowForm(pr.form())
	pr.unbindEsc = pr.esc.BindEscape(pr.ResetView)
}

// submit is the form's save path: Editing → Saving → Viewing on success,
// back to Editing with a shake on failure.
func (pr *Point) submit(edited domain.Point) {
	if pr.mode != ModeEditing {
		return
	}
	edited.ID = pr.point.ID
	pr.mode = ModeSaving
	pr.view.SetBusy(domain.ActionUpdate)

	err := pr.coord.Dispatch(domain.ActionUpdate, domain.ScopeMinor, edited)
	if pr.destroyed {
		// The update moved the point out of the current projection and the
		// reconcile already tore this presenter down.
		return
	}
	pr.view.ClearBusy()
	if err != nil {
		pr.mode = ModeEditing
		pr.view.Shake(nil)
		return
	}
	pr.mode = ModeEditing // closeForm expects to leave ModeEditing
	pr.closeForm()
}

// remove is the delete path. Per the state machine it runs from Viewing;
// a failed delete re-enables the controls and returns to Viewing.
func (pr *Point) remove() {
	if pr.mode != ModeViewing {
		return
	}
	pr.mode = ModeDeleting
	pr.view.SetBusy(domain.ActionDelete)

	err := pr.coord.Dispatch(domain.ActionDelete, domain.ScopeMinor, pr.point)
	if pr.destroyed {
		// Success: the reconcile destroyed this presenter already.
		return
	}
	pr.view.ClearBusy()
	pr.mode = ModeViewing
	if err != nil {
		pr.view.Shake(nil)
	}
}

// toggleFavorite is the single-field patch path. The card's visual favorite
// flag only changes when the model confirms; on failure the pre-click value
// is still what renders, plus a shake.
func (pr *Point) toggleFavorite() {
	if pr.mode != ModeViewing {
		return
	}
	toggled := pr.point
	toggled.IsFavorite = !toggled.IsFavorite

	pr.mode = ModeSaving
	pr.view.SetBusy(domain.ActionUpdate)

	err := pr.coord.Dispatch(domain.ActionUpdate, domain.ScopePatch, toggled)
	if pr.destroyed {
		return
	}
	pr.view.ClearBusy()
	pr.mode = ModeViewing
	if err != nil {
		pr.view.Shake(nil)
		return
	}
	// The ScopePatch notification re-inited us with the confirmed point;
	// nothing further to render.
}

// closeForm swaps the form back for the card and releases the escape key.
func (pr *Point) closeForm() {
	pr.mode = ModeViewing
	pr.formUp = false
	pr.view.ShowCard(pr.card())
	pr.dropEscape()
}

// dropEscape releases the escape binding exactly once; extra calls no-op.
func (pr *Point) dropEscape() {
	if pr.unbindEsc != nil {
		pr.unbindEsc()
		pr.unbindEsc = nil
	}
}

func (pr *Point) card() Card {
	destination, _ := pr.lookup.Destination(pr.point.DestinationID)
	return Card{
		Point:       pr.point,
		Destination: destination,
		Offers:      pr.lookup.SelectedOffers(pr.point),
	}
}

func (pr *Point) form() Form {
	return Form{
		Point:        pr.point,
		Destinations: pr.lookup.AllDestinations(),
		Offers:       pr.lookup.OffersFor(pr.point.Type),
	}
}
