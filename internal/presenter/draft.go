package presenter

import (
	"time"

	"github.com/mkraev/trip-planner/internal/domain"
)

// Draft drives the "new point" form. At most one Draft exists at a time,
// mutually exclusive with any point being edited; the list presenter
// enforces that before constructing one. A draft has no card state: it is
// born editing and dies on cancel, escape, or a confirmed create.
type Draft struct {
	coord     Coordinator
	esc       EscapeBinder
	view      ItemView
	lookup    ReferenceLookup
	onDestroy func()

	point     domain.Point
	saving    bool
	unbindEsc func()
	destroyed bool
}

// newDraft attaches the draft form slot seeded with a blank point.
func newDraft(board BoardView, esc EscapeBinder, coord Coordinator, lookup ReferenceLookup, now time.Time, onDestroy func()) *Draft {
	d := &Draft{coord: coord, esc: esc, lookup: lookup, onDestroy: onDestroy, point: domain.NewDraft(now)}
	d.view = board.NewItem(ItemHandlers{
		OnSubmit: d.submit,
		OnDelete: d.cancel, // the draft form's delete control reads "Cancel"
		OnClose:  d.cancel,
	})
	d.view.ShowForm(d.form())
	d.unbindEsc = esc.BindEscape(d.cancel)
	return d
}

// submit sends the draft through the create path. On success the draft
// presenter destroys itself — the created point re-enters through the model
// notification as a regular point. On failure the form stays open with its
// contents intact so the user can retry.
func (d *Draft) submit(draft domain.Point) {
	if d.saving || d.destroyed {
		return
	}
	draft.ID = "" // the service assigns ids
	d.point = draft
	d.saving = true
	d.view.SetBusy(domain.ActionCreate)

	err := d.coord.Dispatch(domain.ActionCreate, domain.ScopeMinor, draft)
	if d.destroyed {
		return
	}
	d.saving = false
	d.view.ClearBusy()
	if err != nil {
		d.view.Shake(nil)
		d.view.ShowForm(d.form())
		return
	}
	d.Destroy()
}

// cancel discards the draft. Escape takes the same path.
func (d *Draft) cancel() {
	if d.saving {
		return
	}
	d.Destroy()
}

// Destroy removes the form, releases the escape key, and tells the list
// presenter the draft slot is free again. Idempotent.
func (d *Draft) Destroy() {
	if d.destroyed {
		return
	}
	d.destroyed = true
	if d.unbindEsc != nil {
		d.unbindEsc()
		d.unbindEsc = nil
	}
	d.view.Remove()
	if d.onDestroy != nil {
		d.onDestroy()
	}
}

func (d *Draft) form() Form {
	return Form{
		Point:        d.point,
		Destinations: d.lookup.AllDestinations(),
		Offers:       d.lookup.OffersFor(d.point.Type),
		IsDraft:      true,
	}
}
