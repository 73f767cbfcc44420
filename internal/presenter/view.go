// Package presenter implements the board presenter layer: one list
// presenter owning a point presenter per visible point plus at most one
// draft presenter. Presenters hold the transient UI state (editing, saving,
// deleting) that the models deliberately know nothing about; committed model
// state and per-item UI state meet only through the point id.
//
// Rendering is abstracted behind the view interfaces in this file. A view
// implementation must satisfy two lifecycle guarantees: an item is attached
// exactly once (by NewItem) and Remove is idempotent. Everything else —
// markup, layout, animation — is the host's business.
package presenter

import "github.com/mkraev/trip-planner/internal/domain"

// Card is the read-only representation of a point, with its references
// resolved for display.
type Card struct {
	Point       domain.Point
	Destination domain.Destination
	// Offers holds the point's selected offers in catalog order.
	Offers []domain.Offer
}

// Form is the editable representation of a point or draft.
type Form struct {
	Point domain.Point
	// Destinations is the full picker list.
	Destinations []domain.Destination
	// Offers holds every offer valid for the point's current type;
	// selection state comes from Point.OfferIDs.
	Offers  []domain.Offer
	IsDraft bool
}

// ItemHandlers carries the user intents a rendered item can emit back to
// its presenter. A view only invokes handlers for controls it currently
// shows (card controls in card state, form controls in form state).
type ItemHandlers struct {
	// OnEdit is the rollup/edit control on the card.
	OnEdit func()
	// OnFavorite is the favorite toggle on the card.
	OnFavorite func()
	// OnSubmit is the form's save control, carrying the edited point.
	OnSubmit func(point domain.Point)
	// OnDelete is the delete control.
	OnDelete func()
	// OnClose is the form's cancel control (rollup); the escape key takes
	// the same path through the presenter's escape binding.
	OnClose func()
}

// ItemView is one rendered slot in the board list. The presenter drives
// which representation the slot shows; ShowCard and ShowForm replace each
// other in place.
type ItemView interface {
	ShowCard(card Card)
	ShowForm(form Form)
	// SetBusy disables the item's controls while a write is in flight and
	// shows the saving/deleting indication for the given action.
	SetBusy(action domain.UserAction)
	// ClearBusy re-enables the controls.
	ClearBusy()
	// Shake plays the transient failure affordance and then calls done
	// (which may be nil).
	Shake(done func())
	// Remove detaches and disposes the item. Idempotent.
	Remove()
}

// BoardView is the board-level rendering surface: it creates item slots and
// shows the list placeholders.
type BoardView interface {
	// NewItem attaches a new item slot at the end of the list.
	NewItem(handlers ItemHandlers) ItemView
	// Reorder rearranges the live items into the given id order. The draft
	// slot, when present, always renders first and is not part of ids.
	Reorder(ids []string)
	// ShowLoading displays the "loading" placeholder.
	ShowLoading()
	// ShowLoadError displays the persistent load-failure placeholder.
	ShowLoadError()
	// ShowEmpty displays the filter-specific empty message, or the
	// "creating" variant while a draft is open.
	ShowEmpty(filter domain.FilterType, creating bool)
	// ClearPlaceholder removes whatever placeholder is showing.
	ClearPlaceholder()
}

// EscapeBinder is the host capability for the escape key. Bind registers a
// handler active while a form is open and returns an unbind function;
// presenters guarantee unbind runs exactly once per bind on every exit path,
// and implementations must tolerate a second call as a no-op.
type EscapeBinder interface {
	BindEscape(fn func()) (unbind func())
}

// Coordinator is the capability the list presenter exposes to its children:
// edit exclusivity and intent dispatch.
type Coordinator interface {
	// RequestExclusiveEdit asks to become the sole open editor. When
	// granted, every other open editor has been reset to its card state
	// before this returns. Denied while the draft is open.
	RequestExclusiveEdit(id string) bool
	// Dispatch forwards a mutation intent to the collection model and
	// returns its outcome. Model notifications fire before Dispatch
	// returns, so the originating presenter may already have been
	// re-inited or destroyed by the time it regains control.
	Dispatch(action domain.UserAction, scope domain.UpdateScope, point domain.Point) error
}
