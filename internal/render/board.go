// Package render is a plain-text implementation of the presenter view
// interfaces. It exists so the whole model → presenter → view pipeline can
// run headlessly: tripctl uses it to print the board, and it doubles as a
// reference for what a real rendering host must implement (exactly-once
// attach, idempotent removal).
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/mkraev/trip-planner/internal/domain"
	"github.com/mkraev/trip-planner/internal/presenter"
)

// Empty-list messages per filter, matching the service's UI copy.
var emptyMessages = map[domain.FilterType]string{
	domain.FilterEverything: "Click New Event to create your first point",
	domain.FilterFuture:     "There are no future events now",
	domain.FilterPresent:    "There are no present events now",
	domain.FilterPast:       "There are no past events now",
}

const (
	loadingMessage   = "Loading..."
	loadErrorMessage = "Failed to load latest route information"
	creatingMessage  = "Creating a new point..."
)

// Board renders the point list as text. It keeps the live item slots and a
// placeholder, and writes a snapshot on demand.
type Board struct {
	items       []*Item
	order       []string
	placeholder string
}

// NewBoard returns an empty board.
func NewBoard() *Board {
	return &Board{}
}

// NewItem implements presenter.BoardView.
func (b *Board) NewItem(handlers presenter.ItemHandlers) presenter.ItemView {
	item := &Item{board: b, handlers: handlers}
	b.items = append(b.items, item)
	return item
}

// Reorder implements presenter.BoardView: live items rearrange into the
// given id order. Draft forms have no id and stay in front.
func (b *Board) Reorder(ids []string) {
	b.order = ids
	index := func(it *Item) int {
		if it.showingForm && it.form.IsDraft {
			return -1
		}
		for i, id := range ids {
			if it.id() == id {
				return i
			}
		}
		return len(ids)
	}
	// Insertion sort keeps attach order for equal ranks; the list is small.
	for i := 1; i < len(b.items); i++ {
		for j := i; j > 0 && index(b.items[j]) < index(b.items[j-1]); j-- {
			b.items[j], b.items[j-1] = b.items[j-1], b.items[j]
		}
	}
}

// ShowLoading implements presenter.BoardView.
func (b *Board) ShowLoading() { b.placeholder = loadingMessage }

// ShowLoadError implements presenter.BoardView.
func (b *Board) ShowLoadError() { b.placeholder = loadErrorMessage }

// ShowEmpty implements presenter.BoardView.
func (b *Board) ShowEmpty(filter domain.FilterType, creating bool) {
	if creating {
		b.placeholder = creatingMessage
		return
	}
	if msg, ok := emptyMessages[filter]; ok {
		b.placeholder = msg
		return
	}
	b.placeholder = emptyMessages[domain.FilterEverything]
}

// ClearPlaceholder implements presenter.BoardView.
func (b *Board) ClearPlaceholder() { b.placeholder = "" }

// Render writes the current board snapshot.
func (b *Board) Render(w io.Writer) error {
	if b.placeholder != "" {
		_, err := fmt.Fprintln(w, b.placeholder)
		return err
	}
	for _, item := range b.items {
		if _, err := fmt.Fprintln(w, item.line()); err != nil {
			return err
		}
	}
	return nil
}

func (b *Board) drop(item *Item) {
	for i, held := range b.items {
		if held == item {
			b.items = append(b.items[:i], b.items[i+1:]...)
			return
		}
	}
}

// Item is one rendered slot. It satisfies presenter.ItemView.
type Item struct {
	board    *Board
	handlers presenter.ItemHandlers

	showingForm bool
	card        presenter.Card
	form        presenter.Form
	busy        domain.UserAction
	hasBusy     bool
	shaken      bool
	removed     bool
}

// ShowCard implements presenter.ItemView.
func (it *Item) ShowCard(card presenter.Card) {
	it.card = card
	it.showingForm = false
}

// ShowForm implements presenter.ItemView.
func (it *Item) ShowForm(form presenter.Form) {
	it.form = form
	it.showingForm = true
}

// SetBusy implements presenter.ItemView.
func (it *Item) SetBusy(action domain.UserAction) {
	it.busy = action
	it.hasBusy = true
}

// ClearBusy implements presenter.ItemView.
func (it *Item) ClearBusy() {
	it.hasBusy = false
}

// Shake implements presenter.ItemView. Text output has no animation; the
// failure marker shows on the next render and done runs immediately.
func (it *Item) Shake(done func()) {
	it.shaken = true
	if done != nil {
		done()
	}
}

// Remove implements presenter.ItemView. Idempotent.
func (it *Item) Remove() {
	if it.removed {
		return
	}
	it.removed = true
	it.board.drop(it)
}

func (it *Item) id() string {
	if it.showingForm {
		return it.form.Point.ID
	}
	return it.card.Point.ID
}

func (it *Item) line() string {
	if it.showingForm {
		return it.formLine()
	}
	return it.cardLine()
}

func (it *Item) cardLine() string {
	p := it.card.Point
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s  %-11s %-20s €%d",
		p.DateFrom.Format("02 Jan 15:04"), p.Type, it.card.Destination.Name, p.BasePrice)
	if p.IsFavorite {
		sb.WriteString("  ★")
	}
	for _, offer := range it.card.Offers {
		fmt.Fprintf(&sb, "  [+%s €%d]", offer.Title, offer.Price)
	}
	it.decorate(&sb)
	return sb.String()
}

func (it *Item) formLine() string {
	p := it.form.Point
	var sb strings.Builder
	label := "edit"
	if it.form.IsDraft {
		label = "new"
	}
	fmt.Fprintf(&sb, "(%s) %s %s → %s  €%d", label, p.Type,
		p.DateFrom.Format("02 Jan 15:04"), p.DateTo.Format("02 Jan 15:04"), p.BasePrice)
	it.decorate(&sb)
	return sb.String()
}

func (it *Item) decorate(sb *strings.Builder) {
	if it.hasBusy {
		switch it.busy {
		case domain.ActionDelete:
			sb.WriteString("  [deleting...]")
		default:
			sb.WriteString("  [saving...]")
		}
	}
	if it.shaken {
		sb.WriteString("  [!]")
		it.shaken = false
	}
}

// Keymap is a minimal presenter.EscapeBinder. The CLI has no real key
// events; tests and interactive hosts call PressEscape to fire the bound
// handler.
type Keymap struct {
	nextID   int
	handlers map[int]func()
	order    []int
}

// NewKeymap returns an empty Keymap.
func NewKeymap() *Keymap {
	return &Keymap{handlers: map[int]func(){}}
}

// BindEscape implements presenter.EscapeBinder. The returned unbind is safe
// to call more than once.
func (k *Keymap) BindEscape(fn func()) func() {
	id := k.nextID
	k.nextID++
	k.handlers[id] = fn
	k.order = append(k.order, id)
	return func() {
		delete(k.handlers, id)
	}
}

// PressEscape fires every bound handler in bind order. With the presenters'
// single-open-form invariant there is at most one.
func (k *Keymap) PressEscape() {
	ids := make([]int, len(k.order))
	copy(ids, k.order)
	for _, id := range ids {
		if fn, ok := k.handlers[id]; ok {
			fn()
		}
	}
}
