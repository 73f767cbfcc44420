package render_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkraev/trip-planner/internal/domain"
	"github.com/mkraev/trip-planner/internal/presenter"
	"github.com/mkraev/trip-planner/internal/render"
)

func renderToString(t *testing.T, b *render.Board) string {
	t.Helper()
	var sb strings.Builder
	require.NoError(t, b.Render(&sb))
	return sb.String()
}

func card(id, name string, price int) presenter.Card {
	return presenter.Card{
		Point: domain.Point{
			ID:        id,
			Type:      domain.Taxi,
			DateFrom:  time.Date(2024, 1, 10, 10, 0, 0, 0, time.UTC),
			DateTo:    time.Date(2024, 1, 10, 11, 0, 0, 0, time.UTC),
			BasePrice: price,
		},
		Destination: domain.Destination{Name: name},
	}
}

func TestBoard_RendersPlaceholders(t *testing.T) {
	b := render.NewBoard()

	b.ShowLoading()
	assert.Equal(t, "Loading...\n", renderToString(t, b))

	b.ShowLoadError()
	assert.Equal(t, "Failed to load latest route information\n", renderToString(t, b))

	b.ShowEmpty(domain.FilterFuture, false)
	assert.Equal(t, "There are no future events now\n", renderToString(t, b))

	b.ShowEmpty(domain.FilterPast, true)
	assert.Equal(t, "Creating a new point...\n", renderToString(t, b))

	b.ClearPlaceholder()
	assert.Empty(t, renderToString(t, b))
}

func TestBoard_RendersCardLines(t *testing.T) {
	b := render.NewBoard()

	it := b.NewItem(presenter.ItemHandlers{})
	c := card("1", "Amsterdam", 20)
	c.Point.IsFavorite = true
	c.Offers = []domain.Offer{{ID: "taxi-uber", Title: "Order Uber", Price: 20}}
	it.ShowCard(c)

	out := renderToString(t, b)
	assert.Contains(t, out, "10 Jan 10:00")
	assert.Contains(t, out, "taxi")
	assert.Contains(t, out, "Amsterdam")
	assert.Contains(t, out, "€20")
	assert.Contains(t, out, "★")
	assert.Contains(t, out, "[+Order Uber €20]")
}

func TestBoard_ReorderFollowsIDsDraftFirst(t *testing.T) {
	b := render.NewBoard()

	first := b.NewItem(presenter.ItemHandlers{})
	first.ShowCard(card("1", "Amsterdam", 20))
	second := b.NewItem(presenter.ItemHandlers{})
	second.ShowCard(card("2", "Chamonix", 160))
	draft := b.NewItem(presenter.ItemHandlers{})
	draft.ShowForm(presenter.Form{Point: domain.NewDraft(time.Now()), IsDraft: true})

	b.Reorder([]string{"2", "1"})

	lines := strings.Split(strings.TrimRight(renderToString(t, b), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "(new)"))
	assert.Contains(t, lines[1], "Chamonix")
	assert.Contains(t, lines[2], "Amsterdam")
}

func TestBoard_BusyAndShakeMarkers(t *testing.T) {
	b := render.NewBoard()
	it := b.NewItem(presenter.ItemHandlers{})
	it.ShowCard(card("1", "Amsterdam", 20))

	it.SetBusy(domain.ActionDelete)
	assert.Contains(t, renderToString(t, b), "[deleting...]")

	it.ClearBusy()
	it.SetBusy(domain.ActionUpdate)
	assert.Contains(t, renderToString(t, b), "[saving...]")

	it.ClearBusy()
	it.Shake(nil)
	assert.Contains(t, renderToString(t, b), "[!]")
	// The marker is transient: it shows once.
	assert.NotContains(t, renderToString(t, b), "[!]")
}

func TestBoard_ShakeRunsDone(t *testing.T) {
	b := render.NewBoard()
	it := b.NewItem(presenter.ItemHandlers{})
	it.ShowCard(card("1", "Amsterdam", 20))

	done := false
	it.Shake(func() { done = true })
	assert.True(t, done)
}

func TestBoard_RemoveIsIdempotent(t *testing.T) {
	b := render.NewBoard()
	it := b.NewItem(presenter.ItemHandlers{})
	it.ShowCard(card("1", "Amsterdam", 20))
	keep := b.NewItem(presenter.ItemHandlers{})
	keep.ShowCard(card("2", "Chamonix", 160))

	it.Remove()
	it.Remove()

	out := renderToString(t, b)
	assert.NotContains(t, out, "Amsterdam")
	assert.Contains(t, out, "Chamonix")
}

func TestKeymap_BindAndUnbind(t *testing.T) {
	k := render.NewKeymap()

	calls := 0
	unbind := k.BindEscape(func() { calls++ })

	k.PressEscape()
	assert.Equal(t, 1, calls)

	unbind()
	unbind() // second call is a no-op
	k.PressEscape()
	assert.Equal(t, 1, calls)
}

func TestKeymap_FiresInBindOrder(t *testing.T) {
	k := render.NewKeymap()

	var seen []string
	k.BindEscape(func() { seen = append(seen, "a") })
	k.BindEscape(func() { seen = append(seen, "b") })

	k.PressEscape()
	assert.Equal(t, []string{"a", "b"}, seen)
}
