package model_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkraev/trip-planner/internal/domain"
	"github.com/mkraev/trip-planner/internal/model"
	"github.com/mkraev/trip-planner/testutil"
)

type mockDestinationsGateway struct {
	fetchDestinations func(ctx context.Context) ([]domain.Destination, error)
}

func (m *mockDestinationsGateway) FetchDestinations(ctx context.Context) ([]domain.Destination, error) {
	return m.fetchDestinations(ctx)
}

type mockOffersGateway struct {
	fetchOffers func(ctx context.Context) ([]domain.OfferGroup, error)
}

func (m *mockOffersGateway) FetchOffers(ctx context.Context) ([]domain.OfferGroup, error) {
	return m.fetchOffers(ctx)
}

// ---- Destinations ----------------------------------------------------------

func TestDestinations_Init_Lookup(t *testing.T) {
	gw := &mockDestinationsGateway{
		fetchDestinations: func(context.Context) ([]domain.Destination, error) {
			return testutil.Destinations(), nil
		},
	}
	m := model.NewDestinations(gw)
	require.NoError(t, m.Init(context.Background()))

	d, ok := m.ByID("chamonix")
	require.True(t, ok)
	assert.Equal(t, "Chamonix", d.Name)

	_, ok = m.ByID("atlantis")
	assert.False(t, ok)

	all := m.All()
	require.Len(t, all, 3)
	assert.Equal(t, "amsterdam", all[0].ID)
}

func TestDestinations_Init_FailureStaysEmpty(t *testing.T) {
	gw := &mockDestinationsGateway{
		fetchDestinations: func(context.Context) ([]domain.Destination, error) {
			return nil, errors.New("unreachable")
		},
	}
	m := model.NewDestinations(gw)

	var scopes []domain.UpdateScope
	m.Subscribe(func(scope domain.UpdateScope, _ any) { scopes = append(scopes, scope) })

	err := m.Init(context.Background())

	assert.Error(t, err)
	assert.Equal(t, []domain.UpdateScope{domain.ScopeError}, scopes)
	assert.Empty(t, m.All())
	_, ok := m.ByID("amsterdam")
	assert.False(t, ok)
}

// ---- Offers ----------------------------------------------------------------

func loadedOffers(t *testing.T) *model.Offers {
	t.Helper()
	gw := &mockOffersGateway{
		fetchOffers: func(context.Context) ([]domain.OfferGroup, error) {
			return testutil.OfferGroups(), nil
		},
	}
	m := model.NewOffers(gw)
	require.NoError(t, m.Init(context.Background()))
	return m
}

func TestOffers_ByType(t *testing.T) {
	m := loadedOffers(t)

	taxi := m.ByType(domain.Taxi)
	require.Len(t, taxi, 2)
	assert.Equal(t, "taxi-uber", taxi[0].ID)

	// Unknown types yield an empty slice the caller can range over.
	assert.NotNil(t, m.ByType(domain.Sightseeing))
	assert.Empty(t, m.ByType(domain.Sightseeing))
}

func TestOffers_Selected_CatalogOrderAndUnknownIDs(t *testing.T) {
	m := loadedOffers(t)

	p := domain.Point{
		Type: domain.Flight,
		// Selection order is reversed and includes a stale id; the result
		// follows catalog order and drops the stale one.
		OfferIDs: []string{"flight-comfort", "gone", "flight-luggage"},
	}

	selected := m.Selected(p)
	require.Len(t, selected, 2)
	assert.Equal(t, "flight-luggage", selected[0].ID)
	assert.Equal(t, "flight-comfort", selected[1].ID)
}

func TestOffers_Selected_NoneSelected(t *testing.T) {
	m := loadedOffers(t)

	selected := m.Selected(domain.Point{Type: domain.CheckIn, OfferIDs: []string{}})
	assert.NotNil(t, selected)
	assert.Empty(t, selected)
}

func TestOffers_Init_FailureStaysEmpty(t *testing.T) {
	gw := &mockOffersGateway{
		fetchOffers: func(context.Context) ([]domain.OfferGroup, error) {
			return nil, errors.New("unreachable")
		},
	}
	m := model.NewOffers(gw)

	var scopes []domain.UpdateScope
	m.Subscribe(func(scope domain.UpdateScope, _ any) { scopes = append(scopes, scope) })

	err := m.Init(context.Background())

	assert.Error(t, err)
	assert.Equal(t, []domain.UpdateScope{domain.ScopeError}, scopes)
	assert.Empty(t, m.Groups())
	assert.Empty(t, m.ByType(domain.Taxi))
}

// ---- Filter / Sort ---------------------------------------------------------

func TestFilter_SetNotifiesWithValue(t *testing.T) {
	m := model.NewFilter()
	assert.Equal(t, domain.FilterEverything, m.Value())

	var got []recorded
	m.Subscribe(func(scope domain.UpdateScope, payload any) {
		got = append(got, recorded{scope, payload})
	})

	m.Set(domain.FilterFuture, false)

	assert.Equal(t, domain.FilterFuture, m.Value())
	require.Len(t, got, 1)
	assert.Equal(t, domain.ScopeMajor, got[0].scope)
	assert.Equal(t, domain.FilterFuture, got[0].payload)
}

func TestFilter_SilentSetSkipsNotification(t *testing.T) {
	m := model.NewFilter()

	notified := false
	m.Subscribe(func(domain.UpdateScope, any) { notified = true })

	m.Set(domain.FilterPast, true)

	assert.Equal(t, domain.FilterPast, m.Value())
	assert.False(t, notified)
}

func TestSort_SetNotifiesWithValue(t *testing.T) {
	m := model.NewSort()
	assert.Equal(t, domain.SortDay, m.Value())

	var got []recorded
	m.Subscribe(func(scope domain.UpdateScope, payload any) {
		got = append(got, recorded{scope, payload})
	})

	m.Set(domain.SortPrice, false)

	assert.Equal(t, domain.SortPrice, m.Value())
	require.Len(t, got, 1)
	assert.Equal(t, domain.ScopeMajor, got[0].scope)
	assert.Equal(t, domain.SortPrice, got[0].payload)
}

func TestSort_SilentSetSkipsNotification(t *testing.T) {
	m := model.NewSort()

	notified := false
	m.Subscribe(func(domain.UpdateScope, any) { notified = true })

	m.Set(domain.SortTime, true)

	assert.Equal(t, domain.SortTime, m.Value())
	assert.False(t, notified)
}
