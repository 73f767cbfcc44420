package model

import (
	"github.com/mkraev/trip-planner/internal/domain"
	"github.com/mkraev/trip-planner/internal/event"
)

// Sort holds the single currently-selected sort value.
// Same notification contract as Filter.
type Sort struct {
	notifier *event.Notifier
	value    domain.SortType
}

// NewSort starts at the default day ordering.
func NewSort() *Sort {
	return &Sort{notifier: event.NewNotifier(), value: domain.DefaultSortType}
}

// Subscribe registers a handler for sort-change notifications.
func (m *Sort) Subscribe(h event.Handler) func() {
	return m.notifier.Subscribe(h)
}

// Value returns the current selection.
func (m *Sort) Value() domain.SortType {
	return m.value
}

// Set changes the selection; non-silent changes publish ScopeMajor.
// The list presenter resets the sort silently when the filter changes, since
// the filter's own Major notification already triggers the rebuild.
func (m *Sort) Set(value domain.SortType, silent bool) {
	m.value = value
	if !silent {
		m.notifier.Notify(domain.ScopeMajor, value)
	}
}
