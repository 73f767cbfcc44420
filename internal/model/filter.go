package model

import (
	"github.com/mkraev/trip-planner/internal/domain"
	"github.com/mkraev/trip-planner/internal/event"
)

// Filter holds the single currently-selected filter value.
type Filter struct {
	notifier *event.Notifier
	value    domain.FilterType
}

// NewFilter starts at FilterEverything.
func NewFilter() *Filter {
	return &Filter{notifier: event.NewNotifier(), value: domain.FilterEverything}
}

// Subscribe registers a handler for filter-change notifications.
func (m *Filter) Subscribe(h event.Handler) func() {
	return m.notifier.Subscribe(h)
}

// Value returns the current selection.
func (m *Filter) Value() domain.FilterType {
	return m.value
}

// Set changes the selection. When silent is false, ScopeMajor is published
// with the new value; silent updates are for bulk operations where a rebuild
// is already pending and a cascade would be redundant. Setting the current
// value again still notifies — re-publish is harmless and callers treat it
// as a no-op for UI purposes.
func (m *Filter) Set(value domain.FilterType, silent bool) {
	m.value = value
	if !silent {
		m.notifier.Notify(domain.ScopeMajor, value)
	}
}
