// Package event provides the observer primitive the models publish through.
// Each model owns one Notifier; presenters subscribe and receive every
// mutation synchronously, tagged with an update scope.
package event

import "github.com/mkraev/trip-planner/internal/domain"

// Handler receives one model notification. The payload depends on the scope:
// mutations carry the affected domain.Point, load events carry nil.
type Handler func(scope domain.UpdateScope, payload any)

// Notifier is an instance-scoped subscriber list. There is no global
// registry: a Notifier is created with its owning model and torn down with
// it. It is not safe for concurrent use; the host serializes all model and
// presenter calls on one goroutine.
type Notifier struct {
	nextID   int
	order    []int
	handlers map[int]Handler
}

// NewNotifier returns an empty Notifier.
func NewNotifier() *Notifier {
	return &Notifier{handlers: map[int]Handler{}}
}

// Subscribe registers h and returns a function that removes it again.
// Calling the returned function more than once is a no-op.
func (n *Notifier) Subscribe(h Handler) func() {
	id := n.nextID
	n.nextID++
	n.order = append(n.order, id)
	n.handlers[id] = h

	return func() {
		delete(n.handlers, id)
		for i, other := range n.order {
			if other == id {
				n.order = append(n.order[:i], n.order[i+1:]...)
				break
			}
		}
	}
}

// Notify invokes all registered handlers synchronously, in subscription
// order. There is no error isolation between handlers: a panicking handler
// propagates to the caller, so handlers must not assume isolation.
func (n *Notifier) Notify(scope domain.UpdateScope, payload any) {
	// Iterate over a snapshot so a handler that unsubscribes (or subscribes)
	// during delivery cannot corrupt the walk.
	ids := make([]int, len(n.order))
	copy(ids, n.order)
	for _, id := range ids {
		if h, ok := n.handlers[id]; ok {
			h(scope, payload)
		}
	}
}
