package gallery

import (
	"github.com/google/uuid"

	"github.com/Guerrilla-Interactive/nextgen-site-gallery/app/catalog"
)

// Reason says what triggered an Update.
type Reason int

const (
	ViewRecomputed Reason = iota
	SelectionChanged
)

func (r Reason) String() string {
	switch r {
	case ViewRecomputed:
		return "view-recomputed"
	case SelectionChanged:
		return "selection-changed"
	default:
		return "unknown"
	}
}

// Update is delivered to subscribers after the engine state is consistent.
type Update struct {
	Reason   Reason
	View     []catalog.Entry
	Count    int
	Selected string
	Filters  []string
}

// Listener receives engine updates.
type Listener func(Update)

type subscriber struct {
	id string
	fn Listener
}

// subscriptions keeps listeners in registration order. Delivery is
// synchronous, so there is nothing to buffer or drop.
type subscriptions struct {
	list []subscriber
}

func (s *subscriptions) add(fn Listener) string {
	id := uuid.New().String()
	s.list = append(s.list, subscriber{id: id, fn: fn})
	return id
}

func (s *subscriptions) remove(id string) bool {
	for i, sub := range s.list {
		if sub.id == id {
			s.list = append(s.list[:i:i], s.list[i+1:]...)
			return true
		}
	}
	return false
}

func (s *subscriptions) notify(u Update) {
	// Snapshot so a listener may unsubscribe itself.
	targets := append([]subscriber(nil), s.list...)
	for _, sub := range targets {
		sub.fn(u)
	}
}

// Subscribe registers fn for every update and returns its subscription id.
func (e *Engine) Subscribe(fn Listener) string {
	id := e.subs.add(fn)
	e.logger.Debug("subscriber added", "sub_id", id)
	return id
}

// Unsubscribe removes a listener. Unknown ids are ignored.
func (e *Engine) Unsubscribe(id string) {
	if e.subs.remove(id) {
		e.logger.Debug("subscriber removed", "sub_id", id)
	}
}
